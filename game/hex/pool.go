package hex

import (
	"sync"

	"github.com/gorgonia/darkhex/game"
)

// geometry is the shared, read-only description of a rows×cols board: the neighbour table and
// the edge tags each colour picks up on each cell. Every Board of a given size points to the
// same geometry.
type geometry struct {
	rows, cols int
	adj        [][]game.Single
	edges      [][3]Cell // indexed by cell, then colour

	scratch sync.Pool // *fill
}

// fill is the scratch space for a flood fill.
type fill struct {
	seen  []bool
	stack []game.Single
}

var (
	geoMu   sync.Mutex
	geoPool = make(map[int]map[int]*geometry)
)

// borrowGeometry returns the geometry of a rows×cols board, building it on first use.
func borrowGeometry(rows, cols int) *geometry {
	geoMu.Lock()
	defer geoMu.Unlock()
	if d, ok := geoPool[rows]; ok {
		if g, ok := d[cols]; ok {
			return g
		}
	} else {
		geoPool[rows] = make(map[int]*geometry)
	}
	g := makeGeometry(rows, cols)
	geoPool[rows][cols] = g
	return g
}

func makeGeometry(rows, cols int) *geometry {
	size := rows * cols
	g := &geometry{
		rows:  rows,
		cols:  cols,
		adj:   make([][]game.Single, size),
		edges: make([][3]Cell, size),
	}
	g.scratch.New = func() interface{} {
		return &fill{
			seen:  make([]bool, size),
			stack: make([]game.Single, 0, size),
		}
	}
	for i := 0; i < size; i++ {
		c := g.itol(game.Single(i))
		for _, a := range adjacents {
			n := c.Add(a)
			if g.isCoordValid(n) {
				g.adj[i] = append(g.adj[i], g.ltoi(n))
			}
		}
		if c.X == 0 {
			g.edges[i][game.Black] |= North
		}
		if int(c.X) == rows-1 {
			g.edges[i][game.Black] |= South
		}
		if c.Y == 0 {
			g.edges[i][game.White] |= West
		}
		if int(c.Y) == cols-1 {
			g.edges[i][game.White] |= East
		}
	}
	return g
}

func (g *geometry) borrowFill() *fill { return g.scratch.Get().(*fill) }

func (g *geometry) returnFill(f *fill) {
	for i := range f.seen {
		f.seen[i] = false
	}
	f.stack = f.stack[:0]
	g.scratch.Put(f)
}

func (g *geometry) itol(c game.Single) game.Coord {
	return game.Coord{X: int16(int(c) / g.cols), Y: int16(int(c) % g.cols)}
}

func (g *geometry) ltoi(c game.Coord) game.Single { return game.Single(int(c.X)*g.cols + int(c.Y)) }

func (g *geometry) isCoordValid(c game.Coord) bool {
	x, y := int(c.X), int(c.Y)
	return x >= 0 && x < g.rows && y >= 0 && y < g.cols
}

// adjacents are the six neighbours of a cell on the rhombus Hex board. The set is closed under
// transposition, which is what makes the colour-swap symmetry hold.
var adjacents = [6]game.Coord{
	{X: -1, Y: 0},
	{X: -1, Y: 1},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
}
