package main

import (
	"os"

	"github.com/gorgonia/darkhex/game"
	"github.com/gorgonia/darkhex/retro"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type run struct {
	Rows    int    `yaml:"rows"`
	Cols    int    `yaml:"cols"`
	Visible string `yaml:"visible"`
	Workers int    `yaml:"workers"`

	MaxStates      int     `yaml:"max_states"`
	MemoryFraction float64 `yaml:"memory_fraction"`
}

type plan struct {
	Debug bool  `yaml:"debug"`
	Runs  []run `yaml:"runs"`
}

func defaultPlan() plan {
	return plan{
		Runs: []run{
			{Rows: 1, Cols: 2, Visible: "black"},
			{Rows: 2, Cols: 2, Visible: "black"},
			{Rows: 2, Cols: 2, Visible: "white"},
			{Rows: 2, Cols: 3, Visible: "black"},
			{Rows: 3, Cols: 2, Visible: "white"},
			{Rows: 3, Cols: 3, Visible: "black"},
		},
	}
}

// loadPlan reads the run list from filename. A missing file gives the default plan.
func loadPlan(filename string) (plan, error) {
	bs, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return defaultPlan(), nil
	}
	if err != nil {
		return plan{}, errors.Wrapf(err, "reading %s", filename)
	}
	var p plan
	if err := yaml.Unmarshal(bs, &p); err != nil {
		return plan{}, errors.Wrapf(err, "parsing %s", filename)
	}
	if len(p.Runs) == 0 {
		p.Runs = defaultPlan().Runs
	}
	return p, nil
}

func (r run) config() (retro.Config, error) {
	conf := retro.DefaultConfig(r.Rows, r.Cols)
	if r.Visible != "" {
		p, err := game.ParsePlayer(r.Visible)
		if err != nil {
			return conf, err
		}
		conf.Visible = p
	}
	if r.Workers != 0 {
		conf.Workers = r.Workers
	}
	conf.MaxStates = r.MaxStates
	if r.MemoryFraction != 0 {
		conf.MemoryFraction = r.MemoryFraction
	}
	return conf, conf.Validate()
}
