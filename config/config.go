// Package config loads the settings of a netstab console from YAML.
//
// Every field is optional; anything the file leaves out keeps the value of
// Default(), except that a file listing edges without nodes sizes the table
// from its highest endpoint. A minimal file that only switches the MST method:
//
//	method: prim
//
// A custom topology replaces the built-in station table:
//
//	nodes: 3
//	edges:
//	  - {a: 0, b: 1, cost: 4}
//	  - {a: 1, b: 2, cost: 1}
//	  - {a: 0, b: 2, cost: 2}
//	cooldown: 2s
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/escaperoom/netstab/core"
	"github.com/escaperoom/netstab/prim_kruskal"
)

var (
	// ErrReadConfig indicates the config file could not be read or parsed.
	ErrReadConfig = errors.New("config: cannot read config")

	// ErrInvalidConfig indicates a config whose values are out of range.
	ErrInvalidConfig = errors.New("config: invalid config")
)

// DefaultLocale is the catalogue used when none is configured.
const DefaultLocale = "en_US"

// Edge is one link row of a configured table.
type Edge struct {
	A    int   `yaml:"a"`
	B    int   `yaml:"b"`
	Cost int64 `yaml:"cost"`
}

// Config holds everything a console needs at start-up.
type Config struct {
	Nodes int    `yaml:"nodes"`
	Edges []Edge `yaml:"edges"`

	// Method is prim_kruskal.MethodKruskal or prim_kruskal.MethodPrim.
	Method string `yaml:"method"`

	// Locale names the message catalogue, e.g. "en_US".
	Locale string `yaml:"locale"`

	// Color enables ANSI styling when the output is a terminal.
	Color bool `yaml:"color"`

	// Cooldown is the lockout after a rejected confirm; 0 disables it.
	Cooldown time.Duration `yaml:"cooldown"`

	// HistoryLimit caps the undo history; 0 means unlimited.
	HistoryLimit int `yaml:"history_limit"`
}

// Default returns the station table graded with Kruskal, the en_US catalogue,
// colour on and no cooldown.
func Default() Config {
	station := core.StationTable()
	edges := make([]Edge, len(station.Edges))
	for i, e := range station.Edges {
		edges[i] = Edge{A: e.A, B: e.B, Cost: e.Cost}
	}

	return Config{
		Nodes:  station.Nodes,
		Edges:  edges,
		Method: prim_kruskal.MethodKruskal,
		Locale: DefaultLocale,
		Color:  true,
	}
}

// Load reads the YAML file at path over Default() and validates the result.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(ErrReadConfig, "%s: %v", path, err)
	}

	return Parse(raw)
}

// topology records which table fields a file sets.
type topology struct {
	Nodes *int    `yaml:"nodes"`
	Edges *[]Edge `yaml:"edges"`
}

// Parse decodes YAML over Default() and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrap(ErrReadConfig, err.Error())
	}
	var set topology
	if err := yaml.Unmarshal(raw, &set); err != nil {
		return Config{}, errors.Wrap(ErrReadConfig, err.Error())
	}
	if set.Edges != nil && set.Nodes == nil {
		cfg.Nodes = nodesSpanned(cfg.Edges)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// nodesSpanned returns one more than the highest endpoint of edges, or 0.
func nodesSpanned(edges []Edge) int {
	n := 0
	for _, e := range edges {
		if e.A >= n {
			n = e.A + 1
		}
		if e.B >= n {
			n = e.B + 1
		}
	}

	return n
}

// Validate checks the method, the durations and counts, and the table.
func (c Config) Validate() error {
	switch c.Method {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown method %q", c.Method)
	}
	if c.Cooldown < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative cooldown %v", c.Cooldown)
	}
	if c.HistoryLimit < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative history limit %d", c.HistoryLimit)
	}
	if c.Locale == "" {
		return errors.Wrap(ErrInvalidConfig, "empty locale")
	}
	if err := c.Table().Validate(); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	return nil
}

// Table converts the configured rows into a core.Table.
func (c Config) Table() core.Table {
	specs := make([]core.EdgeSpec, len(c.Edges))
	for i, e := range c.Edges {
		specs[i] = core.EdgeSpec{A: e.A, B: e.B, Cost: e.Cost}
	}

	return core.Table{Nodes: c.Nodes, Edges: specs}
}
