// Package config loads run configurations written in HCL.
//
// A configuration file looks like:
//
//	input  = "testdata/example.txt"
//	policy = "best-yield"
//	method = "tick"
//
//	run "solo" {
//	  agents = 1
//	  budget = single_budget
//	}
//
//	run "duo" {
//	  agents = 2
//	  budget = dual_budget - 2
//	}
//
// Expressions may reference the variables single_budget (30) and
// dual_budget (26). Every attribute is optional; when no run block is given
// the two default runs are used.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/pressure/canon"
	"github.com/katalvlaran/pressure/internal/ctxlog"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Default budgets exposed to HCL expressions.
const (
	SingleBudget = 30
	DualBudget   = 26
)

// Method selects the solver used for each run.
type Method string

const (
	// MethodTick runs the tick-level explorers.
	MethodTick Method = "tick"

	// MethodRoute runs the compressed valve-to-valve solver.
	MethodRoute Method = "route"
)

// ParseMethod validates a method name; the empty string means MethodTick.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return MethodTick, nil
	case MethodTick, MethodRoute:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown method %q", ErrInvalid, s)
	}
}

// Run is one (agents, budget) problem solved against the network.
type Run struct {
	Name   string `hcl:"name,label" json:"name"`
	Agents int    `hcl:"agents" json:"agents"`
	Budget int    `hcl:"budget" json:"budget"`
}

// Config is a resolved configuration.
type Config struct {
	Input         string
	Start         string
	Policy        canon.Policy
	Method        Method
	ProgressEvery int
	LogLevel      string
	LogFormat     string
	Runs          []Run
}

// file mirrors the HCL schema; pointers distinguish absent attributes.
type file struct {
	Input         *string `hcl:"input,optional"`
	Start         *string `hcl:"start,optional"`
	Policy        *string `hcl:"policy,optional"`
	Method        *string `hcl:"method,optional"`
	ProgressEvery *int    `hcl:"progress_every,optional"`
	LogLevel      *string `hcl:"log_level,optional"`
	LogFormat     *string `hcl:"log_format,optional"`
	Runs          []Run   `hcl:"run,block"`
}

// DefaultRuns returns the single-agent and dual-agent runs of the worked setup.
func DefaultRuns() []Run {
	return []Run{
		{Name: "solo", Agents: 1, Budget: SingleBudget},
		{Name: "duo", Agents: 2, Budget: DualBudget},
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Policy:    canon.BestYield,
		Method:    MethodTick,
		LogLevel:  "info",
		LogFormat: "text",
		Runs:      DefaultRuns(),
	}
}

// EvalContext returns the variables available to HCL expressions.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"single_budget": cty.NumberIntVal(SingleBudget),
			"dual_budget":   cty.NumberIntVal(DualBudget),
		},
	}
}

// Load reads and decodes the HCL file at path.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading config file.", "path", path)
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := LoadBytes(src, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded config file.", "path", path, "runs", len(cfg.Runs))

	return cfg, nil
}

// LoadBytes decodes HCL source; filename is used in diagnostics only.
// Absent attributes keep their Default values and the result is validated.
func LoadBytes(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %s", filename, diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, EvalContext(), &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %s", filename, diags.Error())
	}

	cfg := Default()
	if raw.Input != nil {
		cfg.Input = *raw.Input
	}
	if raw.Start != nil {
		cfg.Start = *raw.Start
	}
	if raw.Policy != nil {
		p, err := canon.ParsePolicy(*raw.Policy)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		cfg.Policy = p
	}
	if raw.Method != nil {
		m, err := ParseMethod(*raw.Method)
		if err != nil {
			return nil, err
		}
		cfg.Method = m
	}
	if raw.ProgressEvery != nil {
		cfg.ProgressEvery = *raw.ProgressEvery
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if raw.LogFormat != nil {
		cfg.LogFormat = *raw.LogFormat
	}
	if len(raw.Runs) > 0 {
		cfg.Runs = raw.Runs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every run and setting, returning an error wrapping ErrInvalid.
func (c *Config) Validate() error {
	if len(c.Runs) == 0 {
		return fmt.Errorf("%w: no runs", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Runs))
	for _, r := range c.Runs {
		if r.Name == "" {
			return fmt.Errorf("%w: run with empty name", ErrInvalid)
		}
		if seen[r.Name] {
			return fmt.Errorf("%w: duplicate run %q", ErrInvalid, r.Name)
		}
		seen[r.Name] = true
		if r.Agents != 1 && r.Agents != 2 {
			return fmt.Errorf("%w: run %q: agents must be 1 or 2, got %d", ErrInvalid, r.Name, r.Agents)
		}
		if r.Budget < 0 {
			return fmt.Errorf("%w: run %q: negative budget %d", ErrInvalid, r.Name, r.Budget)
		}
	}
	if !c.Policy.Valid() {
		return fmt.Errorf("%w: unknown policy %v", ErrInvalid, c.Policy)
	}
	if _, err := ParseMethod(string(c.Method)); err != nil {
		return err
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("%w: progress_every must be non-negative", ErrInvalid)
	}
	if _, err := ctxlog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}
