// Package service turns solve requests into results. It is the layer shared
// by the command line, the HTTP server and the Lambda handler: callers hand
// it a network and a set of runs, it picks the solver and reports timings.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pressure/canon"
	"github.com/katalvlaran/pressure/config"
	"github.com/katalvlaran/pressure/core"
	"github.com/katalvlaran/pressure/explore"
	"github.com/katalvlaran/pressure/internal/ctxlog"
	"github.com/katalvlaran/pressure/parse"
	"github.com/katalvlaran/pressure/route"
)

// ErrInvalidRequest is wrapped by every error caused by the request content
// (unparseable network, unknown policy, bad run) rather than by the platform.
var ErrInvalidRequest = errors.New("service: invalid request")

// Request is a solve request. Exactly one of Input (line records) and
// Network (JSON document, see parse.ParseJSON) must be set.
type Request struct {
	Input   string          `json:"input,omitempty"`
	Network json.RawMessage `json:"network,omitempty"`
	Start   string          `json:"start,omitempty"`
	Policy  string          `json:"policy,omitempty"`
	Method  string          `json:"method,omitempty"`
	Runs    []config.Run    `json:"runs,omitempty"`
}

// Result is the outcome of one run.
type Result struct {
	Name      string          `json:"name"`
	Agents    int             `json:"agents"`
	Budget    int             `json:"budget"`
	Best      int             `json:"best"`
	ElapsedMS int64           `json:"elapsed_ms"`
	Plan      [][]route.Visit `json:"plan,omitempty"`
}

// Response groups the results of one request under a fresh ID.
type Response struct {
	ID      string   `json:"id"`
	Results []Result `json:"results"`
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout bounds the total solve time of a request. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.timeout = d
		}
	}
}

// Service solves requests. It holds no per-request state and is safe for
// concurrent use.
type Service struct {
	timeout time.Duration
}

// New returns a Service with the given options applied.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handle parses the request network, solves every run, and returns the
// results under a new request ID.
func (s *Service) Handle(ctx context.Context, req Request) (*Response, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	g, err := Network(req)
	if err != nil {
		return nil, err
	}
	cfg, err := req.config()
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger := ctxlog.FromContext(ctx).With("request_id", id)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Solving request.", "nodes", g.Len(), "valves", g.ValveCount(), "runs", len(cfg.Runs))

	results, err := Solve(ctx, g, cfg)
	if err != nil {
		return nil, err
	}

	return &Response{ID: id, Results: results}, nil
}

// Network builds the graph described by req.
func Network(req Request) (*core.Graph, error) {
	var opts []core.BuilderOption
	if req.Start != "" {
		opts = append(opts, core.WithStart(req.Start))
	}

	var (
		g   *core.Graph
		err error
	)
	switch {
	case req.Input != "" && len(req.Network) > 0:
		return nil, fmt.Errorf("%w: input and network are mutually exclusive", ErrInvalidRequest)
	case req.Input != "":
		g, err = parse.ParseString(req.Input, opts...)
	case len(req.Network) > 0:
		g, err = parse.ParseJSON(req.Network, opts...)
	default:
		return nil, fmt.Errorf("%w: one of input or network is required", ErrInvalidRequest)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return g, nil
}

// config resolves the solver settings of req on top of config.Default.
func (req Request) config() (*config.Config, error) {
	cfg := config.Default()
	if req.Policy != "" {
		p, err := canon.ParsePolicy(req.Policy)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		cfg.Policy = p
	}
	m, err := config.ParseMethod(req.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	cfg.Method = m
	if len(req.Runs) > 0 {
		cfg.Runs = req.Runs
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return cfg, nil
}

// Solve runs every configured run against g in order.
//
// Errors other than cancellation are wrapped with ErrInvalidRequest: a
// validated configuration can still ask for something the network cannot
// give, such as two agents on weighted tunnels.
func Solve(ctx context.Context, g *core.Graph, cfg *config.Config) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)
	results := make([]Result, 0, len(cfg.Runs))
	for _, run := range cfg.Runs {
		began := time.Now()
		res, err := solveRun(ctx, g, cfg, run)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: run %q: %w", ErrInvalidRequest, run.Name, err)
		}
		res.ElapsedMS = time.Since(began).Milliseconds()
		logger.Info("Run finished.", "run", run.Name, "agents", run.Agents, "budget", run.Budget,
			"method", string(cfg.Method), "best", res.Best, "elapsed_ms", res.ElapsedMS)
		results = append(results, res)
	}

	return results, nil
}

// solveRun dispatches one run to the configured solver.
func solveRun(ctx context.Context, g *core.Graph, cfg *config.Config, run config.Run) (Result, error) {
	out := Result{Name: run.Name, Agents: run.Agents, Budget: run.Budget}
	if cfg.Method == config.MethodRoute {
		plan, err := route.Best(g, run.Budget, run.Agents, route.WithContext(ctx))
		if err != nil {
			return out, err
		}
		out.Best = plan.Yield
		out.Plan = plan.Agents

		return out, nil
	}

	opts := []explore.Option{
		explore.WithContext(ctx),
		explore.WithPolicy(cfg.Policy),
	}
	if cfg.ProgressEvery > 0 {
		logger := ctxlog.FromContext(ctx).With("run", run.Name)
		opts = append(opts, explore.WithProgress(cfg.ProgressEvery, func(p explore.Progress) {
			logger.Debug("Search progress.", "dequeued", p.Dequeued, "queued", p.Queued,
				"visited", p.Visited, "best", p.Best)
		}))
	}
	res, err := explore.Solve(g, run.Budget, run.Agents, opts...)
	if err != nil {
		return out, err
	}
	out.Best = res.Best

	return out, nil
}
