// Command pressure computes the best total release of a valve network for
// one agent or two cooperating agents.
//
// Usage:
//
//	pressure solve [INPUT]       solve every configured run (stdin when INPUT is omitted or "-")
//	pressure serve --addr :8080  serve POST /solve over HTTP
package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pressure/canon"
	"github.com/katalvlaran/pressure/config"
	"github.com/katalvlaran/pressure/core"
	"github.com/katalvlaran/pressure/internal/ctxlog"
	"github.com/katalvlaran/pressure/internal/ui"
	"github.com/katalvlaran/pressure/parse"
	"github.com/katalvlaran/pressure/route"
	"github.com/katalvlaran/pressure/server"
	"github.com/katalvlaran/pressure/service"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		ui.PrintError(os.Stderr, err)
		if exitErr, ok := err.(*ExitError); ok {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// flags holds every command-line value; one instance per run keeps tests isolated.
type flags struct {
	config        string
	start         string
	policy        string
	method        string
	progressEvery int
	json          bool
	quiet         bool
	logLevel      string
	logFormat     string
	addr          string
	timeout       time.Duration
}

// run builds the command tree and executes it against args.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	f := &flags{}
	root := &cobra.Command{
		Use:           "pressure",
		Short:         "Plan valve activations under a time budget",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Message: err.Error()}
	})
	root.PersistentFlags().StringVar(&f.config, "config", "", "HCL run configuration file")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&f.logFormat, "log-format", "text", "Log format: text or json")

	root.AddCommand(solveCmd(f, stdin))
	root.AddCommand(serveCmd(f))
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		if _, ok := err.(*ExitError); ok {
			return err
		}
		return &ExitError{Code: 1, Message: err.Error()}
	}

	return nil
}

// loadConfig reads --config (or the defaults) and applies flag overrides,
// then installs the configured logger in the command context.
func loadConfig(cmd *cobra.Command, f *flags) (context.Context, *config.Config, error) {
	ctx := cmd.Context()
	cfg := config.Default()
	if f.config != "" {
		loaded, err := config.Load(ctx, f.config)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("start") {
		cfg.Start = f.start
	}
	if changed("policy") {
		p, err := canon.ParsePolicy(f.policy)
		if err != nil {
			return nil, nil, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg.Policy = p
	}
	if changed("method") {
		m, err := config.ParseMethod(f.method)
		if err != nil {
			return nil, nil, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg.Method = m
	}
	if changed("progress-every") {
		cfg.ProgressEvery = f.progressEvery
	}
	if changed("log-level") || f.config == "" {
		cfg.LogLevel = f.logLevel
	}
	if changed("log-format") || f.config == "" {
		cfg.LogFormat = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, &ExitError{Code: 2, Message: err.Error()}
	}

	logger, err := ctxlog.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, &ExitError{Code: 2, Message: err.Error()}
	}

	return ctxlog.WithLogger(ctx, logger), cfg, nil
}

func solveCmd(f *flags, stdin io.Reader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [INPUT]",
		Short: "Solve every configured run against a valve network",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			path := cfg.Input
			if len(args) == 1 {
				path = args[0]
			}
			src, err := readInput(stdin, path)
			if err != nil {
				return err
			}
			g, err := buildGraph(src, cfg.Start, f.json)
			if err != nil {
				return err
			}
			ctxlog.FromContext(ctx).Debug("Network loaded.", "nodes", g.Len(), "valves", g.ValveCount())

			results, err := service.Solve(ctx, g, cfg)
			if err != nil {
				return err
			}
			for _, r := range results {
				ui.PrintResult(cmd.OutOrStdout(), line(r), f.quiet)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.start, "start", "", "Start node (default AA)")
	cmd.Flags().StringVar(&f.policy, "policy", canon.BestYield.String(), "Deduplication policy: best-yield or first-visit")
	cmd.Flags().StringVar(&f.method, "method", string(config.MethodTick), "Solver: tick or route")
	cmd.Flags().IntVar(&f.progressEvery, "progress-every", 0, "Log search progress every N states (debug level)")
	cmd.Flags().BoolVar(&f.json, "json", false, "Input is a JSON network document")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Print only the integer results")

	return cmd
}

func serveCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, _, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			svc := service.New(service.WithTimeout(f.timeout))
			app := server.New(svc, ctxlog.FromContext(ctx))

			return server.Run(ctx, app, f.addr)
		},
	}

	cmd.Flags().StringVar(&f.addr, "addr", ":8080", "Listen address")
	cmd.Flags().DurationVar(&f.timeout, "timeout", time.Minute, "Per-request solve timeout (0 disables)")

	return cmd
}

// readInput returns the bytes of path, or of stdin when path is "" or "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExitError{Code: 1, Message: err.Error()}
	}

	return src, nil
}

// buildGraph parses src as line records or, with asJSON, as a JSON document.
func buildGraph(src []byte, start string, asJSON bool) (*core.Graph, error) {
	var opts []core.BuilderOption
	if start != "" {
		opts = append(opts, core.WithStart(start))
	}
	if asJSON {
		return parse.ParseJSON(src, opts...)
	}

	return parse.Parse(bytes.NewReader(src), opts...)
}

// line converts a service result to its terminal form.
func line(r service.Result) ui.Line {
	l := ui.Line{
		Name:      r.Name,
		Agents:    r.Agents,
		Budget:    r.Budget,
		Best:      r.Best,
		ElapsedMS: r.ElapsedMS,
	}
	for _, visits := range r.Plan {
		l.Plan = append(l.Plan, planString(visits))
	}

	return l
}

// planString renders one agent's activation order.
func planString(visits []route.Visit) string {
	valves := make([]string, len(visits))
	remaining := make([]int, len(visits))
	for i, v := range visits {
		valves[i] = v.Valve
		remaining[i] = v.Remaining
	}

	return ui.Route(valves, remaining)
}
