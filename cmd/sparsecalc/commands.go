package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/afs"

	"github.com/katalvlaran/sparsemat/config"
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/katalvlaran/sparsemat/workspace"
)

// flags holds persistent command line overrides.
type flags struct {
	configPath string
	inputDir   string
	outputDir  string
	epsilon    float64
	logLevel   string
}

// app is the state shared by subcommands after PersistentPreRunE.
type app struct {
	flags  flags
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	logger *slog.Logger
	ws     *workspace.Workspace
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "sparsecalc",
		Short:         "Sparse matrix arithmetic on COO text files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "sparsecalc.yaml", "Path to the YAML configuration file")
	pf.StringVarP(&a.flags.inputDir, "input", "i", "", "Directory holding operand files (overrides config)")
	pf.StringVarP(&a.flags.outputDir, "output", "o", "", "Directory for result files (overrides config)")
	pf.Float64Var(&a.flags.epsilon, "epsilon", 0, "Zero tolerance: |v| <= epsilon is dropped (overrides config)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	for _, op := range sparse.Operations {
		root.AddCommand(newOpCmd(a, op))
	}
	root.AddCommand(newRunCmd(a), newListCmd(a))

	return root
}

// init resolves configuration and builds the logger and workspace.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}
	if a.flags.inputDir != "" {
		cfg.InputDir = a.flags.inputDir
	}
	if a.flags.outputDir != "" {
		cfg.OutputDir = a.flags.outputDir
	}
	if cmd.Flags().Changed("epsilon") {
		cfg.Epsilon = a.flags.epsilon
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.cfg = cfg

	in, err := filepath.Abs(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("resolve input dir: %w", err)
	}
	out, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("resolve output dir: %w", err)
	}
	a.ws = workspace.New(afs.New(), workspace.Layout{
		InputDir:   in,
		OutputDir:  out,
		FilePrefix: cfg.FilePrefix,
		FileSuffix: cfg.FileSuffix,
	}, a.logger, sparse.WithEpsilon(cfg.Epsilon))
	a.logger.Debug("configured", "input", in, "output", out, "epsilon", cfg.Epsilon)

	return nil
}

func newOpCmd(a *app, op sparse.Operation) *cobra.Command {
	short := map[sparse.Operation]string{sparse.OpAdd: "add", sparse.OpSub: "sub", sparse.OpMul: "mul"}[op]

	return &cobra.Command{
		Use:     short + " FIRST SECOND",
		Aliases: []string{op.String()},
		Short:   "Compute the " + op.String() + " of two operand files",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, op, args[0], args[1])
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run OPERATION FIRST SECOND",
		Short: "Compute OPERATION (add|sub|mul, +|-|*) of two operand files",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := sparse.ParseOperation(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, op, args[1], args[2])
		},
	}
}

func (a *app) run(cmd *cobra.Command, op sparse.Operation, first, second string) error {
	result, URL, err := a.ws.Run(cmd.Context(), op, first, second)
	if err != nil {
		return err
	}
	a.logger.Info("operation complete", "op", op.String(), "nnz", result.NNZ(), "saved", URL)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s result:\n", capitalize(op.String()))
	_, err = result.WriteTo(out)

	return err
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [OPERATION]",
		Short: "List operand files; with OPERATION, mark files that have a compatible partner",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.ws.List(cmd.Context())
			if err != nil {
				return err
			}
			recommended := map[string]bool{}
			if len(args) == 1 {
				op, err := sparse.ParseOperation(args[0])
				if err != nil {
					return err
				}
				pairs, err := a.ws.Compatible(cmd.Context(), op)
				if err != nil {
					return err
				}
				for _, p := range pairs {
					recommended[p.First], recommended[p.Second] = true, true
				}
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "No matrix files found in", a.ws.Layout().InputDir)
				return nil
			}
			for i, name := range names {
				mark := ""
				if recommended[name] {
					mark = " (recommended)"
				}
				fmt.Fprintf(out, "%d. %s%s\n", i+1, name, mark)
			}

			return nil
		},
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
