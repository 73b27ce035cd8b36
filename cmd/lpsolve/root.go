package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/bartolsthoorn/gosolver/solver"
)

const envPrefix = "LPSOLVE"

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "lpsolve",
		Short: "Solve a linear program typed in spreadsheet style",
		Long: `lpsolve solves a linear program given as an objective row and a set of
constraint rows, each with its own <=, = or >= sign.

Example:
  lpsolve --sense max --objective 16,20.5,14 \
    --constraint "4,6,2 <= 2000" \
    --constraint "3,8,6 <= 2000" \
    --constraint "9,6,4 <= 1440" \
    --constraint "30,40,25 <= 9600"

Scalar flags can also be set through LPSOLVE_* environment variables,
e.g. LPSOLVE_METHOD=simplex.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.String("sense", "", "optimization direction: max or min")
	flags.String("objective", "", "comma separated objective coefficients")
	flags.StringArray("constraint", nil, `constraint row, e.g. "4,6,2 <= 2000" (repeatable)`)
	flags.Bool("non-negative", true, "default every variable's lower bound to 0 instead of -inf")
	flags.Float64("min-all", 0, "lower bound for every variable")
	flags.Float64("max-all", 0, "upper bound for every variable")
	flags.StringArray("bound", nil, `explicit bound per variable as lower:upper, e.g. "0:inf" (repeatable)`)
	flags.String("method", solver.DefaultMethod, "algorithm name passed to the engine")
	flags.String("output", "text", "output format: text or yaml")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"sense", "objective", "non-negative", "min-all", "max-all", "method", "output", "verbose"} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	logger, err := newLogger(v.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	problem, err := buildProblem(cmd, v)
	if err != nil {
		return err
	}

	opts, err := solveOptions(cmd, v)
	if err != nil {
		return err
	}
	opts = append(opts, solver.WithLogger(logger))

	sol, err := solver.SolveContext(cmd.Context(), problem, opts...)
	if err != nil {
		return err
	}

	switch format := strings.ToLower(v.GetString("output")); format {
	case "text", "":
		return solver.WriteDisplay(cmd.OutOrStdout(), sol)
	case "yaml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(newReport(sol)); err != nil {
			return fmt.Errorf("failed to encode solution: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q, want text or yaml", format)
	}
}

func buildProblem(cmd *cobra.Command, v *viper.Viper) (*solver.Problem, error) {
	sense, err := solver.ParseSense(v.GetString("sense"))
	if err != nil {
		return nil, err
	}
	objective, err := parseVector(v.GetString("objective"))
	if err != nil {
		return nil, fmt.Errorf("objective: %w", err)
	}

	rows, err := cmd.Flags().GetStringArray("constraint")
	if err != nil {
		return nil, err
	}
	left := make([][]float64, 0, len(rows))
	right := make([]float64, 0, len(rows))
	signs := make([]solver.Sign, 0, len(rows))
	for _, r := range rows {
		row, sign, rhs, err := parseConstraint(r)
		if err != nil {
			return nil, err
		}
		left = append(left, row)
		signs = append(signs, sign)
		right = append(right, rhs)
	}

	return solver.NewProblem(objective, left, right, signs, sense)
}

func solveOptions(cmd *cobra.Command, v *viper.Viper) ([]solver.SolveOption, error) {
	opts := []solver.SolveOption{
		solver.WithNonNegativity(v.GetBool("non-negative")),
		solver.WithMethod(v.GetString("method")),
	}
	if v.IsSet("min-all") {
		opts = append(opts, solver.WithMinimumForAll(v.GetFloat64("min-all")))
	}
	if v.IsSet("max-all") {
		opts = append(opts, solver.WithMaximumForAll(v.GetFloat64("max-all")))
	}

	raw, err := cmd.Flags().GetStringArray("bound")
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		bounds := make([]solver.Bound, 0, len(raw))
		for _, s := range raw {
			b, err := parseBound(s)
			if err != nil {
				return nil, err
			}
			bounds = append(bounds, b)
		}
		opts = append(opts, solver.WithBounds(bounds))
	}
	return opts, nil
}

type variable struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

type report struct {
	Sense     string     `yaml:"sense"`
	Status    string     `yaml:"status"`
	Objective float64    `yaml:"objective"`
	Variables []variable `yaml:"variables,omitempty"`
	Message   string     `yaml:"message"`
}

func newReport(sol *solver.Solution) report {
	r := report{
		Sense:     sol.Sense.String(),
		Status:    sol.Status.String(),
		Objective: sol.Objective,
		Message:   sol.Message,
	}
	for i, val := range sol.Values {
		r.Variables = append(r.Variables, variable{Name: solver.VariableLabel(i), Value: val})
	}
	return r
}
