package solver

import (
	"io"
	"math"
	"strconv"
	"strings"
)

const displayRule = "------------------------------------------------------"

// DisplayOption configures Display.
type DisplayOption func(*displayConfig)

type displayConfig struct {
	objectiveDigits int
	valueDigits     int
	significant     int
}

func defaultDisplayConfig() *displayConfig {
	return &displayConfig{
		objectiveDigits: 2,
		valueDigits:     5,
		significant:     6,
	}
}

// WithObjectiveDigits sets the decimal places kept for objective coefficients and
// the optimal value. The default is 2.
func WithObjectiveDigits(n int) DisplayOption {
	return func(c *displayConfig) {
		c.objectiveDigits = n
	}
}

// WithValueDigits sets the decimal places kept for variable values. The default is 5.
func WithValueDigits(n int) DisplayOption {
	return func(c *displayConfig) {
		c.valueDigits = n
	}
}

// WithSignificantDigits sets how many significant digits a rounded number is printed
// with. The default is 6.
func WithSignificantDigits(n int) DisplayOption {
	return func(c *displayConfig) {
		c.significant = n
	}
}

// Display renders a solution as text:
//
//	------------------------------------------------------
//	MAXIMIZE: z = 16a + 20.5b + 14c
//	------------------------------------------------------
//	OPTIMAL VALUE:  4960
//	------------------------------------------------------
//	QUANTITIES:
//	a:  0
//	b:  160
//	c:  120
//	------------------------------------------------------
//	Optimization terminated successfully.
//
// A solution that is not optimal but still carries values, such as one stopped by
// the iteration limit, is shown with its status and "OBJECTIVE VALUE:" in place of
// "OPTIMAL VALUE:". A nil solution renders as a solver-error. The solution is not
// modified.
func Display(sol *Solution, opts ...DisplayOption) string {
	cfg := defaultDisplayConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return render(sol, cfg)
}

// WriteDisplay writes the rendering produced by Display to w.
func WriteDisplay(w io.Writer, sol *Solution, opts ...DisplayOption) error {
	_, err := io.WriteString(w, Display(sol, opts...))
	return err
}

func render(sol *Solution, cfg *displayConfig) string {
	if sol == nil {
		sol = &Solution{Status: StatusSolverError, Objective: math.NaN(), Message: "no solution"}
	}

	var b strings.Builder
	b.WriteString(displayRule + "\n")
	b.WriteString(objectiveLine(sol.Sense, sol.Coefficients, cfg) + "\n")
	b.WriteString(displayRule + "\n")

	switch {
	case sol.IsOptimal() && sol.HasSolution():
		b.WriteString("OPTIMAL VALUE:  " + cfg.format(sol.Objective, cfg.objectiveDigits) + "\n")
	case sol.HasSolution():
		b.WriteString("STATUS: " + sol.Status.String() + "\n")
		b.WriteString("OBJECTIVE VALUE:  " + cfg.format(sol.Objective, cfg.objectiveDigits) + "\n")
	default:
		b.WriteString("STATUS: " + sol.Status.String() + "\n")
	}
	if sol.HasSolution() {
		b.WriteString(displayRule + "\n")
		b.WriteString("QUANTITIES:\n")
		for i, v := range sol.Values {
			b.WriteString(VariableLabel(i) + ":  " + cfg.format(v, cfg.valueDigits) + "\n")
		}
	}
	b.WriteString(displayRule + "\n")
	b.WriteString(sol.Message + "\n")
	return b.String()
}

// objectiveLine renders e.g. "MINIMIZE: z = 16a - 20.5b + 14c".
func objectiveLine(sense Sense, coeffs []float64, cfg *displayConfig) string {
	var b strings.Builder
	switch sense {
	case Maximize:
		b.WriteString("MAXIMIZE: z =")
	case Minimize:
		b.WriteString("MINIMIZE: z =")
	default:
		b.WriteString("z =")
	}
	for i, c := range coeffs {
		v := roundTo(c, cfg.objectiveDigits)
		label := VariableLabel(i)
		switch {
		case i == 0:
			b.WriteString(" " + cfg.formatRounded(v) + label)
		case v < 0:
			b.WriteString(" - " + cfg.formatRounded(-v) + label)
		default:
			b.WriteString(" + " + cfg.formatRounded(v) + label)
		}
	}
	return b.String()
}

func (c *displayConfig) format(v float64, digits int) string {
	return c.formatRounded(roundTo(v, digits))
}

func (c *displayConfig) formatRounded(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'g', c.significant, 64)
}

// roundTo rounds v half away from zero to the given number of decimal places.
func roundTo(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}
