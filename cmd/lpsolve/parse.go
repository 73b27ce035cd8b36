package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bartolsthoorn/gosolver/solver"
)

// signTokens are tried in order; two-character operators come before their prefixes.
var signTokens = []string{"<=", ">=", "=<", "=>", "≤", "≥", "==", "=", "<", ">"}

// parseVector parses a comma separated list of numbers.
func parseVector(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no numbers in %q", s)
	}
	return out, nil
}

// parseConstraint parses a row such as "4,6,2 <= 2000".
func parseConstraint(s string) ([]float64, solver.Sign, float64, error) {
	for _, tok := range signTokens {
		i := strings.Index(s, tok)
		if i < 0 {
			continue
		}
		sign, err := solver.ParseSign(tok)
		if err != nil {
			return nil, 0, 0, err
		}
		row, err := parseVector(s[:i])
		if err != nil {
			return nil, 0, 0, fmt.Errorf("constraint %q: %w", s, err)
		}
		rhs, err := strconv.ParseFloat(strings.TrimSpace(s[i+len(tok):]), 64)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("constraint %q: invalid right-hand side: %w", s, err)
		}
		return row, sign, rhs, nil
	}
	return nil, 0, 0, fmt.Errorf("constraint %q has no <=, = or >= sign", s)
}

// parseBound parses "lower:upper". An empty side, "inf" or "-inf" means no limit.
func parseBound(s string) (solver.Bound, error) {
	lower, upper, ok := strings.Cut(s, ":")
	if !ok {
		return solver.Bound{}, fmt.Errorf("bound %q is not of the form lower:upper", s)
	}
	lo, err := parseLimit(lower, math.Inf(-1))
	if err != nil {
		return solver.Bound{}, fmt.Errorf("bound %q: %w", s, err)
	}
	hi, err := parseLimit(upper, math.Inf(1))
	if err != nil {
		return solver.Bound{}, fmt.Errorf("bound %q: %w", s, err)
	}
	return solver.Bound{Lower: lo, Upper: hi}, nil
}

func parseLimit(s string, unbounded float64) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none":
		return unbounded, nil
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(s, 64)
}
