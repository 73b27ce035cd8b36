package main

import (
	"log"
	"os"

	"github.com/bartolsthoorn/gosolver/solver"
)

func main() {
	// Maximize: 16a + 20.5b + 14c
	// Subject to:
	//   4a + 6b + 2c  <= 2000
	//   3a + 8b + 6c   = 1984
	//   9a + 6b + 4c  <= 1440
	//   30a + 40b + 25c <= 9600
	problem, err := solver.NewProblem(
		[]float64{16, 20.5, 14},
		[][]float64{
			{4, 6, 2},
			{3, 8, 6},
			{9, 6, 4},
			{30, 40, 25},
		},
		[]float64{2000, 1984, 1440, 9600},
		[]solver.Sign{solver.LessOrEqual, solver.Equal, solver.LessOrEqual, solver.LessOrEqual},
		solver.Maximize,
	)
	if err != nil {
		log.Fatal(err)
	}

	solution, err := solver.Solve(problem)
	if err != nil {
		log.Fatal(err)
	}

	if err := solver.WriteDisplay(os.Stdout, solution); err != nil {
		log.Fatal(err)
	}
}
