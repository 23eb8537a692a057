package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/matrix"
)

// ExampleSquareMatrix_Solve solves a 2×2 system.
func ExampleSquareMatrix_Solve() {
	a, _ := matrix.SquareFromArray([][]algebra.Real{{2, 1}, {1, 3}})
	x, err := a.Solve([]algebra.Real{3, 5})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("x = [%.1f %.1f]\n", float64(x[0]), float64(x[1]))
	// Output:
	// x = [0.8 1.4]
}

// ExampleSquareMatrix_Inverse inverts a permutation matrix.
func ExampleSquareMatrix_Inverse() {
	a, _ := matrix.SquareFromArray([][]algebra.Real{{0, 1}, {1, 0}})
	inv, _ := a.Inverse()
	fmt.Print(inv)
	// Output:
	// [0, 1]
	// [1, 0]
}

// ExampleDecomposeLU shows the singular-matrix policy.
func ExampleDecomposeLU() {
	a, _ := matrix.SquareFromArray([][]algebra.Real{{1, 2}, {2, 4}})

	_, err := matrix.DecomposeLU(a.Clone())
	fmt.Println(errors.Is(err, matrix.ErrSingular))

	f, _ := matrix.DecomposeLU(a.Clone(), matrix.WithSurrogatePivot())
	fmt.Println(f.Degraded())
	// Output:
	// true
	// true
}
