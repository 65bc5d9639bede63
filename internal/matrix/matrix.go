// Package matrix provides the matrix types and shape utilities used
// throughout the GridNet framework.
//
// This package contains:
//   - Matrix1d, Matrix2d, Matrix3d: vector, row matrix, and sample batch types
//   - Zero-filled allocation and in-place reset helpers
//   - Shape validation: squareness and dimension-match checks
//   - Learning-rate validation
//   - Fixed-precision bracket formatting for console output
//
// Runtime shape failures are reported as boolean results with a diagnostic
// naming the failing operation; they are never promoted to panics. Layer
// operations run inside a tight per-sample training loop, so validation must
// short-circuit cheaply.
package matrix

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Matrix1d is an ordered sequence of floating-point values (a vector).
type Matrix1d = []float64

// Matrix2d is an ordered sequence of rows. A Matrix2d is "square" when every
// row has the same length as the row count.
type Matrix2d = []Matrix1d

// Matrix3d is an ordered sequence of 2D samples.
type Matrix3d = []Matrix2d

// New1d creates a zero-filled vector of the given size.
func New1d(size int) Matrix1d {
	return make(Matrix1d, size)
}

// New2d creates a zero-filled square matrix of the given size.
func New2d(size int) Matrix2d {
	return New2dRC(size, size)
}

// New2dRC creates a zero-filled matrix with the given row and column counts.
func New2dRC(rows, cols int) Matrix2d {
	m := make(Matrix2d, rows)
	for i := range m {
		m[i] = make(Matrix1d, cols)
	}
	return m
}

// Zero1d resets every element of the vector to zero in place.
func Zero1d(m Matrix1d) {
	for i := range m {
		m[i] = 0.0
	}
}

// Zero2d resets every element of the matrix to zero in place.
func Zero2d(m Matrix2d) {
	for _, row := range m {
		Zero1d(row)
	}
}

// IsSquare reports whether every row of m has the same length as the row
// count. On mismatch a diagnostic naming the failing operation is logged.
func IsSquare(m Matrix2d, op string) bool {
	for _, row := range m {
		if len(row) != len(m) {
			if op != "" {
				log.Printf("cannot perform %s: matrix is not square", op)
			} else {
				log.Printf("matrix is not square")
			}
			return false
		}
	}
	return true
}

// MatchDimensions reports whether the actual size equals the expected size.
// On mismatch a diagnostic naming the failing operation and the expected vs
// actual sizes is logged.
func MatchDimensions(expected, actual int, op string) bool {
	if expected == actual {
		return true
	}
	if op != "" {
		log.Printf("cannot perform %s: dimension mismatch: expected %d, actual is %d",
			op, expected, actual)
	} else {
		log.Printf("dimension mismatch: expected %d, actual is %d", expected, actual)
	}
	return false
}

// CheckLearningRate reports whether the learning rate is positive. On failure
// a diagnostic naming the failing operation is logged.
func CheckLearningRate(learningRate float64, op string) bool {
	if learningRate > 0.0 {
		return true
	}
	if op != "" {
		log.Printf("cannot perform %s: invalid learning rate %v", op, learningRate)
	} else {
		log.Printf("invalid learning rate %v", learningRate)
	}
	return false
}

// Format1d renders a vector as a bracketed, fixed-precision row:
//
//	[0.00, 1.00, 0.50]
func Format1d(m Matrix1d, precision int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range m {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%.*f", precision, v)
	}
	b.WriteByte(']')
	return b.String()
}

// Format2d renders a matrix as bracketed, fixed-precision rows, one row per
// line.
func Format2d(m Matrix2d, precision int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range m {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(Format1d(row, precision))
	}
	b.WriteByte(']')
	return b.String()
}

// Fprint1d writes a formatted vector followed by a newline.
func Fprint1d(w io.Writer, m Matrix1d, precision int) {
	fmt.Fprintln(w, Format1d(m, precision))
}

// Fprint2d writes a formatted matrix followed by a newline.
func Fprint2d(w io.Writer, m Matrix2d, precision int) {
	fmt.Fprintln(w, Format2d(m, precision))
}
