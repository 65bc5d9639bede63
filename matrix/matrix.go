// Copyright 2026 GridNet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the vector and matrix types passed through the
// network, plus shape validation and formatting helpers.
package matrix

import (
	"io"

	"github.com/gridnet-ml/gridnet/internal/matrix"
)

// Matrix1d is an ordered sequence of floating-point values (a vector).
type Matrix1d = matrix.Matrix1d

// Matrix2d is an ordered sequence of rows.
type Matrix2d = matrix.Matrix2d

// Matrix3d is an ordered sequence of 2D samples.
type Matrix3d = matrix.Matrix3d

// New1d creates a zero-filled vector of the given size.
func New1d(size int) Matrix1d { return matrix.New1d(size) }

// New2d creates a zero-filled square matrix of the given size.
func New2d(size int) Matrix2d { return matrix.New2d(size) }

// New2dRC creates a zero-filled matrix with the given row and column counts.
func New2dRC(rows, cols int) Matrix2d { return matrix.New2dRC(rows, cols) }

// Format1d renders a vector as a bracketed, fixed-precision row.
func Format1d(m Matrix1d, precision int) string { return matrix.Format1d(m, precision) }

// Format2d renders a matrix as bracketed, fixed-precision rows.
func Format2d(m Matrix2d, precision int) string { return matrix.Format2d(m, precision) }

// Fprint1d writes a formatted vector followed by a newline.
func Fprint1d(w io.Writer, m Matrix1d, precision int) { matrix.Fprint1d(w, m, precision) }

// Fprint2d writes a formatted matrix followed by a newline.
func Fprint2d(w io.Writer, m Matrix2d, precision int) { matrix.Fprint2d(w, m, precision) }
