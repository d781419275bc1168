// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast declares the types representing a parsed tensor comprehension.
//
// The types in this package are produced by the concrete-syntax parser and
// consumed by the semantic analyzer. A comprehension definition declares a
// set of tensors and a list of statements; each statement writes one output
// access from an expression over input accesses, accumulating through a
// combinator, for example:
//
//	o(i) += A(i,j) * B(j)
//
// All nodes are immutable once the parser has returned them.
package ast

import "go/token"

type (
	// Node is a node of the comprehension syntax tree.
	Node interface {
		// Pos returns the position of the node in the source.
		// Returns token.NoPos for nodes built programmatically.
		Pos() token.Pos
	}

	// TensorRole tells whether a tensor is read or written by the
	// statements of a definition.
	TensorRole int

	// DType is the element type of a tensor.
	DType int

	// Combinator is the accumulation operator symbol declared by a
	// statement. The set of symbols the analyzer accepts is closed;
	// the parser passes unknown symbols through for the analyzer to
	// reject.
	Combinator string
)

// Tensor roles.
const (
	TensorInput TensorRole = iota
	TensorOutput
)

// Element types.
const (
	InvalidDType DType = iota
	Bool
	Int32
	Int64
	Float32
	Float64
)

// Combinator symbols of the comprehension language.
const (
	Assign  Combinator = "="
	SumEq   Combinator = "+="
	ProdEq  Combinator = "*="
	MaxEq   Combinator = "max="
	MinEq   Combinator = "min="
	AndEq   Combinator = "&&="
	OrEq    Combinator = "||="
)

type (
	// TensorDecl declares a tensor of a comprehension definition:
	// its name, element type, role, and per-dimension extents.
	TensorDecl struct {
		NamePos token.Pos
		Name    string
		DType   DType
		Role    TensorRole
		// Shape is the extent of each dimension. The rank of the
		// tensor is len(Shape).
		Shape []int
	}

	// RangeClause is an explicit index range `v in lo:hi`, giving the
	// half-open range [lo,hi) of an index variable independently of any
	// tensor extent. Bounds are constant expressions.
	RangeClause struct {
		Var *Ident
		Lo  Expr
		Hi  Expr
	}

	// Statement is one comprehension equation: an output access, a
	// combinator symbol, a right-hand-side expression over accesses,
	// and optional explicit range clauses.
	Statement struct {
		Output *AccessExpr
		Comb   Combinator
		RHS    Expr
		Where  []*RangeClause
	}

	// Def is a full comprehension definition: tensor declarations and
	// the statements computing the outputs.
	Def struct {
		Name    string
		FSet    *token.FileSet
		Tensors []*TensorDecl
		Stmts   []*Statement
	}
)

// Rank returns the number of dimensions of the tensor.
func (d *TensorDecl) Rank() int { return len(d.Shape) }

// Pos returns the position of the declaration.
func (d *TensorDecl) Pos() token.Pos { return d.NamePos }

// Pos returns the position of the clause.
func (c *RangeClause) Pos() token.Pos { return c.Var.Pos() }

// Pos returns the position of the statement.
func (s *Statement) Pos() token.Pos { return s.Output.Pos() }

var dtypeNames = map[DType]string{
	InvalidDType: "invalid",
	Bool:         "bool",
	Int32:        "int32",
	Int64:        "int64",
	Float32:      "float32",
	Float64:      "float64",
}

// String returns the name of the element type.
func (t DType) String() string {
	s, ok := dtypeNames[t]
	if !ok {
		return "unknown"
	}
	return s
}

// IsNumeric returns true for element types supporting arithmetic.
func (t DType) IsNumeric() bool {
	switch t {
	case Int32, Int64, Float32, Float64:
		return true
	}
	return false
}

// String returns the role as a string.
func (r TensorRole) String() string {
	if r == TensorOutput {
		return "output"
	}
	return "input"
}
