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

package ir

import "github.com/tc-org/tc/build/ast"

// Combinator is the operator accumulating right-hand-side values into an
// output position. The set is closed: every reduction combinator is
// associative and commutative, which is what makes the result of a
// statement independent of the order in which its reduction dimensions are
// iterated.
type Combinator int

// Combinators of the language.
const (
	// Assignment writes the right-hand side directly. It does not
	// reduce: a statement using it must have no reduction dimension.
	Assignment Combinator = iota
	Sum
	Product
	Max
	Min
	LogicalAnd
	LogicalOr
)

var combSymbols = map[ast.Combinator]Combinator{
	ast.Assign: Assignment,
	ast.SumEq:  Sum,
	ast.ProdEq: Product,
	ast.MaxEq:  Max,
	ast.MinEq:  Min,
	ast.AndEq:  LogicalAnd,
	ast.OrEq:   LogicalOr,
}

var combNames = map[Combinator]string{
	Assignment: "assign",
	Sum:        "sum",
	Product:    "product",
	Max:        "max",
	Min:        "min",
	LogicalAnd: "and",
	LogicalOr:  "or",
}

// CombinatorOf returns the combinator declared by a statement symbol.
// ok is false for symbols outside the closed set.
func CombinatorOf(symbol ast.Combinator) (Combinator, bool) {
	comb, ok := combSymbols[symbol]
	return comb, ok
}

// IsReduction returns true if the combinator accumulates over reduction
// dimensions.
func (c Combinator) IsReduction() bool {
	return c != Assignment
}

// CompatibleWith returns true if the combinator can accumulate elements of
// the given type: logical combinators require booleans, arithmetic ones a
// numeric type.
func (c Combinator) CompatibleWith(dtype ast.DType) bool {
	switch c {
	case Assignment:
		return dtype != ast.InvalidDType
	case LogicalAnd, LogicalOr:
		return dtype == ast.Bool
	default:
		return dtype.IsNumeric()
	}
}

// String returns the name of the combinator.
func (c Combinator) String() string {
	s, ok := combNames[c]
	if !ok {
		return "unknown"
	}
	return s
}
