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

// Package ir declares the artifacts derived by semantic analysis from a
// comprehension statement.
//
// The central artifact is the IterationSpace: the index variables of a
// statement with their inferred ranges, partitioned into output and
// reduction dimensions, annotated with the reduction combinator. The
// iteration space fully describes the valid execution orders of the
// statement and is the hand-off point to the code generator.
//
// Artifacts are statement-scoped: they are rebuilt on every compilation of
// a definition and never shared across statements.
package ir

import (
	"fmt"
	"iter"
	"strings"

	"github.com/tc-org/tc/build/ast"
)

type (
	// Range is the half-open interval [Lo,Hi) of values taken by an
	// index variable.
	Range struct {
		Lo, Hi int
	}

	// Role of an index variable in a statement.
	Role int

	// IndexVar is an index variable of a statement with its inferred
	// range. The range is set exactly once by range inference.
	IndexVar struct {
		// Src is the first occurrence of the variable.
		Src  *ast.Ident
		Name string
		Rng  Range
		Role Role
	}

	// IterationSpace describes the validated iteration domain of a
	// statement.
	IterationSpace struct {
		// Stmt is the statement this space was derived from.
		Stmt *ast.Statement
		// Output holds the output dimensions, in the order of the
		// index list of the output access.
		Output []*IndexVar
		// Reduction holds the reduction dimensions, in order of
		// first occurrence on the right-hand side. All reduction
		// dimensions accumulate through Comb.
		Reduction []*IndexVar
		// Comb is the combinator of the statement.
		Comb Combinator
	}
)

// Index variable roles.
const (
	// OutputDim marks a variable appearing in the output access:
	// it names a dimension of the output tensor.
	OutputDim Role = iota
	// ReductionDim marks a variable appearing only on the right-hand
	// side: the combinator accumulates over it.
	ReductionDim
)

// Empty returns true if the range contains no value.
func (r Range) Empty() bool {
	return r.Lo >= r.Hi
}

// Size returns the number of values in the range.
func (r Range) Size() int {
	if r.Empty() {
		return 0
	}
	return r.Hi - r.Lo
}

// String returns the range in interval notation.
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Lo, r.Hi)
}

// String returns the role as a string.
func (r Role) String() string {
	if r == ReductionDim {
		return "reduction"
	}
	return "output"
}

// String returns the variable with its range and role.
func (v *IndexVar) String() string {
	return fmt.Sprintf("%s:%s %s", v.Name, v.Rng, v.Role)
}

// Vars returns an iterator over all dimensions of the space, output
// dimensions first.
func (sp *IterationSpace) Vars() iter.Seq[*IndexVar] {
	return func(yield func(*IndexVar) bool) {
		for _, v := range sp.Output {
			if !yield(v) {
				return
			}
		}
		for _, v := range sp.Reduction {
			if !yield(v) {
				return
			}
		}
	}
}

// Find returns the dimension with the given variable name, or nil.
func (sp *IterationSpace) Find(name string) *IndexVar {
	for v := range sp.Vars() {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// String returns a one-line description of the space.
func (sp *IterationSpace) String() string {
	var dims []string
	for v := range sp.Vars() {
		dims = append(dims, v.String())
	}
	return fmt.Sprintf("%s{%s}", sp.Comb, strings.Join(dims, " "))
}
