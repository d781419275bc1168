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

// Package analyzer derives the iteration space of comprehension statements.
//
// Analysis of a statement runs as a sequence of passes:
//
//  1. resolve: every access is checked against the signature table and its
//     index expressions are reduced to affine form; the range of every
//     index variable is then inferred, explicit range clauses first, bare
//     variables from tensor extents second, composite expressions
//     revalidated last. Ranges are single-assignment: a second binding
//     source must agree with the first or the statement fails. Because
//     agreement is exact equality, the inferred ranges do not depend on
//     the order in which accesses are processed.
//  2. classify: variables appearing in the output access index list become
//     output dimensions; variables appearing only on the right-hand side
//     become reduction dimensions of the statement combinator.
//  3. validate: the combinator is checked against the closed
//     associative-commutative set and the output element type, and every
//     reduction range is checked non-empty. A statement passing this pass
//     computes the same result whatever order its dimensions are iterated.
//  4. emit: the iteration space artifact is assembled.
//
// A failure halts the statement at its current pass; statements of a
// definition are otherwise independent of each other.
package analyzer

import (
	"go/token"

	"k8s.io/klog/v2"

	"github.com/tc-org/tc/base/ordered"
	"github.com/tc-org/tc/build/ast"
	"github.com/tc-org/tc/build/fmterr"
	"github.com/tc-org/tc/build/ir"
	"github.com/tc-org/tc/build/sig"
)

// Analyzer analyzes the statements of one comprehension definition against
// its signature table. The table is read-only: one analyzer may serve
// concurrent statement analyses.
type Analyzer struct {
	tbl  *sig.Table
	fset *token.FileSet
}

// New returns an analyzer for statements over the given signature table.
// The file set positions errors in the comprehension source; it may be nil
// for statements built programmatically.
func New(tbl *sig.Table, fset *token.FileSet) *Analyzer {
	return &Analyzer{tbl: tbl, fset: fset}
}

// stage of a statement analysis, for tracing and internal checks.
type stage int

const (
	stageDeclared stage = iota
	stageRangesPending
	stageRangesResolved
	stageClassified
	stageValidated
	stageEmitted
)

var stageNames = map[stage]string{
	stageDeclared:       "declared",
	stageRangesPending:  "ranges-pending",
	stageRangesResolved: "ranges-resolved",
	stageClassified:     "classified",
	stageValidated:      "validated",
	stageEmitted:        "emitted",
}

func (s stage) String() string {
	return stageNames[s]
}

// analysis is the working state of one statement. It is built afresh for
// every analysis and discarded afterwards.
type analysis struct {
	an   *Analyzer
	stmt *ast.Statement
	errs *fmterr.Appender

	stage stage

	// accesses lists all accesses of the statement, the output access
	// first, then right-hand-side accesses in source order.
	accesses []*accessDims

	// vars maps index variable names to their binding, in binding
	// order.
	vars *ordered.Map[string, *ir.IndexVar]

	// clauseVars marks the variables bound by an explicit range clause:
	// their range is not constrained by tensor extents.
	clauseVars map[string]bool

	comb      ir.Combinator
	output    []*ir.IndexVar
	reduction []*ir.IndexVar
}

// accessDims is an access with its declaration and the affine form of its
// index expressions.
type accessDims struct {
	access *ast.AccessExpr
	decl   *ast.TensorDecl
	dims   []*ast.Affine
}

func (a *analysis) advance(s stage) {
	a.stage = s
	if klog.V(2).Enabled() {
		klog.Infof("statement %q: %s", a.stmt, s)
	}
}

// Analyze derives the iteration space of a statement. On failure no
// iteration space is emitted and the returned error wraps one or more of
// the analysis failure conditions.
func (an *Analyzer) Analyze(stmt *ast.Statement) (*ir.IterationSpace, error) {
	a := &analysis{
		an:   an,
		stmt: stmt,
		errs: fmterr.NewAppender(an.fset),
		vars: ordered.NewMap[string, *ir.IndexVar](),

		clauseVars: make(map[string]bool),
	}
	a.advance(stageDeclared)
	if !a.resolveRanges() {
		return nil, a.errs.ToError()
	}
	if !a.classify() {
		return nil, a.errs.ToError()
	}
	if !a.validate() {
		return nil, a.errs.ToError()
	}
	space := a.emit()
	klog.V(1).Infof("analyzed %q: %s", stmt, space)
	return space, nil
}
