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

package analyzer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"k8s.io/klog/v2"

	"github.com/tc-org/tc/build/ast"
	"github.com/tc-org/tc/build/ir"
	"github.com/tc-org/tc/internal/exprdeps"
)

// resolveRanges infers the range of every index variable of the statement.
// Explicit range clauses are applied first and take priority over tensor
// extents; bare variables are then bound from the extent of the dimensions
// they index; composite index expressions are revalidated last against the
// fully bound variable set.
func (a *analysis) resolveRanges() bool {
	a.advance(stageRangesPending)
	if !a.prepare() {
		return false
	}
	if !a.bindClauses() {
		return false
	}
	if !a.bindExtents() {
		return false
	}
	if !a.checkResolved() {
		return false
	}
	a.advance(stageRangesResolved)
	return true
}

// prepare checks every access of the statement against the signature table
// and reduces its index expressions to affine form, the output access
// first, then right-hand-side accesses in source order.
func (a *analysis) prepare() bool {
	out := a.prepareAccess(a.stmt.Output)
	if out != nil {
		if out.decl.Role != ast.TensorOutput {
			a.errs.Appendf(a.stmt.Output, "cannot write to %s tensor %s", out.decl.Role, out.decl.Name)
		}
		for d, aff := range out.dims {
			if _, ok := aff.IsVar(); ok {
				continue
			}
			a.errs.AppendAt(a.stmt.Output.Index[d], errors.Wrapf(ast.ErrMalformedExpression, "output index %s is not a bare index variable", aff))
		}
		a.accesses = append(a.accesses, out)
	}
	for _, access := range exprdeps.Accesses(a.stmt.RHS) {
		if ad := a.prepareAccess(access); ad != nil {
			a.accesses = append(a.accesses, ad)
		}
	}
	return a.errs.Empty()
}

func (a *analysis) prepareAccess(access *ast.AccessExpr) *accessDims {
	decl, err := a.an.tbl.Lookup(access.Tensor.Name)
	if err != nil {
		a.errs.AppendAt(access.Tensor, err)
		return nil
	}
	if len(access.Index) != decl.Rank() {
		a.errs.AppendAt(access, errors.Wrapf(ast.ErrMalformedExpression, "%s uses %d indices on tensor %s of rank %d", access, len(access.Index), decl.Name, decl.Rank()))
		return nil
	}
	ad := &accessDims{access: access, decl: decl}
	for _, expr := range access.Index {
		aff, err := ast.Linearize(expr)
		if err != nil {
			a.errs.AppendAt(expr, err)
			continue
		}
		ad.dims = append(ad.dims, aff)
	}
	if len(ad.dims) != decl.Rank() {
		return nil
	}
	return ad
}

// bindClauses applies the explicit range clauses of the statement. Two
// clauses constraining the same variable to different ranges conflict.
func (a *analysis) bindClauses() bool {
	for _, clause := range a.stmt.Where {
		lo, okLo := a.constBound(clause.Lo)
		hi, okHi := a.constBound(clause.Hi)
		if !okLo || !okHi {
			continue
		}
		if a.bind(clause.Var, ir.Range{Lo: lo, Hi: hi}, fmt.Sprintf("clause %s", clause)) {
			a.clauseVars[clause.Var.Name] = true
		}
	}
	if klog.V(2).Enabled() && len(a.clauseVars) > 0 {
		names := maps.Keys(a.clauseVars)
		slices.Sort(names)
		klog.Infof("clause-bound indices: %s", strings.Join(names, ","))
	}
	return a.errs.Empty()
}

// constBound evaluates a range clause bound, which has to reduce to a
// constant.
func (a *analysis) constBound(expr ast.Expr) (int, bool) {
	aff, err := ast.Linearize(expr)
	if err != nil {
		a.errs.AppendAt(expr, err)
		return 0, false
	}
	k, ok := aff.IsConst()
	if !ok {
		a.errs.AppendAt(expr, errors.Wrapf(ast.ErrMalformedExpression, "range bound %s is not constant", aff))
		return 0, false
	}
	return k, true
}

// bindExtents binds every bare index to the extent of the dimensions it
// indexes. A variable bound by an explicit clause is left untouched: the
// clause takes priority and staying within the tensor extent is a runtime
// concern. A variable bound by another extent must agree exactly.
func (a *analysis) bindExtents() bool {
	for _, ad := range a.accesses {
		for d, aff := range ad.dims {
			name, ok := aff.IsVar()
			if !ok {
				continue
			}
			if a.clauseVars[name] {
				continue
			}
			// The raw expression may mention more identifiers than the
			// canonical form when coefficients cancel out: bind the one
			// the form reduces to.
			for _, id := range exprdeps.Idents(ad.access.Index[d]) {
				if id.Name != name {
					continue
				}
				a.bind(id, ir.Range{Hi: ad.decl.Shape[d]}, fmt.Sprintf("dimension %d of %s", d, ad.decl.Name))
				break
			}
		}
	}
	return a.errs.Empty()
}

// bind records the range of an index variable. Ranges are
// single-assignment: a second binding source must agree exactly with the
// current range or the bind fails with a range conflict.
func (a *analysis) bind(id *ast.Ident, rng ir.Range, source string) bool {
	v, ok := a.vars.Load(id.Name)
	if !ok {
		a.vars.Store(id.Name, &ir.IndexVar{Src: id, Name: id.Name, Rng: rng})
		klog.V(2).Infof("index %s bound to %s by %s", id.Name, rng, source)
		return true
	}
	if v.Rng != rng {
		return a.errs.AppendAt(id, errors.Wrapf(ErrRangeConflict, "index %s has range %s but %s requires %s", id.Name, v.Rng, source, rng))
	}
	return true
}

// checkResolved verifies that every index variable of the statement has
// been bound by a clause or a tensor extent.
func (a *analysis) checkResolved() bool {
	exprs := []ast.Expr{a.stmt.Output, a.stmt.RHS}
	for _, clause := range a.stmt.Where {
		exprs = append(exprs, clause.Var)
	}
	for _, id := range exprdeps.Idents(exprs...) {
		if !a.vars.Has(id.Name) {
			a.errs.AppendAt(id, errors.Wrapf(ErrUnboundIndexVariable, "index %s has no binding source", id.Name))
		}
	}
	if !a.errs.Empty() {
		return false
	}
	if klog.V(2).Enabled() {
		a.traceCoverage()
	}
	return true
}

// traceCoverage logs the interval covered by composite index expressions.
func (a *analysis) traceCoverage() {
	for _, ad := range a.accesses {
		for d, aff := range ad.dims {
			if _, ok := aff.IsVar(); ok {
				continue
			}
			rng, ok := ValueRange(aff, a.rangeOf)
			if !ok {
				continue
			}
			klog.Infof("%s dimension %d: %s covers %s", ad.decl.Name, d, aff, rng)
		}
	}
}

func (a *analysis) rangeOf(name string) (ir.Range, bool) {
	v, ok := a.vars.Load(name)
	if !ok {
		return ir.Range{}, false
	}
	return v.Rng, true
}

// ValueRange returns the interval of values an affine index expression can
// take given the range of each of its variables. ok is false while a free
// variable of the expression is unbound or has an empty range.
func ValueRange(aff *ast.Affine, rangeOf func(string) (ir.Range, bool)) (ir.Range, bool) {
	lo, hi := aff.Const, aff.Const
	for _, name := range aff.Vars {
		rng, ok := rangeOf(name)
		if !ok || rng.Empty() {
			return ir.Range{}, false
		}
		atLo, atHi := aff.Coeff[name]*rng.Lo, aff.Coeff[name]*(rng.Hi-1)
		lo += min(atLo, atHi)
		hi += max(atLo, atHi)
	}
	return ir.Range{Lo: lo, Hi: hi + 1}, true
}
