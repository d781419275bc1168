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
	"github.com/tc-org/tc/build/ast"
	"github.com/tc-org/tc/build/ir"
	"github.com/tc-org/tc/internal/exprdeps"
)

// classify partitions the index variables of the statement. A variable is
// an output dimension if and only if it appears in the index list of the
// output access; it is a reduction dimension if and only if it appears on
// the right-hand side, or in an explicit range clause, and not in the
// output access.
func (a *analysis) classify() bool {
	outSet := make(map[string]bool)
	for _, id := range a.outputIdents() {
		v, ok := a.vars.Load(id.Name)
		if !ok {
			return a.errs.AppendInternalf(id, "index %s classified before being bound", id.Name)
		}
		v.Role = ir.OutputDim
		a.output = append(a.output, v)
		outSet[id.Name] = true
	}
	for _, id := range a.rhsIdents() {
		if outSet[id.Name] {
			continue
		}
		v, ok := a.vars.Load(id.Name)
		if !ok {
			return a.errs.AppendInternalf(id, "index %s classified before being bound", id.Name)
		}
		v.Role = ir.ReductionDim
		a.reduction = append(a.reduction, v)
	}
	a.advance(stageClassified)
	return true
}

// outputIdents returns the variables of the output access index list, in
// index order, each variable once at its first occurrence.
func (a *analysis) outputIdents() []*ast.Ident {
	return exprdeps.Idents(a.stmt.Output.Index...)
}

// rhsIdents returns the variables of the right-hand side and of the
// explicit range clauses, in source order.
func (a *analysis) rhsIdents() []*ast.Ident {
	exprs := []ast.Expr{a.stmt.RHS}
	for _, clause := range a.stmt.Where {
		exprs = append(exprs, clause.Var)
	}
	return exprdeps.Idents(exprs...)
}
