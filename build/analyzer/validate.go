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
	"strings"

	"github.com/pkg/errors"

	"github.com/tc-org/tc/build/ir"
)

// validate certifies the statement independent of evaluation order. The
// grammar allows a single combinator per statement; validation checks that
// the combinator belongs to the closed associative-commutative set, that it
// can accumulate into the element type of the output tensor, and that no
// reduction dimension has an empty range.
func (a *analysis) validate() bool {
	comb, ok := ir.CombinatorOf(a.stmt.Comb)
	if !ok {
		return a.errs.AppendAt(a.stmt, errors.Wrapf(ErrUnsupportedCombinator, "%q is not an associative-commutative combinator", a.stmt.Comb))
	}
	a.comb = comb
	if !comb.IsReduction() && len(a.reduction) > 0 {
		var names []string
		for _, v := range a.reduction {
			names = append(names, v.Name)
		}
		a.errs.AppendAt(a.stmt, errors.Wrapf(ErrUnsupportedCombinator, "assignment over indices %s depends on evaluation order", strings.Join(names, ",")))
	}
	outDecl := a.accesses[0].decl
	if !comb.CompatibleWith(outDecl.DType) {
		a.errs.AppendAt(a.stmt, errors.Wrapf(ErrUnsupportedCombinator, "%s cannot accumulate into %s tensor %s", comb, outDecl.DType, outDecl.Name))
	}
	for _, v := range a.reduction {
		if v.Rng.Empty() {
			a.errs.AppendAt(v.Src, errors.Wrapf(ErrEmptyReductionDomain, "reduction index %s has range %s", v.Name, v.Rng))
		}
	}
	if !a.errs.Empty() {
		return false
	}
	a.advance(stageValidated)
	return true
}
