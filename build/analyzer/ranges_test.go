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

package analyzer_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tc-org/tc/build/analyzer"
	"github.com/tc-org/tc/build/ast"
	"github.com/tc-org/tc/build/ast/asth"
	"github.com/tc-org/tc/build/ir"
)

func permutations(n int) [][]int {
	if n == 1 {
		return [][]int{{0}}
	}
	var perms [][]int
	for _, sub := range permutations(n - 1) {
		for at := 0; at <= len(sub); at++ {
			perm := make([]int, 0, n)
			perm = append(perm, sub[:at]...)
			perm = append(perm, n-1)
			perm = append(perm, sub[at:]...)
			perms = append(perms, perm)
		}
	}
	return perms
}

func product(exprs []ast.Expr) ast.Expr {
	x := exprs[0]
	for _, y := range exprs[1:] {
		x = asth.Mul(x, y)
	}
	return x
}

// TestRangeOrderIndependence verifies that the inferred ranges do not
// depend on the order in which the accesses of a statement are processed:
// every permutation of the right-hand-side accesses resolves identically.
func TestRangeOrderIndependence(t *testing.T) {
	tensors := []*ast.TensorDecl{
		asth.Output("o", 8),
		asth.Input("A", 8, 16),
		asth.Input("B", 16),
		asth.Input("D", 16, 8),
	}
	accesses := []ast.Expr{
		asth.Access("A", "i", "j"),
		asth.Access("B", "j"),
		asth.Access("D", "j", "i"),
	}
	want := map[string]dim{
		"i": {rng: ir.Range{Hi: 8}, role: ir.OutputDim},
		"j": {rng: ir.Range{Hi: 16}, role: ir.ReductionDim},
	}
	for _, perm := range permutations(len(accesses)) {
		shuffled := make([]ast.Expr, len(accesses))
		for i, at := range perm {
			shuffled[i] = accesses[at]
		}
		stmt := asth.Stmt(asth.Access("o", "i"), ast.SumEq, product(shuffled))
		space, err := analyze(t, tensors, stmt)
		if err != nil {
			t.Fatalf("Analyze(%s): unexpected error: %v", stmt, err)
		}
		checkSpace(t, space, ir.Sum, want)
	}
}

// TestConflictOrderIndependence verifies that a conflict is reported
// whatever the position of the conflicting access.
func TestConflictOrderIndependence(t *testing.T) {
	tensors := []*ast.TensorDecl{
		asth.Output("o", 8),
		asth.Input("A", 8, 16),
		asth.Input("B", 16),
		asth.Input("B2", 12),
	}
	accesses := []ast.Expr{
		asth.Access("A", "i", "j"),
		asth.Access("B", "j"),
		asth.Access("B2", "j"),
	}
	for _, perm := range permutations(len(accesses)) {
		shuffled := make([]ast.Expr, len(accesses))
		for i, at := range perm {
			shuffled[i] = accesses[at]
		}
		stmt := asth.Stmt(asth.Access("o", "i"), ast.SumEq, product(shuffled))
		if _, err := analyze(t, tensors, stmt); !errors.Is(err, analyzer.ErrRangeConflict) {
			t.Errorf("Analyze(%s): got error %v but want ErrRangeConflict", stmt, err)
		}
	}
}

func TestValueRange(t *testing.T) {
	ranges := map[string]ir.Range{
		"i":  {Lo: 0, Hi: 8},
		"kw": {Lo: 0, Hi: 2},
	}
	rangeOf := func(name string) (ir.Range, bool) {
		rng, ok := ranges[name]
		return rng, ok
	}
	tests := []struct {
		expr   ast.Expr
		want   ir.Range
		wantOk bool
	}{
		{
			expr:   asth.Ident("i"),
			want:   ir.Range{Lo: 0, Hi: 8},
			wantOk: true,
		},
		{
			expr:   asth.Add(asth.Mul(asth.Num(2), asth.Ident("i")), asth.Ident("kw")),
			want:   ir.Range{Lo: 0, Hi: 16},
			wantOk: true,
		},
		{
			expr:   asth.Sub(asth.Num(7), asth.Ident("i")),
			want:   ir.Range{Lo: 0, Hi: 8},
			wantOk: true,
		},
		{
			expr:   asth.Num(3),
			want:   ir.Range{Lo: 3, Hi: 4},
			wantOk: true,
		},
		{
			// j has no range yet.
			expr:   asth.Add(asth.Ident("i"), asth.Ident("j")),
			wantOk: false,
		},
	}
	for _, test := range tests {
		aff, err := ast.Linearize(test.expr)
		if err != nil {
			t.Fatalf("Linearize(%s): unexpected error: %v", test.expr, err)
		}
		got, ok := analyzer.ValueRange(aff, rangeOf)
		if ok != test.wantOk {
			t.Errorf("ValueRange(%s): got ok=%v but want %v", test.expr, ok, test.wantOk)
			continue
		}
		if !ok {
			continue
		}
		if !cmp.Equal(got, test.want) {
			t.Errorf("ValueRange(%s): got %s but want %s", test.expr, got, test.want)
		}
	}
}
