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

package ast_test

import (
	"errors"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tc-org/tc/build/ast"
	"github.com/tc-org/tc/build/ast/asth"
)

func TestLinearize(t *testing.T) {
	tests := []struct {
		expr      ast.Expr
		wantConst int
		wantCoeff map[string]int
	}{
		{
			expr:      asth.Ident("i"),
			wantCoeff: map[string]int{"i": 1},
		},
		{
			expr:      asth.Num(3),
			wantConst: 3,
		},
		{
			expr:      asth.Add(asth.Ident("h"), asth.Ident("kh")),
			wantCoeff: map[string]int{"h": 1, "kh": 1},
		},
		{
			expr:      asth.Add(asth.Mul(asth.Num(2), asth.Ident("i")), asth.Ident("kw")),
			wantCoeff: map[string]int{"i": 2, "kw": 1},
		},
		{
			expr:      asth.Sub(asth.Mul(asth.Ident("j"), asth.Num(4)), asth.Num(1)),
			wantConst: -1,
			wantCoeff: map[string]int{"j": 4},
		},
		{
			expr:      asth.Neg(asth.Sub(asth.Ident("i"), asth.Ident("j"))),
			wantCoeff: map[string]int{"i": -1, "j": 1},
		},
		{
			// Coefficients cancelling out leave only the offset.
			expr:      asth.Add(asth.Sub(asth.Ident("i"), asth.Ident("i")), asth.Num(5)),
			wantConst: 5,
		},
		{
			expr:      &ast.ParenExpr{X: asth.Add(asth.Ident("i"), asth.Num(1))},
			wantConst: 1,
			wantCoeff: map[string]int{"i": 1},
		},
	}
	for _, test := range tests {
		got, err := ast.Linearize(test.expr)
		if err != nil {
			t.Errorf("Linearize(%s): unexpected error: %v", test.expr, err)
			continue
		}
		if got.Const != test.wantConst {
			t.Errorf("Linearize(%s): got constant %d but want %d", test.expr, got.Const, test.wantConst)
		}
		wantCoeff := test.wantCoeff
		if wantCoeff == nil {
			wantCoeff = map[string]int{}
		}
		if diff := cmp.Diff(wantCoeff, got.Coeff); diff != "" {
			t.Errorf("Linearize(%s): unexpected coefficients (-want +got):\n%s", test.expr, diff)
		}
	}
}

func TestLinearizeMalformed(t *testing.T) {
	tests := []ast.Expr{
		asth.Mul(asth.Ident("i"), asth.Ident("j")),
		asth.Binary(asth.Ident("i"), token.QUO, asth.Num(2)),
		asth.Binary(asth.Ident("i"), token.REM, asth.Num(2)),
		asth.Add(asth.Ident("i"), asth.Access("A", "j")),
		&ast.UnaryExpr{Op: token.NOT, X: asth.Ident("i")},
	}
	for _, expr := range tests {
		if _, err := ast.Linearize(expr); !errors.Is(err, ast.ErrMalformedExpression) {
			t.Errorf("Linearize(%s): got error %v but want ErrMalformedExpression", expr, err)
		}
	}
}

func TestUnparen(t *testing.T) {
	id := asth.Ident("i")
	if got := ast.Unparen(&ast.ParenExpr{X: &ast.ParenExpr{X: id}}); got != ast.Expr(id) {
		t.Errorf("Unparen(((i))): got %s but want i", got)
	}
	if got := ast.Unparen(id); got != ast.Expr(id) {
		t.Errorf("Unparen(i): got %s but want i", got)
	}
}

func TestAffineEval(t *testing.T) {
	aff, err := ast.Linearize(asth.Add(asth.Mul(asth.Num(2), asth.Ident("i")), asth.Ident("kw")))
	if err != nil {
		t.Fatalf("Linearize: unexpected error: %v", err)
	}
	got, ok := aff.Eval(map[string]int{"i": 3, "kw": 1})
	if !ok || got != 7 {
		t.Errorf("Eval(i=3,kw=1): got %d,%v but want 7,true", got, ok)
	}
	if _, ok := aff.Eval(map[string]int{"i": 3}); ok {
		t.Errorf("Eval(i=3): got ok=true but kw has no value")
	}
}

func TestAffineForms(t *testing.T) {
	bare, err := ast.Linearize(&ast.ParenExpr{X: asth.Ident("i")})
	if err != nil {
		t.Fatalf("Linearize: unexpected error: %v", err)
	}
	if v, ok := bare.IsVar(); !ok || v != "i" {
		t.Errorf("IsVar: got %q,%v but want i,true", v, ok)
	}
	if _, ok := bare.IsConst(); ok {
		t.Errorf("IsConst: got ok=true for a bare variable")
	}
	konst, err := ast.Linearize(asth.Sub(asth.Num(4), asth.Num(1)))
	if err != nil {
		t.Fatalf("Linearize: unexpected error: %v", err)
	}
	if k, ok := konst.IsConst(); !ok || k != 3 {
		t.Errorf("IsConst: got %d,%v but want 3,true", k, ok)
	}
}
