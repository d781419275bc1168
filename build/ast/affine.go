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

package ast

import (
	"go/token"

	"github.com/pkg/errors"
)

// ErrMalformedExpression reports an index expression outside the affine
// subset of the language. Indexing is restricted to sums of index variables
// scaled by constants plus a constant offset, such as 2*i+kw.
var ErrMalformedExpression = errors.New("malformed expression")

// Affine is the canonical form of an affine index expression:
// Const + sum of Coeff[v]*v for v in Vars.
type Affine struct {
	Const int
	// Vars lists the variables with a non-zero coefficient, in
	// first-occurrence order.
	Vars  []string
	Coeff map[string]int
}

// IsConst returns the constant value of the expression if it references
// no variable.
func (a *Affine) IsConst() (int, bool) {
	if len(a.Vars) != 0 {
		return 0, false
	}
	return a.Const, true
}

// IsVar returns the variable name if the expression is a single variable
// with coefficient one and no offset, that is a bare index.
func (a *Affine) IsVar() (string, bool) {
	if len(a.Vars) != 1 || a.Const != 0 {
		return "", false
	}
	v := a.Vars[0]
	if a.Coeff[v] != 1 {
		return "", false
	}
	return v, true
}

// Eval computes the value of the expression given a value for each of its
// variables. ok is false if a variable has no value in env.
func (a *Affine) Eval(env map[string]int) (int, bool) {
	val := a.Const
	for _, v := range a.Vars {
		x, ok := env[v]
		if !ok {
			return 0, false
		}
		val += a.Coeff[v] * x
	}
	return val, true
}

func (a *Affine) add(b *Affine, scale int) {
	a.Const += scale * b.Const
	for _, v := range b.Vars {
		if _, ok := a.Coeff[v]; !ok {
			a.Vars = append(a.Vars, v)
		}
		a.Coeff[v] += scale * b.Coeff[v]
	}
}

// prune drops variables whose coefficients cancelled out.
func (a *Affine) prune() {
	vars := a.Vars[:0]
	for _, v := range a.Vars {
		if a.Coeff[v] == 0 {
			delete(a.Coeff, v)
			continue
		}
		vars = append(vars, v)
	}
	a.Vars = vars
}

func newAffine() *Affine {
	return &Affine{Coeff: make(map[string]int)}
}

// Linearize reduces an index expression to its affine canonical form,
// failing with ErrMalformedExpression when the expression uses an operator
// outside the affine subset.
func Linearize(expr Expr) (*Affine, error) {
	a := newAffine()
	if err := linearize(a, expr, 1); err != nil {
		return nil, err
	}
	a.prune()
	return a, nil
}

func linearize(a *Affine, expr Expr, scale int) error {
	switch exprT := Unparen(expr).(type) {
	case *Ident:
		if _, ok := a.Coeff[exprT.Name]; !ok {
			a.Vars = append(a.Vars, exprT.Name)
		}
		a.Coeff[exprT.Name] += scale
		return nil
	case *NumberLit:
		a.Const += scale * exprT.Val
		return nil
	case *UnaryExpr:
		switch exprT.Op {
		case token.ADD:
			return linearize(a, exprT.X, scale)
		case token.SUB:
			return linearize(a, exprT.X, -scale)
		}
		return errors.Wrapf(ErrMalformedExpression, "operator %s not valid in an index expression", exprT.Op)
	case *BinaryExpr:
		switch exprT.Op {
		case token.ADD:
			if err := linearize(a, exprT.X, scale); err != nil {
				return err
			}
			return linearize(a, exprT.Y, scale)
		case token.SUB:
			if err := linearize(a, exprT.X, scale); err != nil {
				return err
			}
			return linearize(a, exprT.Y, -scale)
		case token.MUL:
			return linearizeMul(a, exprT, scale)
		}
		return errors.Wrapf(ErrMalformedExpression, "operator %s not valid in an index expression", exprT.Op)
	case *AccessExpr:
		return errors.Wrapf(ErrMalformedExpression, "tensor access %s not valid in an index expression", exprT.Tensor.Name)
	}
	return errors.Wrapf(ErrMalformedExpression, "%T not valid in an index expression", expr)
}

// linearizeMul handles multiplication: one operand has to reduce to a
// constant for the product to stay affine.
func linearizeMul(a *Affine, expr *BinaryExpr, scale int) error {
	x, errX := Linearize(expr.X)
	y, errY := Linearize(expr.Y)
	if errX != nil {
		return errX
	}
	if errY != nil {
		return errY
	}
	if k, ok := x.IsConst(); ok {
		a.add(y, scale*k)
		return nil
	}
	if k, ok := y.IsConst(); ok {
		a.add(x, scale*k)
		return nil
	}
	return errors.Wrapf(ErrMalformedExpression, "product of two index variables in %s", expr)
}
