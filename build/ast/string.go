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
	"fmt"
	"strings"
)

// String returns the name of the index variable.
func (x *Ident) String() string { return x.Name }

// String returns the literal value.
func (x *NumberLit) String() string { return fmt.Sprint(x.Val) }

// String returns the operator applied to its operand.
func (x *UnaryExpr) String() string {
	return x.Op.String() + x.X.String()
}

// String returns the infix form of the operation.
func (x *BinaryExpr) String() string {
	return fmt.Sprintf("%s%s%s", x.X, x.Op, x.Y)
}

// String returns the parenthesized expression.
func (x *ParenExpr) String() string {
	return fmt.Sprintf("(%s)", x.X)
}

// String returns the access in the source syntax, for example A(i,j).
func (x *AccessExpr) String() string {
	index := make([]string, len(x.Index))
	for i, expr := range x.Index {
		index[i] = expr.String()
	}
	return fmt.Sprintf("%s(%s)", x.Tensor.Name, strings.Join(index, ","))
}

// String returns the clause in the source syntax, for example kw in 0:2.
func (c *RangeClause) String() string {
	return fmt.Sprintf("%s in %s:%s", c.Var.Name, c.Lo, c.Hi)
}

// String returns the statement in the source syntax.
func (s *Statement) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", s.Output, s.Comb, s.RHS)
	if len(s.Where) > 0 {
		clauses := make([]string, len(s.Where))
		for i, c := range s.Where {
			clauses[i] = c.String()
		}
		fmt.Fprintf(&b, " where %s", strings.Join(clauses, ", "))
	}
	return b.String()
}

// String returns the declaration in the source syntax,
// for example float32 A(128,256).
func (d *TensorDecl) String() string {
	exts := make([]string, len(d.Shape))
	for i, ext := range d.Shape {
		exts[i] = fmt.Sprint(ext)
	}
	return fmt.Sprintf("%s %s(%s)", d.DType, d.Name, strings.Join(exts, ","))
}

// String returns the affine form as an expression string, for example
// 2*i+kw-1.
func (a *Affine) String() string {
	var b strings.Builder
	for _, v := range a.Vars {
		k := a.Coeff[v]
		switch {
		case k == 1:
			writeTerm(&b, v)
		case k == -1:
			b.WriteString("-")
			b.WriteString(v)
		default:
			writeTerm(&b, fmt.Sprintf("%d*%s", k, v))
		}
	}
	if a.Const != 0 || len(a.Vars) == 0 {
		writeTerm(&b, fmt.Sprint(a.Const))
	}
	return b.String()
}

func writeTerm(b *strings.Builder, term string) {
	if b.Len() > 0 && !strings.HasPrefix(term, "-") {
		b.WriteString("+")
	}
	b.WriteString(term)
}
