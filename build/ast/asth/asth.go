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

// Package asth provides helper functions to build comprehension syntax
// trees programmatically, mostly for tests.
package asth

import (
	"go/token"

	"github.com/tc-org/tc/build/ast"
)

// Ident returns an index variable reference.
func Ident(name string) *ast.Ident {
	return &ast.Ident{Name: name}
}

// Num returns an integer literal.
func Num(val int) *ast.NumberLit {
	return &ast.NumberLit{Val: val}
}

// Neg returns the negation of an expression.
func Neg(x ast.Expr) *ast.UnaryExpr {
	return &ast.UnaryExpr{Op: token.SUB, X: x}
}

// Add returns the sum of two expressions.
func Add(x, y ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{X: x, Op: token.ADD, Y: y}
}

// Sub returns the difference of two expressions.
func Sub(x, y ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{X: x, Op: token.SUB, Y: y}
}

// Mul returns the product of two expressions.
func Mul(x, y ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{X: x, Op: token.MUL, Y: y}
}

// Binary returns a binary expression with an arbitrary operator.
func Binary(x ast.Expr, op token.Token, y ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{X: x, Op: op, Y: y}
}

// Access returns a tensor access. Index expressions given as strings are
// converted to identifiers, integers to literals.
func Access(tensor string, index ...any) *ast.AccessExpr {
	exprs := make([]ast.Expr, len(index))
	for i, x := range index {
		switch xT := x.(type) {
		case string:
			exprs[i] = Ident(xT)
		case int:
			exprs[i] = Num(xT)
		case ast.Expr:
			exprs[i] = xT
		default:
			panic("index must be a string, an int, or an ast.Expr")
		}
	}
	return &ast.AccessExpr{Tensor: Ident(tensor), Index: exprs}
}

// Clause returns an explicit range clause v in lo:hi.
func Clause(v string, lo, hi int) *ast.RangeClause {
	return &ast.RangeClause{Var: Ident(v), Lo: Num(lo), Hi: Num(hi)}
}

// Tensor returns a tensor declaration.
func Tensor(name string, dtype ast.DType, role ast.TensorRole, shape ...int) *ast.TensorDecl {
	return &ast.TensorDecl{Name: name, DType: dtype, Role: role, Shape: shape}
}

// Input returns an input tensor declaration with float32 elements.
func Input(name string, shape ...int) *ast.TensorDecl {
	return Tensor(name, ast.Float32, ast.TensorInput, shape...)
}

// Output returns an output tensor declaration with float32 elements.
func Output(name string, shape ...int) *ast.TensorDecl {
	return Tensor(name, ast.Float32, ast.TensorOutput, shape...)
}

// Stmt returns a statement.
func Stmt(output *ast.AccessExpr, comb ast.Combinator, rhs ast.Expr, where ...*ast.RangeClause) *ast.Statement {
	return &ast.Statement{Output: output, Comb: comb, RHS: rhs, Where: where}
}

// Def returns a comprehension definition.
func Def(name string, tensors []*ast.TensorDecl, stmts ...*ast.Statement) *ast.Def {
	return &ast.Def{Name: name, Tensors: tensors, Stmts: stmts}
}
