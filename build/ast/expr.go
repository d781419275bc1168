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

import "go/token"

type (
	// Expr is an expression node. Index expressions are built from
	// identifiers, integer literals, and affine operators; right-hand
	// sides of statements additionally use tensor accesses.
	Expr interface {
		Node
		String() string
		expr()
	}

	// Ident is a reference to an index variable.
	Ident struct {
		NamePos token.Pos
		Name    string
	}

	// NumberLit is an integer literal.
	NumberLit struct {
		ValPos token.Pos
		Val    int
	}

	// UnaryExpr is a unary operation, such as a negated index.
	UnaryExpr struct {
		OpPos token.Pos
		Op    token.Token
		X     Expr
	}

	// BinaryExpr is a binary operation. Index expressions permit
	// token.ADD, token.SUB, and token.MUL by a constant.
	BinaryExpr struct {
		X     Expr
		OpPos token.Pos
		Op    token.Token
		Y     Expr
	}

	// ParenExpr is a parenthesized expression.
	ParenExpr struct {
		Lparen token.Pos
		X      Expr
	}

	// AccessExpr is an indexed access to a declared tensor, with one
	// index expression per dimension.
	AccessExpr struct {
		Tensor *Ident
		Index  []Expr
	}
)

func (*Ident) expr()      {}
func (*NumberLit) expr()  {}
func (*UnaryExpr) expr()  {}
func (*BinaryExpr) expr() {}
func (*ParenExpr) expr()  {}
func (*AccessExpr) expr() {}

// Pos returns the position of the identifier.
func (x *Ident) Pos() token.Pos { return x.NamePos }

// Pos returns the position of the literal.
func (x *NumberLit) Pos() token.Pos { return x.ValPos }

// Pos returns the position of the operator.
func (x *UnaryExpr) Pos() token.Pos { return x.OpPos }

// Pos returns the position of the left operand.
func (x *BinaryExpr) Pos() token.Pos { return x.X.Pos() }

// Pos returns the position of the opening parenthesis.
func (x *ParenExpr) Pos() token.Pos { return x.Lparen }

// Pos returns the position of the tensor name.
func (x *AccessExpr) Pos() token.Pos { return x.Tensor.Pos() }

// Unparen returns the expression with any enclosing parentheses removed.
func Unparen(x Expr) Expr {
	for {
		paren, ok := x.(*ParenExpr)
		if !ok {
			return x
		}
		x = paren.X
	}
}
