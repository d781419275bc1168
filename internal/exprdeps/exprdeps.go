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

// Package exprdeps extracts index variables and tensor accesses from
// comprehension expressions.
package exprdeps

import (
	"slices"

	"github.com/tc-org/tc/base/ordered"
	"github.com/tc-org/tc/build/ast"
)

func idents(done *ordered.Map[string, *ast.Ident], expr ast.Expr) {
	switch exprT := expr.(type) {
	case *ast.Ident:
		if exprT == nil {
			return
		}
		done.Store(exprT.Name, exprT)
	case *ast.ParenExpr:
		idents(done, exprT.X)
	case *ast.UnaryExpr:
		idents(done, exprT.X)
	case *ast.BinaryExpr:
		idents(done, exprT.X)
		idents(done, exprT.Y)
	case *ast.AccessExpr:
		for _, index := range exprT.Index {
			idents(done, index)
		}
	}
}

// Idents returns a slice of all index variables used in an expression, in
// first-occurrence order. Variables indexing a tensor access are included;
// the tensor name itself is not.
func Idents(exprs ...ast.Expr) []*ast.Ident {
	done := ordered.NewMap[string, *ast.Ident]()
	for _, expr := range exprs {
		idents(done, expr)
	}
	return slices.Collect(done.Values())
}

func accesses(done []*ast.AccessExpr, expr ast.Expr) []*ast.AccessExpr {
	switch exprT := expr.(type) {
	case *ast.AccessExpr:
		done = append(done, exprT)
	case *ast.ParenExpr:
		done = accesses(done, exprT.X)
	case *ast.UnaryExpr:
		done = accesses(done, exprT.X)
	case *ast.BinaryExpr:
		done = accesses(done, exprT.X)
		done = accesses(done, exprT.Y)
	}
	return done
}

// Accesses returns all tensor accesses of an expression, in source order.
func Accesses(expr ast.Expr) []*ast.AccessExpr {
	return accesses(nil, expr)
}
