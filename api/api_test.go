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

package api_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tc-org/tc/api"
	"github.com/tc-org/tc/build/analyzer"
	"github.com/tc-org/tc/build/ast"
	"github.com/tc-org/tc/build/ast/asth"
	"github.com/tc-org/tc/build/ir"
	"github.com/tc-org/tc/build/sig"
)

func matvec(t *testing.T) *ast.Def {
	t.Helper()
	return asth.Def("mv",
		[]*ast.TensorDecl{
			asth.Output("o", 8),
			asth.Input("A", 8, 16),
			asth.Input("B", 16),
		},
		asth.Stmt(
			asth.Access("o", "i"),
			ast.SumEq,
			asth.Mul(asth.Access("A", "i", "j"), asth.Access("B", "j")),
		),
	)
}

func TestAnalyzeDef(t *testing.T) {
	res, err := api.Analyze(matvec(t))
	require.NoError(t, err)
	require.Len(t, res.Spaces, 1)
	space := res.Spaces[0]
	require.NotNil(t, space)
	require.Equal(t, ir.Sum, space.Comb)
	i := space.Find("i")
	require.NotNil(t, i)
	require.Equal(t, ir.Range{Hi: 8}, i.Rng)
	require.Equal(t, ir.OutputDim, i.Role)
	j := space.Find("j")
	require.NotNil(t, j)
	require.Equal(t, ir.Range{Hi: 16}, j.Rng)
	require.Equal(t, ir.ReductionDim, j.Role)
}

func TestAnalyzeDuplicateTensor(t *testing.T) {
	def := matvec(t)
	def.Tensors = append(def.Tensors, asth.Input("A", 4))
	_, err := api.Analyze(def)
	require.ErrorIs(t, err, sig.ErrDuplicateDeclaration)
}

func TestStatementIsolation(t *testing.T) {
	def := matvec(t)
	// The second statement conflicts on j; the first still resolves.
	def.Stmts = append(def.Stmts,
		asth.Stmt(
			asth.Access("o", "j"),
			ast.SumEq,
			asth.Access("A", "j", "j"),
		),
	)
	res, err := api.Analyze(def)
	require.ErrorIs(t, err, analyzer.ErrRangeConflict)
	require.Len(t, res.Spaces, 2)
	require.NotNil(t, res.Spaces[0])
	require.Nil(t, res.Spaces[1])
}

func TestAnalyzeConcurrent(t *testing.T) {
	tensors := []*ast.TensorDecl{
		asth.Output("o", 8),
		asth.Input("A", 8, 16),
		asth.Input("B", 16),
	}
	var stmts []*ast.Statement
	for range 64 {
		stmts = append(stmts,
			asth.Stmt(
				asth.Access("o", "i"),
				ast.SumEq,
				asth.Mul(asth.Access("A", "i", "j"), asth.Access("B", "j")),
			),
		)
	}
	def := asth.Def("mv", tensors, stmts...)
	res, err := api.AnalyzeWith(api.Options{Workers: 4}, def)
	require.NoError(t, err)
	require.Len(t, res.Spaces, len(stmts))
	for i, space := range res.Spaces {
		require.NotNil(t, space, "statement %d", i)
		require.Same(t, def.Stmts[i], space.Stmt, "statement %d", i)
	}
}
