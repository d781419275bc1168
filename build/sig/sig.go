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

// Package sig indexes the tensor declarations of a comprehension definition.
//
// A table is built once per definition, before any statement is analyzed,
// and is read-only afterwards. Statement analyses can then share one table
// concurrently without synchronization.
package sig

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/tc-org/tc/base/ordered"
	"github.com/tc-org/tc/build/ast"
)

var (
	// ErrUnknownTensor reports an access to a tensor that the enclosing
	// definition does not declare.
	ErrUnknownTensor = errors.New("unknown tensor")

	// ErrDuplicateDeclaration reports a tensor name declared more
	// than once in a definition.
	ErrDuplicateDeclaration = errors.New("duplicate declaration")
)

// Table maps tensor names to their declarations, in declaration order.
type Table struct {
	decls *ordered.Map[string, *ast.TensorDecl]
}

// NewTable returns an empty signature table.
func NewTable() *Table {
	return &Table{decls: ordered.NewMap[string, *ast.TensorDecl]()}
}

// BuildTable returns the signature table of a definition, declaring all of
// its tensors.
func BuildTable(def *ast.Def) (*Table, error) {
	tbl := NewTable()
	for _, decl := range def.Tensors {
		if err := tbl.Declare(decl); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// Declare adds a tensor declaration to the table. Declaring a name twice
// fails with ErrDuplicateDeclaration.
func (t *Table) Declare(decl *ast.TensorDecl) error {
	if t.decls.Has(decl.Name) {
		return errors.Wrapf(ErrDuplicateDeclaration, "tensor %s", decl.Name)
	}
	t.decls.Store(decl.Name, decl)
	return nil
}

// Lookup returns the declaration of a tensor, failing with
// ErrUnknownTensor if the name has not been declared.
func (t *Table) Lookup(name string) (*ast.TensorDecl, error) {
	decl, ok := t.decls.Load(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTensor, "tensor %s", name)
	}
	return decl, nil
}

// Decls returns an iterator over the declarations in declaration order.
func (t *Table) Decls() iter.Seq[*ast.TensorDecl] {
	return t.decls.Values()
}

// Size returns the number of declared tensors.
func (t *Table) Size() int {
	return t.decls.Size()
}
