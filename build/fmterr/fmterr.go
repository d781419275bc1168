// Copyright 2024 Google LLC
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

// Package fmterr provides helpers to accumulate errors while analyzing
// comprehension statements and to format them with source positions.
package fmterr

import (
	"fmt"
	"go/token"
)

// Node is any syntax node reporting its position. Nodes built
// programmatically report token.NoPos and their errors carry no position.
type Node interface {
	Pos() token.Pos
}

// PrefixWith returns a function to prefix errors with a formatted string.
func PrefixWith(s string, o ...any) func(err error) error {
	return func(err error) error {
		return fmt.Errorf("%s%w", fmt.Sprintf(s, o...), err)
	}
}

// PosString returns a position as a string that can be used for an error.
func PosString(fset *token.FileSet, pos token.Pos) string {
	return fset.Position(pos).String() + ":"
}

// FileSet builds errors formatted for a given file set.
type FileSet struct {
	FSet *token.FileSet
}

// Errorf returns a formatted analysis error for the user.
func (f FileSet) Errorf(node Node, format string, a ...any) error {
	return Errorf(f.FSet, node, format, a...)
}

// Position positions an error in the comprehension source.
func (f FileSet) Position(node Node, err error) error {
	return Position(f.FSet, node, err)
}
