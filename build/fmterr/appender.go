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

package fmterr

import "go/token"

// Appender appends errors to a set within the context of a file set.
type Appender struct {
	errors Errors
	fset   FileSet
}

// NewAppender returns a new appender collecting errors for the given file
// set. A nil file set degrades errors to plain messages.
func NewAppender(fset *token.FileSet) *Appender {
	return &Appender{fset: FileSet{FSet: fset}}
}

// Append an error to the list of errors.
func (app *Appender) Append(err error) bool {
	return app.errors.Append(err)
}

// AppendAt appends an existing error at the position of a node.
func (app *Appender) AppendAt(node Node, err error) bool {
	return app.Append(app.fset.Position(node, err))
}

// Appendf appends an error at the position of a node.
func (app *Appender) Appendf(node Node, format string, a ...any) bool {
	return app.Append(app.fset.Errorf(node, format, a...))
}

// AppendInternalf appends an internal error at the position of a node.
func (app *Appender) AppendInternalf(node Node, format string, a ...any) bool {
	return app.Append(Internal(app.fset.Errorf(node, format, a...)))
}

// FSet returns the error file set formatter.
func (app *Appender) FSet() FileSet {
	return app.fset
}

// Empty returns true if no error has been appended.
func (app *Appender) Empty() bool {
	return app.errors.Empty()
}

// Errors returns the set of errors or nil if no error has been appended.
func (app *Appender) Errors() *Errors {
	if app.errors.Empty() {
		return nil
	}
	return &app.errors
}

// ToError returns the collected errors as an error, or nil.
func (app *Appender) ToError() error {
	return app.Errors().ToError()
}

// String representation of the error.
func (app *Appender) String() string {
	return app.errors.String()
}
