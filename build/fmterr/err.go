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

import (
	"fmt"
	"go/token"
	"io"

	"github.com/pkg/errors"
)

type (
	// ErrorWithPos is an error attached to a position in the
	// comprehension source.
	ErrorWithPos interface {
		error
		FSet() *token.FileSet
		Src() Node
		Err() error
	}

	errorWithPos struct {
		fset *token.FileSet
		src  Node
		pos  token.Pos
		err  error
	}
)

// Position adds source position information to an error.
func Position(fset *token.FileSet, src Node, err error) ErrorWithPos {
	pos := token.NoPos
	if src != nil {
		pos = src.Pos()
	}
	return errorWithPos{fset: fset, src: src, pos: pos, err: err}
}

// Errorf returns a formatted analysis error for the user.
func Errorf(fset *token.FileSet, src Node, format string, a ...any) error {
	return Position(fset, src, errors.Errorf(format, a...))
}

// Internal marks an error as internal, potentially adding additional information.
func Internal(err error) error {
	return fmt.Errorf("internal error. This is a bug in the compiler. Please report it. Error:\n%+v", err)
}

// Error returns a string description of the error.
func (err errorWithPos) Error() string {
	if err.fset == nil || !err.pos.IsValid() {
		return err.err.Error()
	}
	return PosString(err.fset, err.pos) + " " + err.err.Error()
}

// Unwrap the error.
func (err errorWithPos) Unwrap() error {
	return err.err
}

// Format writes the error into the state of the formatter.
func (err errorWithPos) Format(s fmt.State, verb rune) {
	format(err, s, verb)
}

func (err errorWithPos) FSet() *token.FileSet {
	return err.fset
}

func (err errorWithPos) Src() Node {
	return err.src
}

func (err errorWithPos) Err() error {
	return err.err
}

func formatVerbose(err error, s fmt.State) {
	fmt.Fprintf(s, "%s", err.Error())
	var withSt interface {
		StackTrace() errors.StackTrace
	}
	if !errors.As(err, &withSt) {
		return
	}
	fmt.Fprintf(s, "\nError generated at:%+v\n", withSt.StackTrace())
}

func format(err error, s fmt.State, verb rune) {
	switch verb {
	case 'w':
		fallthrough
	case 'v':
		if s.Flag('+') {
			formatVerbose(err, s)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, err.Error())
	case 'q':
		fmt.Fprintf(s, "%q", err.Error())
	}
}
