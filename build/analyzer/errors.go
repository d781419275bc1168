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

package analyzer

import "github.com/pkg/errors"

// Analysis failures. Together with ast.ErrMalformedExpression,
// sig.ErrUnknownTensor, and sig.ErrDuplicateDeclaration they form the full
// error surface of semantic analysis. All are terminal for the affected
// statement: they report an authoring error in the comprehension, and the
// analyzer never recovers or retries.
var (
	// ErrRangeConflict reports an index variable constrained to two
	// different ranges. Ranges are single-assignment: a second binding
	// source must agree exactly with the first.
	ErrRangeConflict = errors.New("range conflict")

	// ErrUnboundIndexVariable reports an index variable with no binding
	// source: it appears neither alone against a tensor dimension nor
	// in an explicit range clause.
	ErrUnboundIndexVariable = errors.New("unbound index variable")

	// ErrUnsupportedCombinator reports a statement accumulating through
	// an operator outside the closed associative-commutative set.
	ErrUnsupportedCombinator = errors.New("unsupported combinator")

	// ErrEmptyReductionDomain reports a reduction dimension whose
	// resolved range contains no value.
	ErrEmptyReductionDomain = errors.New("empty reduction domain")
)
