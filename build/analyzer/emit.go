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

import "github.com/tc-org/tc/build/ir"

// emit assembles the iteration space of a validated statement. Emission is
// pure: identical inputs yield identical artifacts.
func (a *analysis) emit() *ir.IterationSpace {
	space := &ir.IterationSpace{
		Stmt:      a.stmt,
		Output:    a.output,
		Reduction: a.reduction,
		Comb:      a.comb,
	}
	a.advance(stageEmitted)
	return space
}
