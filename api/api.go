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

// Package api analyzes whole comprehension definitions.
//
// The signature table of a definition is built once, then every statement
// is analyzed against it, sequentially or on a bounded pool of workers.
// Statements are isolated from each other: a statement failing analysis
// does not stop the others, and all failures are aggregated in the
// returned error.
package api

import (
	"runtime"
	"sync"

	"go.uber.org/multierr"
	"k8s.io/klog/v2"

	"github.com/tc-org/tc/build/analyzer"
	"github.com/tc-org/tc/build/ast"
	"github.com/tc-org/tc/build/fmterr"
	"github.com/tc-org/tc/build/ir"
	"github.com/tc-org/tc/build/sig"
)

// Options configure the analysis of a definition.
type Options struct {
	// Workers is the number of statements analyzed concurrently. Zero
	// or one analyzes sequentially; a negative value uses one worker
	// per CPU.
	Workers int
}

// Result is the outcome of analyzing a definition. Spaces is indexed like
// the statement list of the definition; a statement failing analysis
// leaves a nil entry.
type Result struct {
	Def    *ast.Def
	Spaces []*ir.IterationSpace
}

// Analyze analyzes every statement of a definition sequentially.
func Analyze(def *ast.Def) (*Result, error) {
	return AnalyzeWith(Options{}, def)
}

// AnalyzeWith analyzes every statement of a definition with the given
// options. Statement analyses share only the read-only signature table, so
// they can run concurrently without synchronization.
func AnalyzeWith(opts Options, def *ast.Def) (*Result, error) {
	tbl, err := sig.BuildTable(def)
	if err != nil {
		return nil, err
	}
	an := analyzer.New(tbl, def.FSet)
	res := &Result{Def: def, Spaces: make([]*ir.IterationSpace, len(def.Stmts))}
	errs := make([]error, len(def.Stmts))
	analyzeOne := func(i int) {
		space, err := an.Analyze(def.Stmts[i])
		if err != nil {
			errs[i] = fmterr.PrefixWith("statement %d: ", i)(err)
			return
		}
		res.Spaces[i] = space
	}
	workers := opts.Workers
	if workers < 0 {
		workers = runtime.NumCPU()
	}
	if workers <= 1 {
		for i := range def.Stmts {
			analyzeOne(i)
		}
		return res, multierr.Combine(errs...)
	}
	klog.V(1).Infof("analyzing %d statements of %q on %d workers", len(def.Stmts), def.Name, workers)
	// Workers write to distinct indices of res.Spaces and errs.
	idx := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				analyzeOne(i)
			}
		}()
	}
	for i := range def.Stmts {
		idx <- i
	}
	close(idx)
	wg.Wait()
	return res, multierr.Combine(errs...)
}
