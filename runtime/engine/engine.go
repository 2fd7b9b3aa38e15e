// Package engine is the façade over the expression pipeline: lex, parse,
// validate, rewrite to a fixed point, build both normal forms, compile truth
// tables, recognise advanced shapes, and print.
//
// A single Optimize call is a self-contained CPU-bound computation with no
// hidden mutable state; callers may run independent calls concurrently.
// Given the same source and options the same Result is produced
// byte-for-byte.
package engine

import (
	"fmt"
	"time"

	"github.com/logic-lang/logicopt/core/ast"
	oerrors "github.com/logic-lang/logicopt/core/errors"
	"github.com/logic-lang/logicopt/runtime/normalform"
	"github.com/logic-lang/logicopt/runtime/parser"
	"github.com/logic-lang/logicopt/runtime/patterns"
	"github.com/logic-lang/logicopt/runtime/printer"
	"github.com/logic-lang/logicopt/runtime/rewriter"
	"github.com/logic-lang/logicopt/runtime/truthtable"
)

// Options selects the optional Result fields
type Options struct {
	CollectMetrics   bool // fill Result.Metrics
	BuildTruthTables bool // fill Result.TruthTables when variables <= 20
	EmitAdvanced     bool // run the pattern recogniser
}

// Metrics reports what the rewriter did
type Metrics struct {
	OriginalNodes  int
	OptimizedNodes int
	Iterations     int
	RuleCounts     map[string]int
	Elapsed        time.Duration
}

// TruthTables carries the row vectors for the original and optimised trees
// over the sorted free-variable set of the original expression
type TruthTables struct {
	Original  []bool
	Optimized []bool
}

// Result is the full outcome of one Optimize call
type Result struct {
	Original    string
	Optimized   string
	CNF         string
	DNF         string
	Advanced    string // empty when the recogniser found nothing
	Variables   []string
	Metrics     *Metrics
	TruthTables *TruthTables
}

// Optimize runs the full pipeline over one source expression
func Optimize(source string, opts Options) (result *Result, err error) {
	// rules never patch invalid structure; a tripped assertion anywhere in
	// the pipeline surfaces as a single typed error at this boundary
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = oerrors.New(oerrors.ErrInternalInvariant, fmt.Sprint(r))
		}
	}()

	start := time.Now()
	deadline := start.Add(MaxWallClock)

	// cheap structural limits come before any allocation-heavy work
	if err := ValidateSource(source); err != nil {
		return nil, err
	}

	original, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	variables := ast.Variables(original)
	if err := ValidateVariables(variables); err != nil {
		return nil, err
	}

	rw := rewriter.NewWithDeadline(deadline)
	optimized, iterations, err := rw.Rewrite(original.Clone())
	if err != nil {
		return nil, err
	}

	cnf := normalform.ToCNF(optimized)
	if err := checkDeadline(deadline); err != nil {
		return nil, err
	}
	dnf := normalform.ToDNF(optimized)
	if err := checkDeadline(deadline); err != nil {
		return nil, err
	}

	result = &Result{
		Original:  printer.Print(original),
		Optimized: printer.Print(optimized),
		CNF:       printer.Print(cnf),
		DNF:       printer.Print(dnf),
		Variables: variables,
	}

	if opts.EmitAdvanced {
		advanced := patterns.ToAdvanced(optimized)
		if !ast.Equal(advanced, optimized) {
			result.Advanced = printer.Print(advanced)
		}
	}

	if opts.BuildTruthTables && len(variables) <= truthtable.MaxTableVariables {
		originalTable, err := truthtable.Table(original, variables)
		if err != nil {
			return nil, err
		}
		optimizedTable, err := truthtable.Table(optimized, variables)
		if err != nil {
			return nil, err
		}
		result.TruthTables = &TruthTables{
			Original:  originalTable,
			Optimized: optimizedTable,
		}
	}

	if opts.CollectMetrics {
		result.Metrics = &Metrics{
			OriginalNodes:  ast.NodeCount(original),
			OptimizedNodes: ast.NodeCount(optimized),
			Iterations:     iterations,
			RuleCounts:     rw.Counts(),
			Elapsed:        time.Since(start),
		}
	}

	return result, nil
}

func checkDeadline(deadline time.Time) error {
	if time.Now().After(deadline) {
		return oerrors.New(oerrors.ErrTimeout, "wall-clock budget exhausted")
	}
	return nil
}
