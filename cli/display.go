package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/logic-lang/logicopt/runtime/engine"
)

// DisplayResult renders an engine result as aligned label/value lines
func DisplayResult(w io.Writer, result *engine.Result, useColor bool) {
	writeField(w, "Original", result.Original, useColor)
	writeField(w, "Optimized", result.Optimized, useColor)
	writeField(w, "CNF", result.CNF, useColor)
	writeField(w, "DNF", result.DNF, useColor)
	if result.Advanced != "" {
		writeField(w, "Advanced", result.Advanced, useColor)
	}
	writeField(w, "Variables", strings.Join(result.Variables, ", "), useColor)

	if result.Metrics != nil {
		displayMetrics(w, result.Metrics, useColor)
	}
	if result.TruthTables != nil {
		writeField(w, "Original table", rowVector(result.TruthTables.Original), useColor)
		writeField(w, "Optimized table", rowVector(result.TruthTables.Optimized), useColor)
	}
}

func writeField(w io.Writer, label, value string, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Colorize(fmt.Sprintf("%-16s", label+":"), ColorCyan, useColor), value)
}

func displayMetrics(w io.Writer, m *engine.Metrics, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s %d -> %d nodes, %d iterations, %s\n",
		Colorize(fmt.Sprintf("%-16s", "Metrics:"), ColorCyan, useColor),
		m.OriginalNodes, m.OptimizedNodes, m.Iterations, m.Elapsed)

	// stable rule ordering for deterministic output
	rules := make([]string, 0, len(m.RuleCounts))
	for rule := range m.RuleCounts {
		rules = append(rules, rule)
	}
	sort.Strings(rules)
	for _, rule := range rules {
		_, _ = fmt.Fprintf(w, "  %s %s: %d\n",
			Colorize("·", ColorGray, useColor), rule, m.RuleCounts[rule])
	}
}

// rowVector renders a truth table as a compact 0/1 string
func rowVector(table []bool) string {
	var b strings.Builder
	for _, v := range table {
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
