// Package reporting provides report generation for benchmark results.
package reporting

import (
	"fmt"
	"io"
	"time"

	"github.com/hoardlib/hoard/benchmark/analysis"
	"github.com/hoardlib/hoard/benchmark/simulation"
)

// MarkdownReport generates benchmark reports in Markdown format.
type MarkdownReport struct {
	w io.Writer
}

// NewMarkdownReport creates a new Markdown report writer.
func NewMarkdownReport(w io.Writer) *MarkdownReport {
	return &MarkdownReport{w: w}
}

// WriteHeader writes the report header.
func (r *MarkdownReport) WriteHeader(title string) {
	fmt.Fprintf(r.w, "# %s\n\n", title)
	fmt.Fprintf(r.w, "Generated: %s\n\n", time.Now().Format(time.RFC3339))
}

// WriteMethodology writes the methodology section.
func (r *MarkdownReport) WriteMethodology(workloadName string, accesses, capacity, segmentSize int) {
	fmt.Fprintln(r.w, "## Methodology")
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "- **Workload:** %s\n", workloadName)
	fmt.Fprintf(r.w, "- **Accesses:** %d\n", accesses)
	fmt.Fprintf(r.w, "- **Cache capacity:** %d entries\n", capacity)
	fmt.Fprintf(r.w, "- **Segment size:** %d accesses per hit-rate sample\n", segmentSize)
	fmt.Fprintln(r.w, "- **Metric:** segment hit rate (higher is better)")
	fmt.Fprintln(r.w, "- **Statistical tests:** Mann-Whitney U (non-parametric), Cohen's d effect size")
	fmt.Fprintln(r.w)
}

// WriteSummaryTable writes the summary comparison table.
func (r *MarkdownReport) WriteSummaryTable(results []*simulation.Result) {
	fmt.Fprintln(r.w, "## Summary")
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "| Policy | Hits | Misses | Hit Rate |")
	fmt.Fprintln(r.w, "|--------|------|--------|----------|")

	for _, res := range results {
		fmt.Fprintf(r.w, "| %s | %d | %d | %.2f%% |\n",
			res.TargetName, res.Hits, res.Misses, res.HitRate())
	}
	fmt.Fprintln(r.w)
}

// WriteComparison writes a detailed comparison section.
func (r *MarkdownReport) WriteComparison(comp *analysis.PolicyComparison) {
	fmt.Fprintf(r.w, "## %s vs %s\n\n", comp.Policy1, comp.Policy2)

	fmt.Fprintln(r.w, "| Metric | "+comp.Policy1+" | "+comp.Policy2+" |")
	fmt.Fprintln(r.w, "|--------|------|------|")
	fmt.Fprintf(r.w, "| Mean hit rate | %.2f%% | %.2f%% |\n", comp.Stats1.Mean, comp.Stats2.Mean)
	fmt.Fprintf(r.w, "| Median hit rate | %.2f%% | %.2f%% |\n", comp.Stats1.Median, comp.Stats2.Median)
	fmt.Fprintf(r.w, "| Std dev | %.2f | %.2f |\n", comp.Stats1.StdDev, comp.Stats2.StdDev)
	fmt.Fprintf(r.w, "| Min | %.2f%% | %.2f%% |\n", comp.Stats1.Min, comp.Stats2.Min)
	fmt.Fprintf(r.w, "| Max | %.2f%% | %.2f%% |\n", comp.Stats1.Max, comp.Stats2.Max)
	fmt.Fprintln(r.w)

	sig := "not significant"
	if comp.MannWhitney.Significant {
		sig = "significant"
	}
	fmt.Fprintf(r.w, "Mann-Whitney U: p=%.4f (%s). Effect size: %.2f (%s).\n\n",
		comp.MannWhitney.PValue, sig, comp.EffectSize.CohensD, comp.EffectSize.Interpretation)

	if comp.Winner == "tie" {
		fmt.Fprintln(r.w, "**Result: tie.**")
	} else if comp.WinnerConfident {
		fmt.Fprintf(r.w, "**Result: %s wins.**\n", comp.Winner)
	} else {
		fmt.Fprintf(r.w, "**Result: %s ahead, but not statistically significant.**\n", comp.Winner)
	}
	fmt.Fprintln(r.w)
}

// WriteText writes a plain-text summary for terminal output.
func WriteText(w io.Writer, results []*simulation.Result, comparisons []*analysis.PolicyComparison) {
	fmt.Fprintf(w, "%-24s %10s %10s %10s\n", "POLICY", "HITS", "MISSES", "HIT RATE")
	for _, res := range results {
		fmt.Fprintf(w, "%-24s %10d %10d %9.2f%%\n",
			res.TargetName, res.Hits, res.Misses, res.HitRate())
	}
	for _, comp := range comparisons {
		fmt.Fprintln(w)
		fmt.Fprintln(w, comp.Summary())
	}
}
