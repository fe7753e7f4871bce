package analysis

import (
	"fmt"

	"github.com/hoardlib/hoard/benchmark/simulation"
)

// PolicyComparison contains a full statistical comparison between two
// eviction policies over per-segment hit-rate samples.
type PolicyComparison struct {
	Policy1         string
	Policy2         string
	Stats1          *DescriptiveStats
	Stats2          *DescriptiveStats
	MannWhitney     *MannWhitneyResult
	EffectSize      *EffectSize
	Winner          string // Name of the policy with the higher mean hit rate, or "tie".
	WinnerConfident bool   // True if statistically significant.
}

// ComparePolicies performs a full statistical comparison between two
// replay results. Higher hit rate wins.
func ComparePolicies(result1, result2 *simulation.Result) *PolicyComparison {
	sample1 := result1.SegmentHitRates
	sample2 := result2.SegmentHitRates

	mw := MannWhitneyU(sample1, sample2)
	es := ComputeEffectSize(sample1, sample2)
	stats1 := Describe(sample1)
	stats2 := Describe(sample2)

	var winner string
	var confident bool

	switch {
	case stats1.Mean > stats2.Mean:
		winner = result1.TargetName
		confident = mw.Significant
	case stats2.Mean > stats1.Mean:
		winner = result2.TargetName
		confident = mw.Significant
	default:
		winner = "tie"
	}

	return &PolicyComparison{
		Policy1:         result1.TargetName,
		Policy2:         result2.TargetName,
		Stats1:          stats1,
		Stats2:          stats2,
		MannWhitney:     mw,
		EffectSize:      es,
		Winner:          winner,
		WinnerConfident: confident,
	}
}

// Summary returns a human-readable summary of the comparison.
func (c *PolicyComparison) Summary() string {
	sig := "not statistically significant"
	if c.MannWhitney.Significant {
		sig = fmt.Sprintf("statistically significant (p=%.4f)", c.MannWhitney.PValue)
	}

	return fmt.Sprintf(
		"%s vs %s:\n"+
			"  %s: mean=%.2f%%, median=%.2f%%, std=%.2f\n"+
			"  %s: mean=%.2f%%, median=%.2f%%, std=%.2f\n"+
			"  Difference: %.2f points\n"+
			"  Effect size: %.2f (%s)\n"+
			"  Result: %s, %s",
		c.Policy1, c.Policy2,
		c.Policy1, c.Stats1.Mean, c.Stats1.Median, c.Stats1.StdDev,
		c.Policy2, c.Stats2.Mean, c.Stats2.Median, c.Stats2.StdDev,
		c.Stats1.Mean-c.Stats2.Mean,
		c.EffectSize.CohensD, c.EffectSize.Interpretation,
		c.Winner, sig,
	)
}

// CompareAll compares every result against the named baseline.
func CompareAll(results []*simulation.Result, baseline string) []*PolicyComparison {
	var base *simulation.Result
	for _, r := range results {
		if r.TargetName == baseline {
			base = r
			break
		}
	}
	if base == nil {
		return nil
	}

	var comparisons []*PolicyComparison
	for _, r := range results {
		if r.TargetName == baseline {
			continue
		}
		comparisons = append(comparisons, ComparePolicies(r, base))
	}
	return comparisons
}
