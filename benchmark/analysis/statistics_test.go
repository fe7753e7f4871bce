package analysis

import (
	"math"
	"testing"
)

func TestMannWhitneyU(t *testing.T) {
	tests := []struct {
		name       string
		sample1    []float64
		sample2    []float64
		wantSignif bool
	}{
		{
			name:       "identical samples",
			sample1:    []float64{1, 2, 3, 4, 5},
			sample2:    []float64{1, 2, 3, 4, 5},
			wantSignif: false,
		},
		{
			name:       "clearly different samples",
			sample1:    []float64{1, 2, 3, 4, 5},
			sample2:    []float64{10, 11, 12, 13, 14},
			wantSignif: true,
		},
		{
			name:       "highly overlapping samples",
			sample1:    []float64{3, 4, 5, 6, 7},
			sample2:    []float64{4, 5, 6, 7, 8},
			wantSignif: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MannWhitneyU(tt.sample1, tt.sample2)
			if result.Significant != tt.wantSignif {
				t.Errorf("Significant = %v, want %v (p=%f)", result.Significant, tt.wantSignif, result.PValue)
			}
		})
	}
}

func TestMannWhitneyU_Empty(t *testing.T) {
	result := MannWhitneyU([]float64{}, []float64{1, 2, 3})
	if result.U != 0 {
		t.Errorf("U = %f, want 0 for empty sample", result.U)
	}
	if result.Significant {
		t.Error("empty sample should never be significant")
	}
}

func TestEffectSize(t *testing.T) {
	tests := []struct {
		name       string
		sample1    []float64
		sample2    []float64
		wantInterp string
	}{
		{
			name:       "large effect",
			sample1:    []float64{1, 2, 3, 2, 1},
			sample2:    []float64{10, 11, 12, 11, 10},
			wantInterp: "large",
		},
		{
			name:       "no effect",
			sample1:    []float64{5, 6, 7, 6, 5},
			sample2:    []float64{5, 6, 7, 6, 5},
			wantInterp: "negligible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			es := ComputeEffectSize(tt.sample1, tt.sample2)
			if es.Interpretation != tt.wantInterp {
				t.Errorf("Interpretation = %q, want %q (d=%f)", es.Interpretation, tt.wantInterp, es.CohensD)
			}
		})
	}
}

func TestEffectSize_TinySamples(t *testing.T) {
	es := ComputeEffectSize([]float64{1}, []float64{2, 3})
	if es.Interpretation != "undefined" {
		t.Errorf("Interpretation = %q, want undefined", es.Interpretation)
	}
}

func TestDescribe(t *testing.T) {
	stats := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	if stats.Mean != 5 {
		t.Errorf("Mean = %f, want 5", stats.Mean)
	}
	if stats.Min != 2 || stats.Max != 9 {
		t.Errorf("Min/Max = %f/%f, want 2/9", stats.Min, stats.Max)
	}
	if stats.N != 8 {
		t.Errorf("N = %d, want 8", stats.N)
	}
	// Population standard deviation of this set is 2; gonum computes the
	// sample version.
	if math.Abs(stats.StdDev-2.138) > 0.01 {
		t.Errorf("StdDev = %f, want about 2.138", stats.StdDev)
	}
}

func TestDescribe_Empty(t *testing.T) {
	stats := Describe(nil)
	if stats.Mean != 0 || stats.N != 0 {
		t.Errorf("Describe(nil) = %+v, want zeros", stats)
	}
}
