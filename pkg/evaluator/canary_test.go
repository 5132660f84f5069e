package evaluator

import (
	"fmt"
	"math"
	"testing"

	"github.com/forgeworks/metabuild/ent/run"
	"github.com/forgeworks/metabuild/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestCompareRecommendationTable(t *testing.T) {
	cfg := config.DefaultCanaryConfig()
	ctrl := GroupWindow{Samples: 50, SuccessRate: 0.8, MeanCostUSD: 10, MeanDurationMs: 1000}

	tests := []struct {
		name string
		exp  GroupWindow
		want Recommendation
	}{
		{
			name: "aggressive promote on clear win",
			exp:  GroupWindow{Samples: 50, SuccessRate: 0.95, MeanCostUSD: 8, MeanDurationMs: 900},
			want: RecommendAggressivePromote,
		},
		{
			name: "cautious promote on success win within cost bounds",
			exp:  GroupWindow{Samples: 50, SuccessRate: 0.88, MeanCostUSD: 10.5, MeanDurationMs: 1000},
			want: RecommendCautiousPromote,
		},
		{
			name: "hold when thresholds met without a win",
			exp:  GroupWindow{Samples: 50, SuccessRate: 0.8, MeanCostUSD: 10, MeanDurationMs: 1000},
			want: RecommendHold,
		},
		{
			name: "immediate rollback on degraded success",
			exp:  GroupWindow{Samples: 50, SuccessRate: 0.5, MeanCostUSD: 10, MeanDurationMs: 1000},
			want: RecommendImmediateRollback,
		},
		{
			name: "reduce percent on cost blowup",
			exp:  GroupWindow{Samples: 50, SuccessRate: 0.8, MeanCostUSD: 16, MeanDurationMs: 1000},
			want: RecommendReducePercent,
		},
		{
			name: "investigate on mixed signals",
			exp:  GroupWindow{Samples: 50, SuccessRate: 0.78, MeanCostUSD: 13, MeanDurationMs: 1000},
			want: RecommendInvestigate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Compare(ctrl, tt.exp, cfg)
			assert.Equal(t, tt.want, v.Recommendation)
			assert.NotEmpty(t, v.Reason)
		})
	}
}

func TestCompareZeroControl(t *testing.T) {
	cfg := config.DefaultCanaryConfig()

	v := Compare(GroupWindow{}, GroupWindow{}, cfg)
	assert.Equal(t, 1.0, v.SuccessRatio)
	assert.Equal(t, RecommendHold, v.Recommendation)

	v = Compare(GroupWindow{}, GroupWindow{SuccessRate: 1, MeanCostUSD: 5}, cfg)
	assert.True(t, math.IsInf(v.SuccessRatio, 1))
	assert.True(t, math.IsInf(v.CostRatio, 1))
}

func TestAssignStickyAndBounded(t *testing.T) {
	assert.Equal(t, run.CanaryGroupControl, Assign("run-1", 0))
	assert.Equal(t, run.CanaryGroupExperimental, Assign("run-1", 1))

	// Sticky: the same run id always lands in the same group.
	first := Assign("run-sticky", 0.5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Assign("run-sticky", 0.5))
	}

	// The fraction roughly controls group sizes.
	exp := 0
	const n = 2000
	for i := 0; i < n; i++ {
		if Assign(fmt.Sprintf("run-%d", i), 0.25) == run.CanaryGroupExperimental {
			exp++
		}
	}
	assert.InDelta(t, 0.25, float64(exp)/n, 0.05)
}
