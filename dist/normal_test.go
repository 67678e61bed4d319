package dist_test

import (
	"math"
	"testing"

	"github.com/EgorDm/statrs/dist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormal_New_RejectsBadParams(t *testing.T) {
	cases := []struct{ mean, stdDev float64 }{
		{0, 0},
		{0, -1},
		{math.NaN(), 1},
		{0, math.NaN()},
		{math.Inf(1), 1},
		{0, math.Inf(1)},
	}
	for _, tc := range cases {
		_, err := dist.NewNormal(tc.mean, tc.stdDev)
		assert.ErrorIs(t, err, dist.ErrInvalidParams, "N(%v, %v) must be rejected", tc.mean, tc.stdDev)
	}
}

func TestNormal_StandardMoments(t *testing.T) {
	n, err := dist.NewNormal(0.0, 1.0)
	require.NoError(t, err)

	m, err := n.Mean()
	require.NoError(t, err)
	assert.Equal(t, 0.0, m, "standard normal mean")

	v, err := n.Variance()
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "standard normal variance")

	sk, err := n.Skewness()
	require.NoError(t, err)
	assert.Equal(t, 0.0, sk, "normal skewness is always zero")

	ent, err := n.Entropy()
	require.NoError(t, err)
	assert.InDelta(t, 1.4189385332046727, ent, 1e-14, "½·ln(2πe)")

	assert.True(t, math.IsInf(n.Min(), -1), "support is the whole line")
	assert.True(t, math.IsInf(n.Max(), 1), "support is the whole line")
}

func TestNormal_DensityAndCDF(t *testing.T) {
	n, err := dist.NewNormal(0.0, 1.0)
	require.NoError(t, err)

	p, err := n.PDF(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.3989422804014327, p, 1e-15, "φ(0) = 1/√(2π)")

	c, err := n.CDF(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, c, 1e-15, "Φ(0) = ½ by symmetry")

	c, err = n.CDF(1.96)
	require.NoError(t, err)
	assert.InDelta(t, 0.9750021048517795, c, 1e-12, "the 97.5% quantile everyone memorizes")

	lp, err := n.LnPDF(3)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(p)-4.5, lp, 1e-12, "ln φ(3) = ln φ(0) − 9/2")
}

func TestNormal_ShiftAndScale(t *testing.T) {
	n, err := dist.NewNormal(10.0, 2.0)
	require.NoError(t, err)
	std, err := dist.NewNormal(0.0, 1.0)
	require.NoError(t, err)

	// N(10, 2) at 12 is the standard density at z = 1, scaled by 1/σ.
	want, err := std.PDF(1)
	require.NoError(t, err)
	got, err := n.PDF(12)
	require.NoError(t, err)
	assert.InDelta(t, want/2, got, 1e-15, "location–scale relation for the density")

	med, err := n.Median()
	require.NoError(t, err)
	assert.Equal(t, 10.0, med, "normal median equals its mean")

	mode, err := n.Mode()
	require.NoError(t, err)
	assert.Equal(t, 10.0, mode, "normal mode equals its mean")
}

func TestNormal_Sample_Deterministic(t *testing.T) {
	n, err := dist.NewNormal(5.0, 3.0)
	require.NoError(t, err)

	a := n.Sample(dist.NewSource(42))
	b := n.Sample(dist.NewSource(42))
	assert.Equal(t, a, b, "same seed must reproduce the same draw")

	// A crude but effective sanity band: one draw from N(5, 3) lands
	// within ±10σ essentially always.
	assert.Less(t, math.Abs(a-5), 30.0, "draw implausibly far from the mean")
}

func TestNormal_Sample_NilSourceUsesDefault(t *testing.T) {
	n, err := dist.NewNormal(0.0, 1.0)
	require.NoError(t, err)
	x := n.Sample(nil)
	assert.False(t, math.IsNaN(x), "nil source falls back to the default stream")
}
