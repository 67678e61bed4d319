package dist_test

import (
	"math"
	"testing"

	"github.com/EgorDm/statrs/dist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChiSquared_New_RejectsBadParams(t *testing.T) {
	for _, k := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		_, err := dist.NewChiSquared(k)
		assert.ErrorIs(t, err, dist.ErrInvalidParams, "χ²(%v) must be rejected", k)
	}
}

func TestChiSquared_Moments(t *testing.T) {
	c, err := dist.NewChiSquared(3.0)
	require.NoError(t, err)

	m, err := c.Mean()
	require.NoError(t, err)
	assert.Equal(t, 3.0, m)
	v, err := c.Variance()
	require.NoError(t, err)
	assert.Equal(t, 6.0, v, "2k")
	sk, err := c.Skewness()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(8.0/3.0), sk, 1e-15)
	mo, err := c.Mode()
	require.NoError(t, err)
	assert.Equal(t, 1.0, mo, "k − 2")

	md, err := c.Median()
	require.NoError(t, err)
	w := 1 - 2.0/27.0
	assert.InDelta(t, 3*w*w*w, md, 1e-15, "Wilson–Hilferty approximation")
}

func TestChiSquared_Mode_ClampsAtZero(t *testing.T) {
	c, err := dist.NewChiSquared(1.0)
	require.NoError(t, err)
	mo, err := c.Mode()
	require.NoError(t, err)
	assert.Equal(t, 0.0, mo, "below two degrees of freedom the peak sits at 0")
}

func TestChiSquared_DensityMatchesGammaForm(t *testing.T) {
	c, err := dist.NewChiSquared(3.0)
	require.NoError(t, err)
	p, err := c.PDF(1)
	require.NoError(t, err)
	// x^(1/2)·e^(−x/2) / (2^(3/2)·Γ(3/2)) at x = 1.
	want := math.Exp(-0.5) / (2 * math.Sqrt2 * math.Gamma(1.5))
	assert.InDelta(t, want, p, 1e-14, "χ²₃ density at 1")

	// Two degrees of freedom is Exp(½).
	c2, err := dist.NewChiSquared(2.0)
	require.NoError(t, err)
	cdf, err := c2.CDF(2)
	require.NoError(t, err)
	assert.InDelta(t, 1-math.Exp(-1), cdf, 1e-13, "χ²₂ is the rate-½ exponential")
}

func TestChiSquared_Sample_Properties(t *testing.T) {
	c, err := dist.NewChiSquared(5.0)
	require.NoError(t, err)
	src := dist.NewSource(17)
	const n = 20000
	var sum float64
	for i := 0; i < n; i++ {
		x := c.Sample(src)
		require.False(t, x < 0, "chi-squared draws are non-negative")
		sum += x
	}
	assert.InDelta(t, 5.0, sum/n, 0.15, "sample mean far from k")
}

func TestChi_New_RejectsBadParams(t *testing.T) {
	for _, k := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := dist.NewChi(k)
		assert.ErrorIs(t, err, dist.ErrInvalidParams, "χ(%v) must be rejected", k)
	}
}

func TestChi_TwoIsRayleigh(t *testing.T) {
	c, err := dist.NewChi(2.0)
	require.NoError(t, err)

	// Rayleigh(1): density x·e^(−x²/2), CDF 1 − e^(−x²/2).
	p, err := c.PDF(1)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-0.5), p, 1e-14)
	cdf, err := c.CDF(1)
	require.NoError(t, err)
	assert.InDelta(t, 1-math.Exp(-0.5), cdf, 1e-13)

	m, err := c.Mean()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(math.Pi/2), m, 1e-13, "Rayleigh mean √(π/2)")
	v, err := c.Variance()
	require.NoError(t, err)
	assert.InDelta(t, 2-math.Pi/2, v, 1e-13)
	mo, err := c.Mode()
	require.NoError(t, err)
	assert.Equal(t, 1.0, mo, "√(k−1)")
}

func TestChi_ThreeIsMaxwell(t *testing.T) {
	c, err := dist.NewChi(3.0)
	require.NoError(t, err)
	m, err := c.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Sqrt(2/math.Pi), m, 1e-13, "Maxwell–Boltzmann mean 2√(2/π)")
}

func TestChi_Mode_UndefinedBelowOne(t *testing.T) {
	c, err := dist.NewChi(0.5)
	require.NoError(t, err)
	_, err = c.Mode()
	assert.ErrorIs(t, err, dist.ErrUndefined, "no interior peak below one degree of freedom")
}

func TestChi_EdgeDensities(t *testing.T) {
	c, err := dist.NewChi(1.0)
	require.NoError(t, err)
	p, err := c.PDF(0)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2/math.Pi), p, 1e-15, "half-normal density at 0")

	c3, err := dist.NewChi(3.0)
	require.NoError(t, err)
	p, err = c3.PDF(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)

	_, err = c3.PDF(-1)
	assert.ErrorIs(t, err, dist.ErrDomain)
}

func TestChi_SquaredSampleMatchesChiSquaredLaw(t *testing.T) {
	c, err := dist.NewChi(4.0)
	require.NoError(t, err)
	src := dist.NewSource(23)
	const n = 20000
	var sum float64
	for i := 0; i < n; i++ {
		x := c.Sample(src)
		require.False(t, x < 0, "chi draws are non-negative")
		sum += x * x
	}
	assert.InDelta(t, 4.0, sum/n, 0.15, "squared chi draws average to the degrees of freedom")
}
