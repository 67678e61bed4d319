package dist_test

import (
	"math"
	"testing"

	"github.com/EgorDm/statrs/dist"
	"github.com/EgorDm/statrs/prec"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// Cross-checks against gonum's distuv, which reaches the same
// densities and CDFs through entirely different special-function
// code. Agreement on parameter/argument grids catches argument-order
// and parameterization mistakes that closed-form spot checks miss.

const distRelTol = 1e-9

func TestGolden_NormalAgainstGonum(t *testing.T) {
	for _, p := range []struct{ mu, sigma float64 }{{0, 1}, {2.5, 0.5}, {-10, 4}} {
		ref := distuv.Normal{Mu: p.mu, Sigma: p.sigma}
		n, err := dist.NewNormal(p.mu, p.sigma)
		require.NoError(t, err)
		for _, x := range []float64{-20, -3.5, -1, 0, 0.7, 2.5, 8, 30} {
			pdf, err := n.PDF(x)
			require.NoError(t, err)
			require.True(t, prec.RelEq(ref.Prob(x), pdf, distRelTol) || math.Abs(ref.Prob(x)-pdf) < 1e-300,
				"N(%v,%v) pdf(%v): gonum %v, dist %v", p.mu, p.sigma, x, ref.Prob(x), pdf)
			cdf, err := n.CDF(x)
			require.NoError(t, err)
			require.True(t, prec.RelEq(ref.CDF(x), cdf, 1e-8) || math.Abs(ref.CDF(x)-cdf) < 1e-14,
				"N(%v,%v) cdf(%v): gonum %v, dist %v", p.mu, p.sigma, x, ref.CDF(x), cdf)
		}
	}
}

func TestGolden_GammaAgainstGonum(t *testing.T) {
	for _, p := range []struct{ shape, rate float64 }{{0.5, 1}, {1, 2}, {3, 0.5}, {9.5, 3}, {40, 10}} {
		ref := distuv.Gamma{Alpha: p.shape, Beta: p.rate}
		g, err := dist.NewGamma(p.shape, p.rate)
		require.NoError(t, err)
		for _, x := range []float64{0.01, 0.1, 0.5, 1, 2.5, 6, 15, 40} {
			pdf, err := g.PDF(x)
			require.NoError(t, err)
			require.True(t, prec.RelEq(ref.Prob(x), pdf, distRelTol) || math.Abs(ref.Prob(x)-pdf) < 1e-300,
				"Gamma(%v,%v) pdf(%v): gonum %v, dist %v", p.shape, p.rate, x, ref.Prob(x), pdf)
			cdf, err := g.CDF(x)
			require.NoError(t, err)
			require.True(t, prec.RelEq(ref.CDF(x), cdf, distRelTol) || math.Abs(ref.CDF(x)-cdf) < 1e-13,
				"Gamma(%v,%v) cdf(%v): gonum %v, dist %v", p.shape, p.rate, x, ref.CDF(x), cdf)
		}
	}
}

func TestGolden_BetaAgainstGonum(t *testing.T) {
	for _, p := range []struct{ a, b float64 }{{0.5, 0.5}, {1, 3}, {2, 2}, {5, 1.5}, {30, 70}} {
		ref := distuv.Beta{Alpha: p.a, Beta: p.b}
		bd, err := dist.NewBeta(p.a, p.b)
		require.NoError(t, err)
		for _, x := range []float64{0.001, 0.1, 0.35, 0.5, 0.72, 0.95, 0.999} {
			pdf, err := bd.PDF(x)
			require.NoError(t, err)
			require.True(t, prec.RelEq(ref.Prob(x), pdf, distRelTol) || math.Abs(ref.Prob(x)-pdf) < 1e-300,
				"Beta(%v,%v) pdf(%v): gonum %v, dist %v", p.a, p.b, x, ref.Prob(x), pdf)
			cdf, err := bd.CDF(x)
			require.NoError(t, err)
			require.True(t, prec.RelEq(ref.CDF(x), cdf, 1e-8) || math.Abs(ref.CDF(x)-cdf) < 1e-12,
				"Beta(%v,%v) cdf(%v): gonum %v, dist %v", p.a, p.b, x, ref.CDF(x), cdf)
		}
	}
}

func TestGolden_BinomialAgainstGonum(t *testing.T) {
	for _, p := range []struct {
		n uint64
		p float64
	}{{10, 0.5}, {25, 0.1}, {100, 0.93}} {
		ref := distuv.Binomial{N: float64(p.n), P: p.p}
		b, err := dist.NewBinomial(p.n, p.p)
		require.NoError(t, err)
		for k := uint64(0); k <= p.n; k += 1 + p.n/12 {
			pmf, err := b.PMF(k)
			require.NoError(t, err)
			require.True(t, prec.RelEq(ref.Prob(float64(k)), pmf, distRelTol) || math.Abs(ref.Prob(float64(k))-pmf) < 1e-300,
				"B(%d,%v) pmf(%d): gonum %v, dist %v", p.n, p.p, k, ref.Prob(float64(k)), pmf)
			cdf, err := b.CDF(k)
			require.NoError(t, err)
			require.True(t, prec.RelEq(ref.CDF(float64(k)), cdf, 1e-8) || math.Abs(ref.CDF(float64(k))-cdf) < 1e-12,
				"B(%d,%v) cdf(%d): gonum %v, dist %v", p.n, p.p, k, ref.CDF(float64(k)), cdf)
		}
	}
}

func TestGolden_PoissonAgainstGonum(t *testing.T) {
	for _, l := range []float64{0.5, 2, 10, 75} {
		ref := distuv.Poisson{Lambda: l}
		po, err := dist.NewPoisson(l)
		require.NoError(t, err)
		for _, k := range []uint64{0, 1, 2, 5, 11, 30, 80, 120} {
			pmf, err := po.PMF(k)
			require.NoError(t, err)
			require.True(t, prec.RelEq(ref.Prob(float64(k)), pmf, 1e-8) || math.Abs(ref.Prob(float64(k))-pmf) < 1e-300,
				"Poisson(%v) pmf(%d): gonum %v, dist %v", l, k, ref.Prob(float64(k)), pmf)
			cdf, err := po.CDF(k)
			require.NoError(t, err)
			require.True(t, prec.RelEq(ref.CDF(float64(k)), cdf, 1e-8) || math.Abs(ref.CDF(float64(k))-cdf) < 1e-12,
				"Poisson(%v) cdf(%d): gonum %v, dist %v", l, k, ref.CDF(float64(k)), cdf)
		}
	}
}

func TestGolden_ChiSquaredAgainstGonum(t *testing.T) {
	for _, k := range []float64{1, 2, 3, 7, 24.5} {
		ref := distuv.ChiSquared{K: k}
		cs, err := dist.NewChiSquared(k)
		require.NoError(t, err)
		for _, x := range []float64{0.05, 0.5, 1, 3, 8, 20, 50} {
			pdf, err := cs.PDF(x)
			require.NoError(t, err)
			require.True(t, prec.RelEq(ref.Prob(x), pdf, distRelTol) || math.Abs(ref.Prob(x)-pdf) < 1e-300,
				"χ²(%v) pdf(%v): gonum %v, dist %v", k, x, ref.Prob(x), pdf)
			cdf, err := cs.CDF(x)
			require.NoError(t, err)
			require.True(t, prec.RelEq(ref.CDF(x), cdf, distRelTol) || math.Abs(ref.CDF(x)-cdf) < 1e-13,
				"χ²(%v) cdf(%v): gonum %v, dist %v", k, x, ref.CDF(x), cdf)
		}
	}
}
