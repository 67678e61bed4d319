package dist

import "github.com/EgorDm/statrs/numeric"

// Bernoulli is a single trial with success probability p; it is the
// n = 1 special case of Binomial and delegates everything except the
// statistics with simpler closed forms.
type Bernoulli[T numeric.Float] struct {
	Binomial[T]
}

// NewBernoulli constructs Bernoulli(p) with p in [0, 1].
func NewBernoulli[T numeric.Float](p T) (Bernoulli[T], error) {
	b, err := NewBinomial(1, p)
	if err != nil {
		return Bernoulli[T]{}, err
	}
	return Bernoulli[T]{Binomial: b}, nil
}

// Entropy returns −q·ln q − p·ln p exactly, replacing the large-n
// approximation the embedded Binomial would use.
func (b Bernoulli[T]) Entropy() (T, error) {
	p := b.P()
	if p == 0 || p == 1 {
		return 0, nil
	}
	q := 1 - p
	return -q*numeric.Ln(q) - p*numeric.Ln(p), nil
}

// Median returns 0 for p < ½, 1 for p > ½ and ½ at the tie.
func (b Bernoulli[T]) Median() (T, error) {
	switch p := b.P(); {
	case p < 0.5:
		return 0, nil
	case p > 0.5:
		return 1, nil
	default:
		return 0.5, nil
	}
}
