package specfn_test

import (
	"fmt"

	"github.com/EgorDm/statrs/specfn"
)

// ExampleGamma demonstrates the factorial connection Γ(n+1) = n!.
func ExampleGamma() {
	g, err := specfn.Gamma(5.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("Γ(5) = %.0f\n", g)
	// Output:
	// Γ(5) = 24
}

// ExampleRegIncBeta evaluates the Beta(2,3) CDF at its median region.
func ExampleRegIncBeta() {
	v, err := specfn.RegIncBeta(2.0, 3.0, 0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("I_0.5(2,3) = %.4f\n", v)
	// Output:
	// I_0.5(2,3) = 0.6875
}

// ExampleInvDigamma inverts ψ and verifies the round trip.
func ExampleInvDigamma() {
	x, err := specfn.InvDigamma(1.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	y, _ := specfn.Digamma(x)
	fmt.Printf("ψ⁻¹(1) = %.2f, ψ(ψ⁻¹(1)) = %.6f\n", x, y)
	// Output:
	// ψ⁻¹(1) = 3.20, ψ(ψ⁻¹(1)) = 1.000000
}

// ExampleChoose computes a binomial coefficient exactly.
func ExampleChoose() {
	c, err := specfn.Choose[float64](uint64(10), uint64(5))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("C(10,5) = %.0f\n", c)
	// Output:
	// C(10,5) = 252
}
