package calculator

// Inputs groups the three operands of the ratio formula.
// Actual is the divisor basis, Target the value compared against it and
// Val the quantity being scaled.
type Inputs struct {
	Actual float64
	Target float64
	Val    float64
}

// Calculator describes the behaviour required from a ratio calculator.
type Calculator interface {
	Calculate(in Inputs) float64
}
