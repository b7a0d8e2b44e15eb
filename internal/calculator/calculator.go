package calculator

type ratioCalculator struct{}

// New creates a Calculator that evaluates the ratio formula.
func New() Calculator {
	return &ratioCalculator{}
}

func (c *ratioCalculator) Calculate(in Inputs) float64 {
	return Calc(in.Actual, in.Target, in.Val)
}

// Calc scales val by how far target is from actual:
//
//	val / (1 + (target - actual) / actual)
//
// The expression is evaluated exactly in that order. A zero actual is not
// guarded, so the IEEE-754 Inf/NaN from the inner division propagates.
func Calc(actual, target, val float64) float64 {
	return val / (1 + (target-actual)/actual)
}
