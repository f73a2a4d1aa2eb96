package calculator

import "math"

// Calculator performs single arithmetic operations on already validated inputs.
// Results follow IEEE 754, so finite inputs can still overflow to an infinity.
type Calculator interface {
	Add(a, b float64) (float64, error)
	Subtract(a, b float64) (float64, error)
	Multiply(a, b float64) (float64, error)
	Divide(a, b float64) (float64, error)
	Exponent(base, exponent float64) float64
	SquareRoot(x float64) (float64, error)
	Modulo(dividend, divisor float64) (float64, error)
}

// Arithmetic is the float64 Calculator.
type Arithmetic struct{}

func New() *Arithmetic {
	return &Arithmetic{}
}

func (Arithmetic) Add(a, b float64) (float64, error) {
	return a + b, nil
}

func (Arithmetic) Subtract(a, b float64) (float64, error) {
	return a - b, nil
}

func (Arithmetic) Multiply(a, b float64) (float64, error) {
	return a * b, nil
}

// Divide rejects a zero divisor (either sign).
func (Arithmetic) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// Exponent may return NaN or an infinity, e.g. for a negative base with a
// fractional exponent or on overflow.
func (Arithmetic) Exponent(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

func (Arithmetic) SquareRoot(x float64) (float64, error) {
	if x < 0 {
		return 0, ErrNegativeSquareRoot
	}
	return math.Sqrt(x), nil
}

// Modulo is the truncated remainder: the result takes the sign of the dividend.
func (Arithmetic) Modulo(dividend, divisor float64) (float64, error) {
	if divisor == 0 {
		return 0, ErrModuloByZero
	}
	return math.Mod(dividend, divisor), nil
}
