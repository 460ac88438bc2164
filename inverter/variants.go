// SPDX-License-Identifier: MIT

package inverter

import "math"

// Identity leaves values unchanged.
type Identity struct{}

func (Identity) Dissimilarity(s float64) float64 { return s }
func (Identity) Similarity(d float64) float64    { return d }
func (Identity) Name() string                    { return NameIdentity }

// Linear is d = 1 − s/max.
type Linear struct{ Max float64 }

func (l Linear) Dissimilarity(s float64) float64 { return 1 - s/l.Max }
func (l Linear) Similarity(d float64) float64    { return l.Max * (1 - d) }
func (Linear) Name() string                      { return NameLinear }

// Sqrt is d = sqrt(2max − 2s)/sqrt(2max), i.e. the Euclidean distance of
// two unit-norm vectors with inner product s/max, scaled into [0,1].
type Sqrt struct{ Max float64 }

func (q Sqrt) Dissimilarity(s float64) float64 {
	return math.Sqrt(math.Max(0, 2*q.Max-2*s)) / math.Sqrt(2*q.Max)
}
func (q Sqrt) Similarity(d float64) float64 { return q.Max * (1 - d*d) }
func (Sqrt) Name() string                   { return NameSqrt }

// Exp is d = exp(−s/max).
type Exp struct{ Max float64 }

func (e Exp) Dissimilarity(s float64) float64 { return math.Exp(-s / e.Max) }
func (e Exp) Similarity(d float64) float64    { return -e.Max * math.Log(d) }
func (Exp) Name() string                      { return NameExp }

// Gauss is d = exp(−(s/max)²).
type Gauss struct{ Max float64 }

func (g Gauss) Dissimilarity(s float64) float64 {
	r := s / g.Max
	return math.Exp(-r * r)
}

// Similarity clamps −ln d at 0 so d = 1 maps to exactly 0.
func (g Gauss) Similarity(d float64) float64 {
	return g.Max * math.Sqrt(math.Max(0, -math.Log(d)))
}
func (Gauss) Name() string { return NameGauss }

// Hyper is d = 1/(1 + (s/max)^deg).
type Hyper struct {
	Max    float64
	Degree float64
}

func (h Hyper) Dissimilarity(s float64) float64 {
	return 1 / (1 + math.Pow(s/h.Max, h.Degree))
}
func (h Hyper) Similarity(d float64) float64 {
	return h.Max * math.Pow(1/d-1, 1/h.Degree)
}
func (Hyper) Name() string { return NameHyper }

// Cosine is d = cos(π·s/(2max)).
type Cosine struct{ Max float64 }

func (c Cosine) Dissimilarity(s float64) float64 {
	return math.Cos(math.Pi * s / (2 * c.Max))
}
func (c Cosine) Similarity(d float64) float64 {
	return 2 * c.Max / math.Pi * math.Acos(d)
}
func (Cosine) Name() string { return NameCosine }
