/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import "math"

// directThreshold is the bound on n*p below which variates are
// obtained by summing Bernoulli trials instead of BTRD.
const directThreshold = 10

// regime produces raw variates for a success probability of at
// most 0.5.
type regime interface {
	draw(src Source) int64
	name() string
}

// constant is the regime of a degenerate distribution.
type constant int64

func (c constant) draw(Source) int64 { return int64(c) }
func (c constant) name() string      { return "constant" }

// bernoulliSum counts successes among n independent trials.
// The cost of a draw is O(n), which is cheaper than rejection
// sampling as long as the mean is small.
type bernoulliSum struct {
	n int64
	p float64
}

func (s bernoulliSum) draw(src Source) int64 {
	var ret int64
	for i := int64(0); i < s.n; i++ {
		if src.Float64() <= s.p {
			ret++
		}
	}
	return ret
}

func (s bernoulliSum) name() string { return "direct" }

// Binomial samples random values from the binomial distribution
// B(n, p), i.e. the number of successes among n independent
// trials with success probability p. All the constants the
// algorithm needs are computed when the sampler is created, so
// repeated calls to Sample are cheap.
type Binomial struct {
	n int64
	p float64
	// flipped is set when p > 0.5; raw variates are then drawn
	// for 1-p and mirrored to n-k.
	flipped bool
	regime  regime
	src     Source
}

// NewBinomial returns an instance of Binomial sampler. It expects
// n >= 0 and 0 <= p <= 1; the values are not checked. Uniform values
// are taken from src, or from DefaultSource if src is nil.
func NewBinomial(n int64, p float64, src Source) *Binomial {
	if src == nil {
		src = defaultSource
	}
	s := &Binomial{
		n:   n,
		p:   p,
		src: src,
	}

	switch {
	case p == 1:
		s.regime = constant(n)
	case p == 0:
		s.regime = constant(0)
	default:
		if p > 0.5 {
			p = 1 - p
			s.flipped = true
		}
		if float64(n)*p < directThreshold {
			s.regime = bernoulliSum{n: n, p: p}
		} else {
			s.regime = newBTRD(n, p)
		}
	}
	log.Tracef("Binomial sampler n=%d p=%v: %s regime (flipped: %v)",
		n, s.p, s.regime.name(), s.flipped)

	return s
}

// DrawBinomial returns a single variate from B(n, p). It derives the
// constants of the algorithm on every call; use NewBinomial when many
// values with the same parameters are needed.
func DrawBinomial(n int64, p float64, src Source) int64 {
	return NewBinomial(n, p, src).Sample()
}

// Sample returns a random value from [0, n] distributed
// according to B(n, p).
func (s *Binomial) Sample() int64 {
	k := s.regime.draw(s.src)
	if s.flipped {
		return s.n - k
	}
	return k
}

// N returns the number of trials.
func (s *Binomial) N() int64 {
	return s.n
}

// P returns the success probability.
func (s *Binomial) P() float64 {
	return s.p
}

// Regime names the method used for drawing raw variates:
// "constant", "direct" or "btrd".
func (s *Binomial) Regime() string {
	return s.regime.name()
}

// Mean returns n*p.
func (s *Binomial) Mean() float64 {
	return float64(s.n) * s.p
}

// Variance returns n*p*(1-p).
func (s *Binomial) Variance() float64 {
	return float64(s.n) * s.p * (1 - s.p)
}

// Prob returns the probability that a sample equals k.
func (s *Binomial) Prob(k int64) float64 {
	switch {
	case k < 0 || k > s.n:
		return 0
	case s.p == 0:
		if k == 0 {
			return 1
		}
		return 0
	case s.p == 1:
		if k == s.n {
			return 1
		}
		return 0
	}
	logChoose := logFactorial(s.n) - logFactorial(k) - logFactorial(s.n-k)
	return math.Exp(logChoose + float64(k)*math.Log(s.p) + float64(s.n-k)*math.Log1p(-s.p))
}
