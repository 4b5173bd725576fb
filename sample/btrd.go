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

// stage labels a step of the BTRD acceptance loop.
type stage int

const (
	stageFast      stage = iota + 1 // cheap acceptance in the center
	stageShape                      // candidate from the hat function
	stageCandidate                  // range check and rescaling of v
	stageRatio                      // exact test by recursive ratios
	stageSqueeze                    // log-domain squeeze
	stageLog                        // exact test with Stirling terms
)

// ratioLimit is the largest distance |k - m| for which the
// ratio test is used instead of the squeeze.
const ratioLimit = 15

// btrd implements the "transformed rejection with decomposition"
// algorithm of W. Hörmann. The fields are the constants of the
// algorithm; they depend only on n and p and are valid for
// n*p >= 10 and p <= 0.5.
type btrd struct {
	n     int64
	p     float64
	m     int64
	r     float64
	nr    float64
	npq   float64
	a     float64
	b     float64
	c     float64
	alpha float64
	vr    float64
	urvr  float64
	nm    float64
	h     float64
}

func newBTRD(n int64, p float64) *btrd {
	nf := float64(n)
	m := int64(math.Floor((nf + 1) * p))
	r := p / (1 - p)
	npq := nf * p * (1 - p)
	b := 1.15 + 2.53*math.Sqrt(npq)
	vr := 0.92 - 4.2/b
	nm := float64(n - m + 1)
	mf := float64(m)

	return &btrd{
		n:     n,
		p:     p,
		m:     m,
		r:     r,
		nr:    (nf + 1) * r,
		npq:   npq,
		a:     -0.0873 + 0.0248*b + 0.01*p,
		b:     b,
		c:     nf*p + 0.5,
		alpha: (2.83 + 5.1/b) * math.Sqrt(npq),
		vr:    vr,
		urvr:  0.86 * vr,
		nm:    nm,
		h: (mf+0.5)*math.Log((mf+1)/(r*nm)) +
			StirlingCorrection(m) + StirlingCorrection(n-m),
	}
}

func (t *btrd) name() string { return "btrd" }

// draw runs the acceptance loop. Every rejection restarts the loop
// at stageFast with fresh uniform values.
func (t *btrd) draw(src Source) int64 {
	var (
		u, v, us float64
		k, km    int64
	)

	st := stageFast
	for {
		switch st {
		case stageFast:
			v = src.Float64()
			if v <= t.urvr {
				u = v/t.vr - 0.43
				return int64(math.Floor((2*t.a/(0.5-math.Abs(u))+t.b)*u + t.c))
			}
			st = stageShape

		case stageShape:
			if v >= t.vr {
				u = src.Float64() - 0.5
			} else {
				u = v/t.vr - 0.93
				u = signum(u)*0.5 - u
				v = t.vr * src.Float64()
			}
			st = stageCandidate

		case stageCandidate:
			us = 0.5 - math.Abs(u)
			kf := math.Floor((2*t.a/us+t.b)*u + t.c)
			if !(kf >= 0 && kf <= float64(t.n)) {
				st = stageFast
				break
			}
			k = int64(kf)
			v = v * t.alpha / (t.a/(us*us) + t.b)
			km = k - t.m
			if km < 0 {
				km = -km
			}
			if km <= ratioLimit {
				st = stageRatio
			} else {
				st = stageSqueeze
			}

		case stageRatio:
			// f(k)/f(m) = prod (nr/i - r) over i between m and k
			f := 1.0
			if t.m < k {
				for i := t.m + 1; i <= k; i++ {
					f *= t.nr/float64(i) - t.r
				}
			} else if t.m > k {
				for i := k + 1; i <= t.m; i++ {
					v *= t.nr/float64(i) - t.r
				}
			}
			if v <= f {
				return k
			}
			st = stageFast

		case stageSqueeze:
			v = math.Log(v)
			kmf := float64(km)
			rho := (kmf / t.npq) * (((kmf/3+0.625)*kmf+1.0/6)/t.npq + 0.5)
			tt := -kmf * kmf / (2 * t.npq)
			if v < tt-rho {
				return k
			}
			if v > tt+rho {
				st = stageFast
				break
			}
			st = stageLog

		case stageLog:
			nk := float64(t.n - k + 1)
			kf := float64(k)
			bound := t.h + float64(t.n+1)*math.Log(t.nm/nk) +
				(kf+0.5)*math.Log(nk*t.r/(kf+1)) -
				StirlingCorrection(k) - StirlingCorrection(t.n-k)
			if v <= bound {
				return k
			}
			st = stageFast
		}
	}
}

// signum returns -1, 0 or 1 according to the sign of x.
func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
