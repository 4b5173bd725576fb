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

// stirlingTable holds the correction terms for k = 0, ..., 9, where
// the asymptotic series converges too slowly.
var stirlingTable = [...]float64{
	0.08106146679532726,
	0.04134069595540929,
	0.02767792568499834,
	0.02079067210376509,
	0.01664469118982119,
	0.01387612882307075,
	0.01189670994589177,
	0.01041126526197209,
	0.009255462182712733,
	0.008330563433362871,
}

// StirlingCorrection returns the correction term fc(k) of Stirling's
// approximation, so that
//
//	ln(k!) = (k + 1/2) ln(k + 1) - (k + 1) + ln(sqrt(2 pi)) + fc(k).
//
// Values for k < 10 are read from a table, larger k use the
// asymptotic expansion. k must be non-negative.
func StirlingCorrection(k int64) float64 {
	if k < int64(len(stirlingTable)) {
		return stirlingTable[k]
	}
	k1 := float64(k + 1)
	k1Square := k1 * k1
	return (1.0/12 - (1.0/360-1.0/1260/k1Square)/k1Square) / k1
}

// logFactorial returns ln(k!) computed through StirlingCorrection.
func logFactorial(k int64) float64 {
	k1 := float64(k + 1)
	return (float64(k)+0.5)*math.Log(k1) - k1 + 0.5*math.Log(2*math.Pi) + StirlingCorrection(k)
}
