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

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStirlingCorrection_Table(t *testing.T) {
	expect := []float64{
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
	for k, e := range expect {
		assert.Equal(t, e, StirlingCorrection(int64(k)), "k=%d", k)
	}
}

func TestStirlingCorrection_Asymptotic(t *testing.T) {
	for _, k := range []int64{10, 11, 25, 100, 4000, 1000000} {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			k1 := float64(k) + 1
			expect := (1.0/12 - (1.0/360-1.0/(1260*k1*k1))/(k1*k1)) / k1
			assert.InDelta(t, expect, StirlingCorrection(k), 1e-15)
		})
	}
}

func TestStirlingCorrection_Lgamma(t *testing.T) {
	for k := int64(0); k <= 200; k++ {
		lg, _ := math.Lgamma(float64(k) + 1)
		assert.InDelta(t, lg, logFactorial(k), 1e-9, "k=%d", k)
	}
}
