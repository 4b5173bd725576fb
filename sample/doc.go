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

// Package sample includes samplers for sampling random values
// from the binomial probability distribution.
//
// Package sample provides the Sampler interface along with the
// Binomial implementation of this interface. A Binomial sampler
// consumes uniform values in [0, 1) from a Source and turns them
// into integer variates in [0, n]. For a small mean the variates are
// obtained by summing Bernoulli trials; otherwise the BTRD algorithm
// of W. Hörmann is used:
//
//	W. Hörmann, "The generation of binomial random variates",
//	Journal of Statistical Computation and Simulation 46 (1993),
//	doi:10.1080/00949659308811496.
//
// Implementations of the Sampler interface can be used,
// for instance, to fill vector or matrix structures with
// the desired random data.
package sample
