// Copyright 2026 The Rx Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package constraints collects the numeric constraint used by the math
// operators, layered over golang.org/x/exp/constraints.
package constraints

import "golang.org/x/exp/constraints"

// Numeric covers every type the math operators (Sum, Min, Max, Average)
// can meaningfully operate on.
type Numeric interface {
	constraints.Integer | constraints.Float
}
