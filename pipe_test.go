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

package rx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPipe3_appliesOperatorsInOrder(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	result := Pipe3(
		Of(1, 2, 3, 4, 5),
		Filter(func(v int) bool { return v%2 == 0 }),
		Map(func(v int) int { return v * 10 }),
		Map(func(v int) string {
			if v == 20 {
				return "twenty"
			}
			return "forty"
		}),
	)

	values, err := Collect(result)

	is.NoError(err)
	is.Equal([]string{"twenty", "forty"}, values)
}

func TestPipeOp2_returnsComposedOperator(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	op := PipeOp2(
		Map(func(v int) int { return v + 1 }),
		Map(func(v int) int { return v * 2 }),
	)

	values, err := Collect(op(Of(1, 2, 3)))

	is.NoError(err)
	is.Equal([]int{4, 6, 8}, values)
}

func TestPipe_runtimeOperatorChain(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	result := Pipe[int, int](
		Of(1, 2, 3),
		Map(func(v int) int { return v * 2 }),
		Filter(func(v int) bool { return v > 2 }),
	)

	values, err := Collect(result)

	is.NoError(err)
	is.Equal([]int{4, 6}, values)
}

func TestPipe_panicsOnTypeMismatch(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	is.Panics(func() {
		Pipe[int, string](Of(1, 2, 3), Map(func(v int) int { return v }))
	})
}
