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
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReduce_foldsToFinalResult(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(1, 2, 3, 4), Reduce(func(agg, v int) int { return agg + v })))

	is.NoError(err)
	is.Equal([]int{10}, values)
}

func TestReduce_emptySourceEmitsNothing(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Empty[int](), Reduce(func(agg, v int) int { return agg + v })))

	is.NoError(err)
	is.Empty(values)
}

func TestReduceInitial_foldsFromSeed(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(1, 2, 3, 4), ReduceInitial(func(agg, v int) int { return agg + v }, 10)))

	is.NoError(err)
	is.Equal([]int{20}, values)
}

func TestReduceInitial_emptySourceEmitsSeed(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Empty[int](), ReduceInitial(func(agg, v int) int { return agg + v }, 10)))

	is.NoError(err)
	is.Equal([]int{10}, values)
}

func TestCount_emitsNumberOfValues(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(1, 2, 3), Count[int]()))

	is.NoError(err)
	is.Equal([]int64{3}, values)
}

func TestSum_emitsTotal(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(1, 2, 3), Sum[int]()))

	is.NoError(err)
	is.Equal([]int{6}, values)
}

func TestAverage_emitsMean(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(1, 2, 3, 4), Average[int]()))

	is.NoError(err)
	is.Equal([]float64{2.5}, values)
}

func TestAverage_emptySourceYieldsNaN(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Empty[int](), Average[int]()))

	is.NoError(err)
	is.Len(values, 1)
	is.True(math.IsNaN(values[0]))
}

func TestMin_emitsSmallestValue(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(3, 1, 2), Min[int]()))

	is.NoError(err)
	is.Equal([]int{1}, values)
}

func TestMin_emptySourceEmitsNothing(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Empty[int](), Min[int]()))

	is.NoError(err)
	is.Empty(values)
}

func TestMax_emitsLargestValue(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(3, 1, 2), Max[int]()))

	is.NoError(err)
	is.Equal([]int{3}, values)
}
