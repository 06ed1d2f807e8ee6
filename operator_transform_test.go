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

func TestMap_projectsEveryValue(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(1, 2, 3), Map(func(v int) string { return string(rune('a' + v - 1)) })))

	is.NoError(err)
	is.Equal([]string{"a", "b", "c"}, values)
}

func TestMapTo_replacesEveryValue(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(1, 2, 3), MapTo[int](0)))

	is.NoError(err)
	is.Equal([]int{0, 0, 0}, values)
}

func TestScan_emitsRunningAccumulator(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(1, 2, 3, 4), Scan(func(acc, v int) int { return acc + v }, 0)))

	is.NoError(err)
	is.Equal([]int{1, 3, 6, 10}, values)
}

func TestPairwise_emitsConsecutivePairs(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(1, 2, 3), Pairwise[int]()))

	is.NoError(err)
	is.Equal([][2]int{{1, 2}, {2, 3}}, values)
}

func TestStartWith_prependsValues(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(3, 4), StartWith(1, 2)))

	is.NoError(err)
	is.Equal([]int{1, 2, 3, 4}, values)
}

func TestDefaultIfEmpty_onEmptySource(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Empty[int](), DefaultIfEmpty(42)))

	is.NoError(err)
	is.Equal([]int{42}, values)
}

func TestDefaultIfEmpty_passesThroughNonEmpty(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(1, 2), DefaultIfEmpty(42)))

	is.NoError(err)
	is.Equal([]int{1, 2}, values)
}

func TestTapOnNext_observesWithoutChangingValues(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	var seen []int
	values, err := Collect(Pipe1(Of(1, 2, 3), TapOnNext(func(v int) { seen = append(seen, v) })))

	is.NoError(err)
	is.Equal([]int{1, 2, 3}, values)
	is.Equal([]int{1, 2, 3}, seen)
}

func TestTapOnError_observesErrors(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	var gotErr error
	_, err := Collect(Pipe1(Throw[int](assert.AnError), TapOnError[int](func(e error) { gotErr = e })))

	is.ErrorIs(err, assert.AnError)
	is.ErrorIs(gotErr, assert.AnError)
}

func TestFinalize_runsExactlyOnceOnComplete(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	count := 0
	_, err := Collect(Pipe1(Of(1, 2), Finalize[int](func() { count++ })))

	is.NoError(err)
	is.Equal(1, count)
}

func TestFinalize_runsOnUnsubscribe(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	count := 0
	sub := Pipe1(Never[int](), Finalize[int](func() { count++ })).Subscribe(NoopObserver[int]())
	sub.Unsubscribe()

	is.Equal(1, count)
}
