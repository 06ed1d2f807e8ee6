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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOf_emitsValuesThenCompletes(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Of(1, 2, 3))

	is.NoError(err)
	is.Equal([]int{1, 2, 3}, values)
}

func TestStart_evaluatesLazilyOnSubscribe(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	called := false
	obs := Start(func() int { called = true; return 7 })
	is.False(called)

	values, err := Collect(obs)

	is.True(called)
	is.NoError(err)
	is.Equal([]int{7}, values)
}

func TestEmpty_completesWithoutValues(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Empty[int]())

	is.NoError(err)
	is.Empty(values)
}

func TestThrow_errorsImmediately(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	_, err := Collect(Throw[int](assert.AnError))

	is.ErrorIs(err, assert.AnError)
}

func TestNever_errorsOnContextCancellation(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 50*time.Millisecond)
	is := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())

	var gotErr error
	done := make(chan struct{})
	sub := Never[int]().SubscribeWithContext(ctx, NewObserverWithContext(
		func(context.Context, int) {},
		func(_ context.Context, err error) { gotErr = err; close(done) },
		func(context.Context) {},
	))
	defer sub.Unsubscribe()

	cancel()
	<-done

	is.ErrorIs(gotErr, context.Canceled)
}

func TestDefer_callsFactoryPerSubscription(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	calls := 0
	obs := Defer(func() Observable[int] {
		calls++
		return Of(calls)
	})

	a, errA := Collect(obs)
	b, errB := Collect(obs)

	is.NoError(errA)
	is.NoError(errB)
	is.Equal([]int{1}, a)
	is.Equal([]int{2}, b)
}

func TestFuture_emitsFactoryResult(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 50*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Future(func() (int, error) { return 42, nil }))

	is.NoError(err)
	is.Equal([]int{42}, values)
}

func TestFuture_emitsFactoryError(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 50*time.Millisecond)
	is := assert.New(t)

	_, err := Collect(Future(func() (int, error) { return 0, assert.AnError }))

	is.ErrorIs(err, assert.AnError)
}

func TestFromChannel_relaysUntilClosed(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 50*time.Millisecond)
	is := assert.New(t)

	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	values, err := Collect(FromChannel[int](ch))

	is.NoError(err)
	is.Equal([]int{1, 2, 3}, values)
}

func TestFromSlice_emitsEverySliceInOrder(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(FromSlice([]int{1, 2}, []int{3, 4}))

	is.NoError(err)
	is.Equal([]int{1, 2, 3, 4}, values)
}

func TestRange_ascendingAndDescending(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	up, err := Collect(Range(0, 3))
	is.NoError(err)
	is.Equal([]int64{0, 1, 2}, up)

	down, err := Collect(Range(3, 0))
	is.NoError(err)
	is.Equal([]int64{3, 2, 1}, down)
}

func TestRepeat_emitsItemExactlyCount(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Repeat("x", 3))

	is.NoError(err)
	is.Equal([]string{"x", "x", "x"}, values)
}

func TestRepeat_panicsOnNegativeCount(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	is.PanicsWithError(ErrRepeatWrongCount.Error(), func() { Repeat("x", -1) })
}

func TestRepeat_zeroCountYieldsEmpty(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Repeat("x", 0))

	is.NoError(err)
	is.Empty(values)
}
