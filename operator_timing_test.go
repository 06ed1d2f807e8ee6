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

func TestDebounce_onlyEmitsAfterSilence(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	scheduler := NewManualScheduler(time.Unix(0, 0))
	subject := NewPublishSubject[int]()

	var got []int
	sub := Debounce[int](time.Second, scheduler)(subject.AsObservable()).
		Subscribe(OnNext(func(v int) { got = append(got, v) }))
	defer sub.Unsubscribe()

	subject.Next(1)
	scheduler.Advance(500 * time.Millisecond)
	subject.Next(2)
	scheduler.Advance(500 * time.Millisecond)
	is.Empty(got)

	scheduler.Advance(500 * time.Millisecond)
	is.Equal([]int{2}, got)

	subject.Next(3)
	subject.Complete()
	is.Equal([]int{2, 3}, got)
}

func TestThrottleTime_leadingOnly(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	scheduler := NewManualScheduler(time.Unix(0, 0))
	subject := NewPublishSubject[int]()

	var got []int
	sub := ThrottleTime[int](time.Second, scheduler, DefaultThrottleConfig)(subject.AsObservable()).
		Subscribe(OnNext(func(v int) { got = append(got, v) }))
	defer sub.Unsubscribe()

	subject.Next(1)
	subject.Next(2)
	scheduler.Advance(500 * time.Millisecond)
	subject.Next(3)
	scheduler.Advance(500 * time.Millisecond)

	subject.Next(4)

	is.Equal([]int{1, 4}, got)
}

func TestThrottleTime_leadingAndTrailing(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	scheduler := NewManualScheduler(time.Unix(0, 0))
	subject := NewPublishSubject[int]()

	var got []int
	sub := ThrottleTime[int](time.Second, scheduler, ThrottleConfig{Leading: true, Trailing: true})(subject.AsObservable()).
		Subscribe(OnNext(func(v int) { got = append(got, v) }))
	defer sub.Unsubscribe()

	subject.Next(1)
	subject.Next(2)
	subject.Next(3)
	scheduler.Advance(time.Second)

	is.Equal([]int{1, 3}, got)
}

func TestSampleTime_emitsLatestOnEachTick(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	scheduler := NewManualScheduler(time.Unix(0, 0))
	subject := NewPublishSubject[int]()

	var got []int
	sub := SampleTime[int](time.Second, scheduler)(subject.AsObservable()).
		Subscribe(OnNext(func(v int) { got = append(got, v) }))
	defer sub.Unsubscribe()

	subject.Next(1)
	subject.Next(2)
	scheduler.Advance(time.Second)

	subject.Next(3)
	scheduler.Advance(time.Second)

	is.Equal([]int{2, 3}, got)
}

func TestDelay_preservesOrder(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	scheduler := NewManualScheduler(time.Unix(0, 0))

	var got []int
	sub := Delay[int](time.Second, scheduler)(Of(1, 2, 3)).
		Subscribe(OnNext(func(v int) { got = append(got, v) }))
	defer sub.Unsubscribe()

	is.Empty(got)
	scheduler.Advance(time.Second)
	is.Equal([]int{1, 2, 3}, got)
}

func TestTimeout_errorsWhenSourceStalls(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	scheduler := NewManualScheduler(time.Unix(0, 0))
	subject := NewPublishSubject[int]()

	var gotErr error
	sub := Timeout[int](time.Second, scheduler)(subject.AsObservable()).
		Subscribe(OnError[int](func(err error) { gotErr = err }))
	defer sub.Unsubscribe()

	scheduler.Advance(500 * time.Millisecond)
	subject.Next(1)
	scheduler.Advance(999 * time.Millisecond)
	is.NoError(gotErr)

	scheduler.Advance(2 * time.Millisecond)
	is.Error(gotErr)
}
