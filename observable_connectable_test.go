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

func TestConnectable_multicastsToEverySubscriberAfterConnect(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	source := NewPublishSubject[int]()
	connectable := Connectable[int](source.AsObservable())

	var a, b []int
	connectable.Subscribe(OnNext(func(v int) { a = append(a, v) }))
	connectable.Subscribe(OnNext(func(v int) { b = append(b, v) }))

	conn := connectable.Connect()
	defer conn.Unsubscribe()

	source.Next(1)
	source.Next(2)

	is.Equal([]int{1, 2}, a)
	is.Equal([]int{1, 2}, b)
}

func TestConnectable_doesNotEmitBeforeConnect(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	source := NewPublishSubject[int]()
	connectable := Connectable[int](source.AsObservable())

	var got []int
	connectable.Subscribe(OnNext(func(v int) { got = append(got, v) }))

	source.Next(1)

	is.Empty(got)
}

func TestRefCount_connectsOnFirstSubscribeDisconnectsOnLast(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	subscribeCount := 0
	source := NewObservable(func(observer Observer[int]) Teardown {
		subscribeCount++
		return nil
	})

	refCounted := RefCount[int](Connectable[int](source))

	sub1 := refCounted.Subscribe(NoopObserver[int]())
	sub2 := refCounted.Subscribe(NoopObserver[int]())

	is.Equal(1, subscribeCount)

	sub1.Unsubscribe()
	sub2.Unsubscribe()

	sub3 := refCounted.Subscribe(NoopObserver[int]())
	defer sub3.Unsubscribe()

	is.Equal(2, subscribeCount)
}
