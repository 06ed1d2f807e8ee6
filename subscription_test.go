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

func TestSubscription_teardownRunsOnce(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	count := 0
	sub := NewSubscription(func() { count++ })

	sub.Unsubscribe()
	sub.Unsubscribe()
	sub.Unsubscribe()

	is.Equal(1, count)
}

func TestSubscription_addAfterDisposeRunsImmediately(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	sub := NewSubscription(nil)
	sub.Unsubscribe()

	ran := false
	sub.Add(func() { ran = true })

	is.True(ran)
}

func TestSubscription_addRunsInOrder(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	var order []int
	sub := NewSubscription(func() { order = append(order, 1) })
	sub.Add(func() { order = append(order, 2) })
	sub.Add(func() { order = append(order, 3) })

	sub.Unsubscribe()

	is.Equal([]int{1, 2, 3}, order)
}

func TestSubscription_isClosed(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	sub := NewSubscription(nil)
	is.False(sub.IsClosed())

	sub.Unsubscribe()
	is.True(sub.IsClosed())
}

func TestSubscription_wait(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 50*time.Millisecond)
	is := assert.New(t)

	sub := NewSubscription(nil)

	go func() {
		time.Sleep(time.Millisecond)
		sub.Unsubscribe()
	}()

	sub.Wait()
	is.True(sub.IsClosed())
}
