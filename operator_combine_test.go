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
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestMerge_forwardsAllSourcesUntilAllComplete(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Merge(Of(1, 2), Of(3, 4)))

	is.NoError(err)
	sort.Ints(values)
	is.Equal([]int{1, 2, 3, 4}, values)
}

func TestMergeAllWithConcurrency_panicsOnNegative(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	is.PanicsWithError(ErrMergeAllWrongConcurrency.Error(), func() {
		MergeAllWithConcurrency[int](-1)
	})
}

func TestMergeAllWithConcurrency_boundsRunningInnerCount(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 50*time.Millisecond)
	is := assert.New(t)

	var running, maxRunning int32
	release := make(chan struct{})

	makeInner := func(id int) Observable[int] {
		return NewObservable(func(observer Observer[int]) Teardown {
			go func() {
				n := atomic.AddInt32(&running, 1)
				for {
					old := atomic.LoadInt32(&maxRunning)
					if n <= old || atomic.CompareAndSwapInt32(&maxRunning, old, n) {
						break
					}
				}
				<-release
				atomic.AddInt32(&running, -1)
				observer.Next(id)
				observer.Complete()
			}()
			return nil
		})
	}

	sources := Of(makeInner(1), makeInner(2), makeInner(3), makeInner(4))

	var values []int
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := Collect(MergeAllWithConcurrency[int](2)(sources))
		is.NoError(err)
		values = v
	}()

	time.Sleep(5 * time.Millisecond)
	close(release)
	wg.Wait()

	is.Len(values, 4)
	is.LessOrEqual(int(atomic.LoadInt32(&maxRunning)), 2)
}

func TestMergeMap_projectsAndMergesInnerObservables(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(1, 2), MergeMap(func(v int) Observable[int] {
		return Of(v, v*10)
	})))

	is.NoError(err)
	sort.Ints(values)
	is.Equal([]int{1, 2, 10, 20}, values)
}

func TestFlatten_flattensSlices(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of([]int{1, 2}, []int{3}), Flatten[int]()))

	is.NoError(err)
	is.Equal([]int{1, 2, 3}, values)
}

func TestCombineLatest2_emitsOncebothHaveAValue(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	a := NewBehaviorSubject(1)
	b := NewPublishSubject[string]()

	var got []lo.Tuple2[int, string]
	sub := CombineLatest2[int, string](a.AsObservable(), b.AsObservable()).
		Subscribe(OnNext(func(v lo.Tuple2[int, string]) { got = append(got, v) }))
	defer sub.Unsubscribe()

	b.Next("x")
	a.Next(2)

	is.Equal([]lo.Tuple2[int, string]{
		lo.T2(1, "x"),
		lo.T2(2, "x"),
	}, got)
}

func TestWithLatestFrom_pairsWithLatestOther(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	source := NewPublishSubject[int]()
	other := NewPublishSubject[string]()

	var got []lo.Tuple2[int, string]
	sub := Pipe1(source.AsObservable(), WithLatestFrom[int](other.AsObservable())).
		Subscribe(OnNext(func(v lo.Tuple2[int, string]) { got = append(got, v) }))
	defer sub.Unsubscribe()

	source.Next(1)
	other.Next("a")
	source.Next(2)
	source.Next(3)

	is.Equal([]lo.Tuple2[int, string]{
		lo.T2(2, "a"),
		lo.T2(3, "a"),
	}, got)
}

func TestZip2_pairsByIndex(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Zip2[int, string](Of(1, 2, 3), Of("a", "b")))

	is.NoError(err)
	is.Equal([]lo.Tuple2[int, string]{
		lo.T2(1, "a"),
		lo.T2(2, "b"),
	}, values)
}

func TestConcat_preservesOrderAcrossSources(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Concat(Of(1, 2), Of(3, 4)))

	is.NoError(err)
	is.Equal([]int{1, 2, 3, 4}, values)
}

func TestRace_mirrorsFirstToEmit(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	slow := NewPublishSubject[int]()
	fast := NewPublishSubject[int]()

	var got []int
	var completed bool
	sub := Race[int](slow.AsObservable(), fast.AsObservable()).Subscribe(NewObserver(
		func(v int) { got = append(got, v) },
		func(error) {},
		func() { completed = true },
	))
	defer sub.Unsubscribe()

	fast.Next(1)
	slow.Next(99)
	fast.Next(2)
	fast.Complete()

	is.Equal([]int{1, 2}, got)
	is.True(completed)
}
