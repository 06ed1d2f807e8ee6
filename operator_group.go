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
	"sync"
)

// GroupBy splits the source into per-key group Observables, keyed by
// keySelector. A group Observable is emitted the first time its key is
// seen; every later value for that key is replayed to whatever group
// Observable subscribers come along, since a subscriber may arrive after
// some of the group's values already passed. When the source errors or
// completes, every open group Observable receives the same notification.
func GroupBy[T any, K comparable](keySelector func(item T) K) func(Observable[T]) Observable[Observable[T]] {
	if keySelector == nil {
		panic(ErrGroupByNoKeySelector)
	}

	return func(source Observable[T]) Observable[Observable[T]] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[Observable[T]]) Teardown {
			var mu sync.Mutex
			groups := make(map[K]Subject[T])

			notifyAll := func(cb func(Subject[T])) {
				mu.Lock()
				snapshot := make([]Subject[T], 0, len(groups))
				for _, g := range groups {
					snapshot = append(snapshot, g)
				}
				groups = make(map[K]Subject[T])
				mu.Unlock()

				for _, g := range snapshot {
					cb(g)
				}
			}

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					key := keySelector(value)

					mu.Lock()
					group, ok := groups[key]
					if !ok {
						group = NewReplaySubject[T](ReplaySubjectUnlimitedBufferSize)
						groups[key] = group
					}
					mu.Unlock()

					if !ok {
						destination.NextWithContext(ctx, group.AsObservable())
					}
					group.NextWithContext(ctx, value)
				},
				func(ctx context.Context, err error) {
					destination.ErrorWithContext(ctx, err)
					notifyAll(func(g Subject[T]) { g.ErrorWithContext(ctx, err) })
				},
				func(ctx context.Context) {
					destination.CompleteWithContext(ctx)
					notifyAll(func(g Subject[T]) { g.CompleteWithContext(ctx) })
				},
			))

			return func() {
				sub.Unsubscribe()
				notifyAll(func(g Subject[T]) { g.CompleteWithContext(context.Background()) })
			}
		})
	}
}
