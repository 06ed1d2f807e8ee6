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
	"sync/atomic"

	"github.com/samber/lo"
)

// Merge subscribes to every source concurrently and forwards whatever
// each one emits, completing once all of them have completed.
func Merge[T any](sources ...Observable[T]) Observable[T] {
	return MergeAll[T]()(Of(sources...))
}

// MergeWith merges source with others, in the pipeable form.
func MergeWith[T any](others ...Observable[T]) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return Merge(append([]Observable[T]{source}, others...)...)
	}
}

// MergeAll flattens a higher-order Observable (an Observable of
// Observables) into a first-order one, subscribing to each inner
// Observable as it arrives and forwarding every value concurrently.
func MergeAll[T any]() func(Observable[Observable[T]]) Observable[T] {
	return MergeAllWithConcurrency[T](0)
}

// MergeAllWithConcurrency is MergeAll, but never runs more than
// concurrent inner Observables at once: once the limit is reached,
// newly arriving inner Observables queue until a running one completes.
// A concurrent of 0 means unlimited, matching MergeAll. Panics with
// ErrMergeAllWrongConcurrency if concurrent < 0.
func MergeAllWithConcurrency[T any](concurrent int) func(Observable[Observable[T]]) Observable[T] {
	if concurrent < 0 {
		panic(ErrMergeAllWrongConcurrency)
	}

	return func(sources Observable[Observable[T]]) Observable[T] {
		return NewObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var mu sync.Mutex
			var parentCtx = subscriberCtx

			subscriptions := NewSubscription(nil)

			// Starts at 1 to account for the outer `sources` Observable itself.
			pending := int32(1)
			running := 0
			queue := make([]Observable[T], 0, 4)

			var startNext func()

			onInnerDone := func() {
				mu.Lock()
				running--
				ctx := parentCtx
				mu.Unlock()
				startNext()

				if atomic.AddInt32(&pending, -1) == 0 {
					destination.CompleteWithContext(ctx)
				}
			}

			// mu is released before each inner Subscribe, since an inner
			// Observable may complete synchronously and re-enter onInnerDone.
			startNext = func() {
				for {
					mu.Lock()
					if (concurrent != 0 && running >= concurrent) || len(queue) == 0 {
						mu.Unlock()
						return
					}
					inner := queue[0]
					queue = queue[1:]
					running++
					mu.Unlock()

					subscriptions.AddUnsubscribable(inner.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
						destination.NextWithContext,
						destination.ErrorWithContext,
						func(context.Context) { onInnerDone() },
					)))
				}
			}

			subscriptions.AddUnsubscribable(sources.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(_ context.Context, inner Observable[T]) {
					atomic.AddInt32(&pending, 1)

					mu.Lock()
					queue = append(queue, inner)
					mu.Unlock()
					startNext()
				},
				destination.ErrorWithContext,
				func(ctx context.Context) {
					mu.Lock()
					parentCtx = ctx
					mu.Unlock()

					if atomic.AddInt32(&pending, -1) == 0 {
						destination.CompleteWithContext(ctx)
					}
				},
			)))

			return subscriptions.Unsubscribe
		})
	}
}

// MergeMap projects every source value to an Observable and merges all
// the resulting inner Observables concurrently.
func MergeMap[T, R any](project func(item T) Observable[R]) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return MergeAll[R]()(Map(project)(source))
	}
}

// FlatMap is an alias for MergeMap.
func FlatMap[T, R any](project func(item T) Observable[R]) func(Observable[T]) Observable[R] {
	return MergeMap(project)
}

// Flatten flattens an Observable of slices into an Observable of their
// elements.
func Flatten[T any]() func(Observable[[]T]) Observable[T] {
	return func(source Observable[[]T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, values []T) {
					for _, v := range values {
						destination.NextWithContext(ctx, v)
					}
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// CombineLatestWith combines the latest value of source with the latest
// value of obsB every time either emits, once both have emitted at
// least once. It completes once both sources have completed.
func CombineLatestWith[A, B any](obsB Observable[B]) func(Observable[A]) Observable[lo.Tuple2[A, B]] {
	return func(obsA Observable[A]) Observable[lo.Tuple2[A, B]] {
		return NewObservableWithContext(func(subscriberCtx context.Context, destination Observer[lo.Tuple2[A, B]]) Teardown {
			var mu sync.Mutex
			var a A
			var b B
			var hasA, hasB bool
			doneCount := 0

			emit := func(ctx context.Context) {
				if hasA && hasB {
					destination.NextWithContext(ctx, lo.T2(a, b))
				}
			}

			onDone := func(ctx context.Context) {
				doneCount++
				if doneCount == 2 {
					destination.CompleteWithContext(ctx)
				}
			}

			subscriptions := NewSubscription(nil)

			subscriptions.AddUnsubscribable(obsA.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, v A) {
					mu.Lock()
					a, hasA = v, true
					emit(ctx)
					mu.Unlock()
				},
				destination.ErrorWithContext,
				func(ctx context.Context) { mu.Lock(); onDone(ctx); mu.Unlock() },
			)))

			subscriptions.AddUnsubscribable(obsB.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, v B) {
					mu.Lock()
					b, hasB = v, true
					emit(ctx)
					mu.Unlock()
				},
				destination.ErrorWithContext,
				func(ctx context.Context) { mu.Lock(); onDone(ctx); mu.Unlock() },
			)))

			return subscriptions.Unsubscribe
		})
	}
}

// CombineLatest2 combines the latest values of obsA and obsB.
func CombineLatest2[A, B any](obsA Observable[A], obsB Observable[B]) Observable[lo.Tuple2[A, B]] {
	return CombineLatestWith[A](obsB)(obsA)
}

// WithLatestFrom pairs every source value with the latest value of
// other. It emits nothing until other has emitted at least once, and it
// never emits because of other alone. It completes when source
// completes.
func WithLatestFrom[A, B any](other Observable[B]) func(Observable[A]) Observable[lo.Tuple2[A, B]] {
	return func(source Observable[A]) Observable[lo.Tuple2[A, B]] {
		return NewObservableWithContext(func(subscriberCtx context.Context, destination Observer[lo.Tuple2[A, B]]) Teardown {
			var mu sync.Mutex
			var b B
			hasB := false

			subscriptions := NewSubscription(nil)

			subscriptions.AddUnsubscribable(other.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(_ context.Context, v B) {
					mu.Lock()
					b, hasB = v, true
					mu.Unlock()
				},
				func(context.Context, error) {},
				func(context.Context) {},
			)))

			subscriptions.AddUnsubscribable(source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, v A) {
					mu.Lock()
					defer mu.Unlock()
					if hasB {
						destination.NextWithContext(ctx, lo.T2(v, b))
					}
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			)))

			return subscriptions.Unsubscribe
		})
	}
}

// ZipWith pairs the nth value of source with the nth value of obsB,
// waiting for both to be available, in order. It completes as soon as
// one source has completed and every value it emitted has been paired.
func ZipWith[A, B any](obsB Observable[B]) func(Observable[A]) Observable[lo.Tuple2[A, B]] {
	return func(obsA Observable[A]) Observable[lo.Tuple2[A, B]] {
		return NewObservableWithContext(func(subscriberCtx context.Context, destination Observer[lo.Tuple2[A, B]]) Teardown {
			var mu sync.Mutex
			var aBuf []A
			var bBuf []B
			var aDone, bDone bool
			terminated := false

			drain := func(ctx context.Context) {
				for len(aBuf) > 0 && len(bBuf) > 0 {
					a, b := aBuf[0], bBuf[0]
					aBuf, bBuf = aBuf[1:], bBuf[1:]
					destination.NextWithContext(ctx, lo.T2(a, b))
				}

				if !terminated && ((aDone && len(aBuf) == 0) || (bDone && len(bBuf) == 0)) {
					terminated = true
					destination.CompleteWithContext(ctx)
				}
			}

			subscriptions := NewSubscription(nil)

			subscriptions.AddUnsubscribable(obsA.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, v A) { mu.Lock(); aBuf = append(aBuf, v); drain(ctx); mu.Unlock() },
				destination.ErrorWithContext,
				func(ctx context.Context) { mu.Lock(); aDone = true; drain(ctx); mu.Unlock() },
			)))

			subscriptions.AddUnsubscribable(obsB.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, v B) { mu.Lock(); bBuf = append(bBuf, v); drain(ctx); mu.Unlock() },
				destination.ErrorWithContext,
				func(ctx context.Context) { mu.Lock(); bDone = true; drain(ctx); mu.Unlock() },
			)))

			return subscriptions.Unsubscribe
		})
	}
}

// Zip2 zips obsA with obsB.
func Zip2[A, B any](obsA Observable[A], obsB Observable[B]) Observable[lo.Tuple2[A, B]] {
	return ZipWith[A](obsB)(obsA)
}

// ConcatAll subscribes to each inner Observable only after the previous
// one has completed, preserving order and never running two inner
// Observables concurrently.
func ConcatAll[T any]() func(Observable[Observable[T]]) Observable[T] {
	return func(sources Observable[Observable[T]]) Observable[T] {
		return NewObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			all, err := Collect(sources)
			if err != nil {
				destination.ErrorWithContext(subscriberCtx, err)
				return nil
			}

			subscription := NewSubscription(nil)
			var subscribeNext func(index int, ctx context.Context)

			subscribeNext = func(index int, ctx context.Context) {
				if index >= len(all) {
					destination.CompleteWithContext(ctx)
					return
				}

				subscription.AddUnsubscribable(all[index].SubscribeWithContext(ctx, NewObserverWithContext(
					destination.NextWithContext,
					destination.ErrorWithContext,
					func(nextCtx context.Context) { subscribeNext(index+1, nextCtx) },
				)))
			}

			subscribeNext(0, subscriberCtx)

			return subscription.Unsubscribe
		})
	}
}

// Concat concatenates every source in order.
func Concat[T any](sources ...Observable[T]) Observable[T] {
	return ConcatAll[T]()(Of(sources...))
}

// ConcatWith concatenates others after source, in the pipeable form.
func ConcatWith[T any](others ...Observable[T]) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return Concat(append([]Observable[T]{source}, others...)...)
	}
}

// Race mirrors whichever source is first to emit any notification, and
// unsubscribes from every other source.
func Race[T any](sources ...Observable[T]) Observable[T] {
	if len(sources) == 0 {
		return Empty[T]()
	}

	return NewObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
		var mu sync.Mutex
		winner := -1
		subscriptions := make([]Subscription, len(sources))
		outer := NewSubscription(nil)

		for i, src := range sources {
			i := i
			subscriptions[i] = src.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, v T) {
					mu.Lock()
					if winner == -1 {
						winner = i
						for j, s := range subscriptions {
							if j != i && s != nil {
								s.Unsubscribe()
							}
						}
					}
					mu.Unlock()
					if winner == i {
						destination.NextWithContext(ctx, v)
					}
				},
				func(ctx context.Context, err error) {
					mu.Lock()
					isWinner := winner == i || winner == -1
					winner = i
					mu.Unlock()
					if isWinner {
						destination.ErrorWithContext(ctx, err)
					}
				},
				func(ctx context.Context) {
					mu.Lock()
					isWinner := winner == i || winner == -1
					winner = i
					mu.Unlock()
					if isWinner {
						destination.CompleteWithContext(ctx)
					}
				},
			))
			outer.AddUnsubscribable(subscriptions[i])
		}

		return outer.Unsubscribe
	})
}
