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
	"sync/atomic"
)

// Filter emits only the source values for which predicate returns true.
func Filter[T any](predicate func(item T) bool) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					if predicate(value) {
						destination.NextWithContext(ctx, value)
					}
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// FilterMap applies project to every source value; values for which ok
// is false are dropped, everything else is forwarded mapped.
func FilterMap[T, R any](project func(item T) (R, bool)) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[R]) Teardown {
			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					if mapped, ok := project(value); ok {
						destination.NextWithContext(ctx, mapped)
					}
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// Distinct emits only values never seen before on this subscription.
func Distinct[T comparable]() func(Observable[T]) Observable[T] {
	return DistinctBy(func(v T) T { return v })
}

// DistinctBy emits only values whose keySelector result was never seen
// before on this subscription.
func DistinctBy[T any, K comparable](keySelector func(item T) K) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			seen := map[K]struct{}{}

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					key := keySelector(value)
					if _, ok := seen[key]; !ok {
						seen[key] = struct{}{}
						destination.NextWithContext(ctx, value)
					}
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// DistinctUntilChanged drops a value when it equals, by keySelector, the
// immediately preceding value (unlike Distinct, it does not remember the
// whole history).
func DistinctUntilChanged[T any, K comparable](keySelector func(item T) K) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var lastKey K
			hasLast := false

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					key := keySelector(value)
					if hasLast && key == lastKey {
						return
					}
					hasLast = true
					lastKey = key
					destination.NextWithContext(ctx, value)
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// IgnoreElements drops every Next, forwarding only Error/Complete.
func IgnoreElements[T any]() func(Observable[T]) Observable[T] {
	return Filter(func(T) bool { return false })
}

// Skip drops the first count source values, then forwards the rest.
// Panics with ErrSkipWrongCount if count < 0.
func Skip[T any](count int64) func(Observable[T]) Observable[T] {
	if count < 0 {
		panic(ErrSkipWrongCount)
	}

	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			seen := int64(0)

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					if seen >= count {
						destination.NextWithContext(ctx, value)
					}
					seen++
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// SkipLast withholds the last count source values: each value is only
// forwarded once count further values have arrived behind it. Panics
// with ErrSkipLastWrongCount if count < 1.
func SkipLast[T any](count int) func(Observable[T]) Observable[T] {
	if count < 1 {
		panic(ErrSkipLastWrongCount)
	}

	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			buffer := make([]lo2[T], 0, count)

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					buffer = append(buffer, lo2[T]{ctx, value})
					if len(buffer) > count {
						oldest := buffer[0]
						buffer = buffer[1:]
						destination.NextWithContext(oldest.ctx, oldest.value)
					}
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// Take forwards only the first count source values, then unsubscribes
// from the source and completes. Panics with ErrTakeWrongCount if
// count < 0.
func Take[T any](count int64) func(Observable[T]) Observable[T] {
	if count < 0 {
		panic(ErrTakeWrongCount)
	}

	return func(source Observable[T]) Observable[T] {
		if count == 0 {
			return Empty[T]()
		}

		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			seen := int64(0)

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					destination.NextWithContext(ctx, value)
					seen++
					if seen >= count {
						destination.CompleteWithContext(ctx)
					}
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// TakeLast forwards only the last count source values, emitted all at
// once right before Complete. Panics with ErrTakeLastWrongCount if
// count <= 0.
func TakeLast[T any](count int) func(Observable[T]) Observable[T] {
	if count <= 0 {
		panic(ErrTakeLastWrongCount)
	}

	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			buffer := make([]lo2[T], 0, count)

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					buffer = append(buffer, lo2[T]{ctx, value})
					if len(buffer) > count {
						buffer = buffer[len(buffer)-count:]
					}
				},
				destination.ErrorWithContext,
				func(ctx context.Context) {
					for _, v := range buffer {
						destination.NextWithContext(v.ctx, v.value)
					}
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}

// SkipWhile drops source values while predicate holds, then forwards
// that value and everything after it. If predicate never returns
// false, nothing is ever forwarded.
func SkipWhile[T any](predicate func(item T) bool) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			skipping := true

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					if skipping && predicate(value) {
						return
					}
					skipping = false
					destination.NextWithContext(ctx, value)
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// TakeWhile forwards source values while predicate holds, then
// completes as soon as it returns false without forwarding that value.
func TakeWhile[T any](predicate func(item T) bool) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					if !predicate(value) {
						destination.CompleteWithContext(ctx)
						return
					}
					destination.NextWithContext(ctx, value)
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// SkipUntil drops source values until signal emits its first value,
// then forwards everything.
func SkipUntil[T, S any](signal Observable[S]) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var allowed int32

			subscription := NewSubscription(nil)

			subscription.AddUnsubscribable(signal.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(context.Context, S) { atomic.StoreInt32(&allowed, 1) },
				func(context.Context, error) {},
				func(context.Context) {},
			)))

			subscription.AddUnsubscribable(source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					if atomic.LoadInt32(&allowed) == 1 {
						destination.NextWithContext(ctx, value)
					}
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			)))

			return subscription.Unsubscribe
		})
	}
}

// TakeUntil forwards source values until signal emits, then completes.
func TakeUntil[T, S any](signal Observable[S]) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			subscription := NewSubscription(nil)

			subscription.AddUnsubscribable(signal.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, _ S) { destination.CompleteWithContext(ctx) },
				func(context.Context, error) {},
				func(context.Context) {},
			)))

			subscription.AddUnsubscribable(source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				destination.NextWithContext,
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			)))

			return subscription.Unsubscribe
		})
	}
}

// First emits the first source value matching predicate, then
// completes. If the source completes without a match, it errors with
// ErrFirstEmpty.
func First[T any](predicate func(item T) bool) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					if predicate == nil || predicate(value) {
						destination.NextWithContext(ctx, value)
						destination.CompleteWithContext(ctx)
					}
				},
				destination.ErrorWithContext,
				func(ctx context.Context) { destination.ErrorWithContext(ctx, ErrFirstEmpty) },
			))

			return sub.Unsubscribe
		})
	}
}

// Last emits the last source value matching predicate, once the source
// completes. If no value ever matches, it errors with ErrLastEmpty.
func Last[T any](predicate func(item T) bool) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var lastCtx context.Context
			var last T
			hasLast := false

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					if predicate == nil || predicate(value) {
						lastCtx, last, hasLast = ctx, value, true
					}
				},
				destination.ErrorWithContext,
				func(ctx context.Context) {
					if hasLast {
						destination.NextWithContext(lastCtx, last)
						destination.CompleteWithContext(lastCtx)
					} else {
						destination.ErrorWithContext(ctx, ErrLastEmpty)
					}
				},
			))

			return sub.Unsubscribe
		})
	}
}

// ElementAt emits only the nth (zero-indexed) source value, then
// completes. If the source completes with fewer than n+1 values, it
// errors with ErrLastEmpty.
func ElementAt[T any](nth int64) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			index := int64(0)

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					if index == nth {
						destination.NextWithContext(ctx, value)
						destination.CompleteWithContext(ctx)
					}
					index++
				},
				destination.ErrorWithContext,
				func(ctx context.Context) {
					if index <= nth {
						destination.ErrorWithContext(ctx, ErrLastEmpty)
					}
				},
			))

			return sub.Unsubscribe
		})
	}
}

// Contains emits true and completes as soon as a source value matches
// predicate; if the source completes without a match, it emits false.
func Contains[T any](predicate func(item T) bool) func(Observable[T]) Observable[bool] {
	return func(source Observable[T]) Observable[bool] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[bool]) Teardown {
			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					if predicate(value) {
						destination.NextWithContext(ctx, true)
						destination.CompleteWithContext(ctx)
					}
				},
				destination.ErrorWithContext,
				func(ctx context.Context) {
					destination.NextWithContext(ctx, false)
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}

// lo2 pairs a context with a value, used internally by operators that
// need to buffer values while preserving the context each arrived with.
type lo2[T any] struct {
	ctx   context.Context
	value T
}
