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
	"math"

	"github.com/nimbus-rx/rx/internal/constraints"
)

// Reduce folds every source value with accumulator and emits only the
// final result once the source completes. Unlike ReduceInitial, there
// is no seed: the first source value is the initial accumulator, so an
// empty source completes without emitting anything.
func Reduce[T any](accumulator func(agg, item T) T) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var agg T
			hasValue := false

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(_ context.Context, value T) {
					if hasValue {
						agg = accumulator(agg, value)
					} else {
						agg, hasValue = value, true
					}
				},
				destination.ErrorWithContext,
				func(ctx context.Context) {
					if hasValue {
						destination.NextWithContext(ctx, agg)
					}
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}

// ReduceInitial folds every source value with accumulator, starting
// from seed, and emits only the final result once the source
// completes. Unlike Reduce, an empty source still emits seed.
func ReduceInitial[T, R any](accumulator func(agg R, item T) R, seed R) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[R]) Teardown {
			agg := seed

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(_ context.Context, value T) { agg = accumulator(agg, value) },
				destination.ErrorWithContext,
				func(ctx context.Context) {
					destination.NextWithContext(ctx, agg)
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}

// Count emits the number of values the source emitted, once it
// completes.
func Count[T any]() func(Observable[T]) Observable[int64] {
	return func(source Observable[T]) Observable[int64] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[int64]) Teardown {
			count := int64(0)

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(context.Context, T) { count++ },
				destination.ErrorWithContext,
				func(ctx context.Context) {
					destination.NextWithContext(ctx, count)
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}

// Sum emits the sum of every source value, once it completes.
func Sum[T constraints.Numeric]() func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var sum T

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(_ context.Context, value T) { sum += value },
				destination.ErrorWithContext,
				func(ctx context.Context) {
					destination.NextWithContext(ctx, sum)
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}

// Average emits the arithmetic mean of every source value, once it
// completes. An empty source yields NaN.
func Average[T constraints.Numeric]() func(Observable[T]) Observable[float64] {
	return func(source Observable[T]) Observable[float64] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[float64]) Teardown {
			sum := float64(0)
			count := int64(0)

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(_ context.Context, value T) {
					sum += float64(value)
					count++
				},
				destination.ErrorWithContext,
				func(ctx context.Context) {
					if count == 0 {
						destination.NextWithContext(ctx, math.NaN())
					} else {
						destination.NextWithContext(ctx, sum/float64(count))
					}
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}

// Min emits the smallest source value, once the source completes. An
// empty source completes without emitting.
func Min[T constraints.Numeric]() func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var min T
			hasValue := false

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(_ context.Context, value T) {
					if !hasValue || value < min {
						min, hasValue = value, true
					}
				},
				destination.ErrorWithContext,
				func(ctx context.Context) {
					if hasValue {
						destination.NextWithContext(ctx, min)
					}
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}

// Max emits the largest source value, once the source completes. An
// empty source completes without emitting.
func Max[T constraints.Numeric]() func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var max T
			hasValue := false

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(_ context.Context, value T) {
					if !hasValue || value > max {
						max, hasValue = value, true
					}
				},
				destination.ErrorWithContext,
				func(ctx context.Context) {
					if hasValue {
						destination.NextWithContext(ctx, max)
					}
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}
