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

import "context"

// Map projects every value of the source through project.
func Map[T, R any](project func(item T) R) func(Observable[T]) Observable[R] {
	return MapWithContext(func(ctx context.Context, item T) (context.Context, R) {
		return ctx, project(item)
	})
}

// MapWithContext is Map for a projection that also rewrites the context
// flowing downstream.
func MapWithContext[T, R any](project func(ctx context.Context, item T) (context.Context, R)) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[R]) Teardown {
			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					newCtx, mapped := project(ctx, value)
					destination.NextWithContext(newCtx, mapped)
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// MapTo replaces every value of the source with output.
func MapTo[T, R any](output R) func(Observable[T]) Observable[R] {
	return Map(func(T) R { return output })
}

// Scan accumulates every value with reduce, emitting the running
// accumulator instead of the source value.
func Scan[T, R any](reduce func(accumulator R, item T) R, seed R) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[R]) Teardown {
			acc := seed

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					acc = reduce(acc, value)
					destination.NextWithContext(ctx, acc)
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// Pairwise emits each consecutive pair of source values as a [2]T. It
// emits nothing until the second source value arrives.
func Pairwise[T any]() func(Observable[T]) Observable[[2]T] {
	return func(source Observable[T]) Observable[[2]T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[[2]T]) Teardown {
			var prev T
			hasPrev := false

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					if hasPrev {
						destination.NextWithContext(ctx, [2]T{prev, value})
					}
					prev = value
					hasPrev = true
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}

// StartWith prepends the given values, in order, before any value from
// the source.
func StartWith[T any](prefixes ...T) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return Concat(Of(prefixes...), source)
	}
}

// DefaultIfEmpty emits defaultValue, then completes, if the source
// completes without ever emitting a value; otherwise it passes the
// source through unchanged.
func DefaultIfEmpty[T any](defaultValue T) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			emitted := false

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					emitted = true
					destination.NextWithContext(ctx, value)
				},
				destination.ErrorWithContext,
				func(ctx context.Context) {
					if !emitted {
						destination.NextWithContext(ctx, defaultValue)
					}
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}

// Tap runs the given callbacks for their side effects, forwarding every
// notification to the destination unchanged.
func Tap[T any](onNext func(T), onError func(error), onComplete func()) func(Observable[T]) Observable[T] {
	return TapWithContext(
		func(_ context.Context, v T) { onNext(v) },
		func(_ context.Context, err error) { onError(err) },
		func(context.Context) { onComplete() },
	)
}

// TapWithContext is Tap for context-aware callbacks.
func TapWithContext[T any](onNext func(context.Context, T), onError func(context.Context, error), onComplete func(context.Context)) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					recoverUnhandledError(ctx, func() { onNext(ctx, value) })
					destination.NextWithContext(ctx, value)
				},
				func(ctx context.Context, err error) {
					recoverUnhandledError(ctx, func() { onError(ctx, err) })
					destination.ErrorWithContext(ctx, err)
				},
				func(ctx context.Context) {
					recoverUnhandledError(ctx, func() { onComplete(ctx) })
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}

// TapOnNext is Tap for only the Next notification.
func TapOnNext[T any](onNext func(value T)) func(Observable[T]) Observable[T] {
	return Tap(onNext, func(error) {}, func() {})
}

// TapOnError is Tap for only the Error notification.
func TapOnError[T any](onError func(err error)) func(Observable[T]) Observable[T] {
	return Tap(func(T) {}, onError, func() {})
}

// TapOnErrorWithContext is TapOnError for a context-aware callback.
func TapOnErrorWithContext[T any](onError func(ctx context.Context, err error)) func(Observable[T]) Observable[T] {
	return TapWithContext(func(context.Context, T) {}, onError, func(context.Context) {})
}

// TapOnComplete is Tap for only the Complete notification.
func TapOnComplete[T any](onComplete func()) func(Observable[T]) Observable[T] {
	return Tap(func(T) {}, func(error) {}, onComplete)
}

// Finalize runs cb exactly once, when the resulting Observable's
// subscription ends for any reason (error, completion, or explicit
// unsubscription).
func Finalize[T any](cb func()) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(subscriberCtx, destination)
			sub.Add(cb)
			return sub.Unsubscribe
		})
	}
}
