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
	"time"
)

// Of creates an Observable that synchronously emits the given values,
// in order, then completes.
func Of[T any](values ...T) Observable[T] {
	return NewUnsafeObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		for _, v := range values {
			destination.NextWithContext(ctx, v)
		}
		destination.CompleteWithContext(ctx)
		return nil
	})
}

// Just is an alias for Of.
func Just[T any](values ...T) Observable[T] {
	return Of(values...)
}

// Start creates an Observable that lazily evaluates cb on subscription
// and emits its single return value.
func Start[T any](cb func() T) Observable[T] {
	return NewUnsafeObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		destination.NextWithContext(ctx, cb())
		destination.CompleteWithContext(ctx)
		return nil
	})
}

// Empty creates an Observable that completes immediately without
// emitting any value.
func Empty[T any]() Observable[T] {
	return NewUnsafeObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		destination.CompleteWithContext(ctx)
		return nil
	})
}

// Never creates an Observable that never emits and never terminates,
// except when its subscription's context is cancelled.
func Never[T any]() Observable[T] {
	return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
		done := make(chan struct{})

		go func() {
			select {
			case <-subscriberCtx.Done():
				if err := subscriberCtx.Err(); err != nil {
					destination.ErrorWithContext(subscriberCtx, err)
				}
			case <-done:
			}
		}()

		return func() { close(done) }
	})
}

// Throw creates an Observable that immediately errors with err. A nil
// err is a valid, if unusual, argument.
func Throw[T any](err error) Observable[T] {
	return NewUnsafeObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		destination.ErrorWithContext(ctx, err)
		return nil
	})
}

// Defer creates an Observable that calls factory fresh for every
// subscription, instead of sharing one underlying Observable. Use it to
// capture state that should not be shared across subscribers.
func Defer[T any](factory func() Observable[T]) Observable[T] {
	return NewUnsafeObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		sub := factory().SubscribeWithContext(ctx, destination)
		return sub.Unsubscribe
	})
}

// Future creates an Observable that runs factory on its own goroutine
// and emits either the value it returns or the error.
func Future[T any](factory func() (T, error)) Observable[T] {
	return NewUnsafeObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		go recoverUnhandledError(ctx, func() {
			v, err := factory()
			if err != nil {
				destination.ErrorWithContext(ctx, err)
				return
			}
			destination.NextWithContext(ctx, v)
			destination.CompleteWithContext(ctx)
		})

		return nil
	})
}

// FromChannel creates an Observable that relays every value read from
// in, completing when in is closed. Unsubscribing stops reading from
// in, but does not close it.
func FromChannel[T any](in <-chan T) Observable[T] {
	return NewUnsafeObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		done := make(chan struct{})

		go recoverUnhandledError(ctx, func() {
			for {
				select {
				case v, ok := <-in:
					if !ok {
						destination.CompleteWithContext(ctx)
						return
					}
					destination.NextWithContext(ctx, v)
				case <-done:
					return
				}
			}
		})

		return func() { close(done) }
	})
}

// FromSlice creates an Observable emitting every value of every slice,
// in order, then completes.
func FromSlice[T any](slices ...[]T) Observable[T] {
	return NewUnsafeObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		for _, slice := range slices {
			for _, v := range slice {
				destination.NextWithContext(ctx, v)
			}
		}
		destination.CompleteWithContext(ctx)
		return nil
	})
}

// Range creates an Observable emitting the half-open integer range
// [start, end). If start > end the values descend.
func Range(start, end int64) Observable[int64] {
	if start == end {
		return Empty[int64]()
	}

	sign := int64(1)
	if start > end {
		sign = -1
	}

	return NewUnsafeObservableWithContext(func(ctx context.Context, destination Observer[int64]) Teardown {
		for cursor := start; cursor*sign < end*sign; cursor += sign {
			destination.NextWithContext(ctx, cursor)
		}
		destination.CompleteWithContext(ctx)
		return nil
	})
}

// Repeat creates an Observable emitting item exactly count times, then
// completes. Panics with ErrRepeatWrongCount if count < 0.
func Repeat[T any](item T, count int64) Observable[T] {
	if count < 0 {
		panic(ErrRepeatWrongCount)
	}
	if count == 0 {
		return Empty[T]()
	}

	return NewUnsafeObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		for i := int64(0); i < count; i++ {
			destination.NextWithContext(ctx, item)
		}
		destination.CompleteWithContext(ctx)
		return nil
	})
}

// Timer creates an Observable that emits a single value (the elapsed
// duration) once d has passed on scheduler, then completes.
func Timer(d time.Duration, scheduler Scheduler) Observable[time.Duration] {
	return NewObservableWithContext(func(ctx context.Context, destination Observer[time.Duration]) Teardown {
		return scheduler.Schedule(d, func() {
			destination.NextWithContext(ctx, d)
			destination.CompleteWithContext(ctx)
		}).Unsubscribe
	})
}

// Interval creates an Observable that emits an ascending sequence of
// int64 starting at 0, once every d on scheduler. The first value is
// emitted after the first interval elapses, not immediately. It never
// completes on its own.
func Interval(d time.Duration, scheduler Scheduler) Observable[int64] {
	return NewObservableWithContext(func(ctx context.Context, destination Observer[int64]) Teardown {
		value := int64(0)

		subscription := scheduler.ScheduleRepeating(d, func() {
			destination.NextWithContext(ctx, value)
			value++
		})

		return subscription.Unsubscribe
	})
}

// IntervalAt creates an Observable like Interval, except its first tick
// fires at max(at, scheduler.Now()) rather than after one full d; every
// tick after the first is still spaced d apart. It never completes on
// its own.
func IntervalAt(at time.Time, d time.Duration, scheduler Scheduler) Observable[int64] {
	return NewObservableWithContext(func(ctx context.Context, destination Observer[int64]) Teardown {
		value := int64(0)

		delay := at.Sub(scheduler.Now())
		if delay < 0 {
			delay = 0
		}

		subscription := NewSubscription(nil)

		subscription.AddUnsubscribable(scheduler.Schedule(delay, func() {
			destination.NextWithContext(ctx, value)
			value++

			subscription.AddUnsubscribable(scheduler.ScheduleRepeating(d, func() {
				destination.NextWithContext(ctx, value)
				value++
			}))
		}))

		return subscription.Unsubscribe
	})
}
