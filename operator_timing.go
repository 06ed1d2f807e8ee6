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
	"time"
)

// Delay shifts every notification from the source later by d, measured on
// scheduler's clock. Relative order is preserved: each notification is
// handed to scheduler.Schedule in the order it arrived, and delivery to
// destination is serialized so two delayed notifications can never race
// each other out of order.
func Delay[T any](d time.Duration, scheduler Scheduler) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var deliverMu sync.Mutex

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					scheduler.Schedule(d, func() {
						deliverMu.Lock()
						defer deliverMu.Unlock()
						destination.NextWithContext(ctx, value)
					})
				},
				func(ctx context.Context, err error) {
					scheduler.Schedule(d, func() {
						deliverMu.Lock()
						defer deliverMu.Unlock()
						destination.ErrorWithContext(ctx, err)
					})
				},
				func(ctx context.Context) {
					scheduler.Schedule(d, func() {
						deliverMu.Lock()
						defer deliverMu.Unlock()
						destination.CompleteWithContext(ctx)
					})
				},
			))

			return sub.Unsubscribe
		})
	}
}

// Debounce emits the most recent source value only once d has passed
// without the source producing another one. Values that arrive more
// often than every d are dropped, save for the last one in each burst.
func Debounce[T any](d time.Duration, scheduler Scheduler) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var mu sync.Mutex
			var pending Subscription
			var pendingValue T
			var hasPending bool

			cancelPending := func() {
				if pending != nil {
					pending.Unsubscribe()
					pending = nil
				}
			}

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					mu.Lock()
					cancelPending()
					pendingValue = value
					hasPending = true
					pending = scheduler.Schedule(d, func() {
						mu.Lock()
						v := pendingValue
						hasPending = false
						pending = nil
						mu.Unlock()

						destination.NextWithContext(ctx, v)
					})
					mu.Unlock()
				},
				func(ctx context.Context, err error) {
					mu.Lock()
					cancelPending()
					mu.Unlock()

					destination.ErrorWithContext(ctx, err)
				},
				func(ctx context.Context) {
					mu.Lock()
					cancelPending()
					v, ok := pendingValue, hasPending
					hasPending = false
					mu.Unlock()

					if ok {
						destination.NextWithContext(ctx, v)
					}
					destination.CompleteWithContext(ctx)
				},
			))

			return func() {
				mu.Lock()
				cancelPending()
				mu.Unlock()
				sub.Unsubscribe()
			}
		})
	}
}

// ThrottleConfig controls which edges of a throttle window ThrottleTime
// emits on.
type ThrottleConfig struct {
	// Leading emits the value that opened the throttle window immediately.
	Leading bool
	// Trailing emits the most recent value seen during the window, once
	// the window closes, if any value arrived after the leading one.
	Trailing bool
}

// DefaultThrottleConfig emits on the leading edge only, matching the most
// common throttle behavior.
var DefaultThrottleConfig = ThrottleConfig{Leading: true, Trailing: false}

// ThrottleTime limits the source to at most one value per d. config
// selects whether the leading, trailing, or both edges of each window are
// emitted.
func ThrottleTime[T any](d time.Duration, scheduler Scheduler, config ThrottleConfig) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var mu sync.Mutex
			var inWindow bool
			var trailingValue T
			var hasTrailing bool
			var windowTimer Subscription

			var openWindow func(ctx context.Context)

			closeWindow := func(ctx context.Context) {
				mu.Lock()
				inWindow = false
				windowTimer = nil
				v, ok := trailingValue, hasTrailing
				hasTrailing = false
				mu.Unlock()

				if ok && config.Trailing {
					destination.NextWithContext(ctx, v)
					openWindow(ctx)
				}
			}

			openWindow = func(ctx context.Context) {
				mu.Lock()
				inWindow = true
				windowTimer = scheduler.Schedule(d, func() { closeWindow(ctx) })
				mu.Unlock()
			}

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					mu.Lock()
					if !inWindow {
						mu.Unlock()

						if config.Leading {
							destination.NextWithContext(ctx, value)
						}
						openWindow(ctx)

						return
					}

					trailingValue = value
					hasTrailing = true
					mu.Unlock()
				},
				func(ctx context.Context, err error) {
					mu.Lock()
					if windowTimer != nil {
						windowTimer.Unsubscribe()
						windowTimer = nil
					}
					mu.Unlock()

					destination.ErrorWithContext(ctx, err)
				},
				func(ctx context.Context) {
					mu.Lock()
					if windowTimer != nil {
						windowTimer.Unsubscribe()
						windowTimer = nil
					}
					v, ok := trailingValue, hasTrailing
					hasTrailing = false
					mu.Unlock()

					if ok && config.Trailing {
						destination.NextWithContext(ctx, v)
					}
					destination.CompleteWithContext(ctx)
				},
			))

			return func() {
				mu.Lock()
				if windowTimer != nil {
					windowTimer.Unsubscribe()
					windowTimer = nil
				}
				mu.Unlock()
				sub.Unsubscribe()
			}
		})
	}
}

// Sample emits the most recent source value every time signal emits.
// Source values that arrive between two signal emissions, or after the
// last one, without a following signal emission are dropped.
func Sample[T, S any](signal Observable[S]) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var mu sync.Mutex
			var last T
			var hasLast bool

			sourceSub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(_ context.Context, value T) {
					mu.Lock()
					last, hasLast = value, true
					mu.Unlock()
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			signalSub := signal.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, _ S) {
					mu.Lock()
					v, ok := last, hasLast
					mu.Unlock()

					if ok {
						destination.NextWithContext(ctx, v)
					}
				},
				func(context.Context, error) {},
				func(context.Context) {},
			))

			return func() {
				sourceSub.Unsubscribe()
				signalSub.Unsubscribe()
			}
		})
	}
}

// SampleTime emits the most recent source value once every d, on
// scheduler's clock.
func SampleTime[T any](d time.Duration, scheduler Scheduler) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return Sample[T, int64](Interval(d, scheduler))(source)
	}
}

// Timeout errors with a timeout error if no notification arrives from the
// source within d of subscribing, or within d of the previous value.
func Timeout[T any](d time.Duration, scheduler Scheduler) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			var mu sync.Mutex
			var timer Subscription
			var timedOut bool

			var armTimer func(ctx context.Context)

			fire := func(ctx context.Context) {
				mu.Lock()
				if timedOut {
					mu.Unlock()
					return
				}
				timedOut = true
				mu.Unlock()

				destination.ErrorWithContext(ctx, newTimeoutError(d))
			}

			armTimer = func(ctx context.Context) {
				mu.Lock()
				if timer != nil {
					timer.Unsubscribe()
				}
				timer = scheduler.Schedule(d, func() { fire(ctx) })
				mu.Unlock()
			}

			armTimer(subscriberCtx)

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					mu.Lock()
					if timedOut {
						mu.Unlock()
						return
					}
					mu.Unlock()

					destination.NextWithContext(ctx, value)
					armTimer(ctx)
				},
				func(ctx context.Context, err error) {
					mu.Lock()
					if timer != nil {
						timer.Unsubscribe()
					}
					skip := timedOut
					mu.Unlock()

					if !skip {
						destination.ErrorWithContext(ctx, err)
					}
				},
				func(ctx context.Context) {
					mu.Lock()
					if timer != nil {
						timer.Unsubscribe()
					}
					skip := timedOut
					mu.Unlock()

					if !skip {
						destination.CompleteWithContext(ctx)
					}
				},
			))

			return func() {
				mu.Lock()
				if timer != nil {
					timer.Unsubscribe()
				}
				mu.Unlock()
				sub.Unsubscribe()
			}
		})
	}
}

// detachOn buffers notifications through a channel whose delivery loop
// runs on a dedicated goroutine; with onUpstream the upstream subscribe
// also runs on its own goroutine instead of the caller's.
func detachOn[T any](bufferSize int, onUpstream, onDownstream bool) func(Observable[T]) Observable[T] {
	if bufferSize <= 0 {
		panic(ErrObserveOnWrongBufferSize)
	}

	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			notifications := make(chan Notification[T], bufferSize)
			done := make(chan struct{})

			subscribeUpstream := func() Subscription {
				return source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
					func(ctx context.Context, value T) {
						select {
						case notifications <- NewNotificationNext(value):
						case <-done:
						}
					},
					func(ctx context.Context, err error) {
						select {
						case notifications <- Notification[T]{Kind: KindError, Err: err}:
						case <-done:
						}
					},
					func(ctx context.Context) {
						select {
						case notifications <- NewNotificationComplete[T]():
						case <-done:
						}
					},
				))
			}

			var sub Subscription

			if onUpstream {
				go func() { sub = subscribeUpstream() }()
			} else {
				sub = subscribeUpstream()
			}

			deliver := func() {
				for n := range notifications {
					if !processNotificationWithObserverAndContext(subscriberCtx, n, destination) {
						return
					}
				}
			}

			if onUpstream || onDownstream {
				go deliver()
			} else {
				deliver()
			}

			return func() {
				close(done)
				if sub != nil {
					sub.Unsubscribe()
				}
			}
		})
	}
}

// SubscribeOn moves the source's Subscribe call onto a dedicated
// goroutine, so a slow or blocking subscribe doesn't stall the caller.
// bufferSize sizes the channel connecting that goroutine back to
// destination; it panics with ErrObserveOnWrongBufferSize if bufferSize
// isn't positive.
func SubscribeOn[T any](bufferSize int) func(Observable[T]) Observable[T] {
	return detachOn[T](bufferSize, true, false)
}

// ObserveOn moves delivery of notifications to destination onto a
// dedicated goroutine, decoupling the source's producing goroutine from
// whatever work destination performs. bufferSize sizes the channel
// between them; it panics with ErrObserveOnWrongBufferSize if bufferSize
// isn't positive.
func ObserveOn[T any](bufferSize int) func(Observable[T]) Observable[T] {
	return detachOn[T](bufferSize, false, true)
}

// Serialize wraps source so that concurrent notifications from it are
// delivered to observers one at a time, in arrival order. Use it to make
// a multi-producer source safe for a downstream operator that assumes
// single-threaded delivery.
func Serialize[T any](source Observable[T]) Observable[T] {
	return NewSafeObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		sub := source.SubscribeWithContext(ctx, destination)
		return sub.Unsubscribe
	})
}
