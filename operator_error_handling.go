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

// Catch subscribes to finally(err) in place of propagating the source's
// error, letting the resulting Observable recover instead of erroring.
func Catch[T any](finally func(err error) Observable[T]) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			subscriptions := NewSubscription(nil)

			subscriptions.AddUnsubscribable(
				source.SubscribeWithContext(
					subscriberCtx,
					NewObserverWithContext(
						destination.NextWithContext,
						func(ctx context.Context, err error) {
							subscriptions.AddUnsubscribable(
								finally(err).SubscribeWithContext(ctx, destination),
							)
						},
						destination.CompleteWithContext,
					),
				),
			)

			return subscriptions.Unsubscribe
		})
	}
}

// OnErrorResumeNextWith subscribes to each of fallback, in order, once the
// source or the previous fallback errors. The first Observable that
// completes ends the chain; the remaining fallbacks are not subscribed.
func OnErrorResumeNextWith[T any](fallback ...Observable[T]) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		if len(fallback) == 0 {
			return source
		}

		chain := append([]Observable[T]{source}, fallback...)

		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			subscriptions := NewSubscription(nil)

			var lastCtx context.Context = subscriberCtx
			var err error

			for i := range chain {
				if subscriptions.IsClosed() {
					break
				}

				err = nil

				sub := chain[i].SubscribeWithContext(
					subscriberCtx,
					NewObserverWithContext(
						destination.NextWithContext,
						func(ctx context.Context, e error) {
							err = e
							lastCtx = ctx
						},
						func(ctx context.Context) {
							lastCtx = ctx
						},
					),
				)

				subscriptions.AddUnsubscribable(sub)
				sub.Wait()

				if err == nil {
					break
				}
			}

			if err != nil {
				destination.ErrorWithContext(lastCtx, err)
			} else {
				destination.CompleteWithContext(lastCtx)
			}

			return subscriptions.Unsubscribe
		})
	}
}

// OnErrorReturn emits fallback and completes in place of propagating the
// source's error.
func OnErrorReturn[T any](fallback T) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(
				subscriberCtx,
				NewObserverWithContext(
					destination.NextWithContext,
					func(ctx context.Context, _ error) {
						destination.NextWithContext(ctx, fallback)
						destination.CompleteWithContext(ctx)
					},
					destination.CompleteWithContext,
				),
			)

			return sub.Unsubscribe
		})
	}
}

// RetryConfig configures Retry.
type RetryConfig struct {
	// MaxRetries caps the number of resubscriptions after an error. Zero
	// means unlimited.
	MaxRetries uint64
	// Delay is waited before each resubscription.
	Delay time.Duration
	// ResetOnSuccess resets the retry counter the first time the source
	// emits a value after a resubscription.
	ResetOnSuccess bool
}

// Retry resubscribes to the source indefinitely whenever it errors. Use
// RetryWithConfig to cap the number of attempts or space them out.
func Retry[T any]() func(Observable[T]) Observable[T] {
	return RetryWithConfig[T](RetryConfig{})
}

// RetryWithConfig resubscribes to the source when it errors, honoring
// config's retry limit and delay.
func RetryWithConfig[T any](config RetryConfig) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			subscriptions := NewSubscription(nil)
			retries := uint64(0)

			for !subscriptions.IsClosed() {
				select {
				case <-subscriberCtx.Done():
					destination.ErrorWithContext(subscriberCtx, subscriberCtx.Err())
					return subscriptions.Unsubscribe
				default:
				}

				var shouldRetry bool
				var lastErr error

				sub := source.SubscribeWithContext(
					subscriberCtx,
					NewObserverWithContext(
						func(ctx context.Context, value T) {
							if config.ResetOnSuccess {
								retries = 0
							}
							destination.NextWithContext(ctx, value)
						},
						func(_ context.Context, err error) {
							lastErr = err
							retries++
							shouldRetry = config.MaxRetries == 0 || retries <= config.MaxRetries
						},
						destination.CompleteWithContext,
					),
				)

				subscriptions.AddUnsubscribable(sub)
				sub.Wait()

				if lastErr == nil {
					break
				}

				if !shouldRetry {
					destination.ErrorWithContext(subscriberCtx, lastErr)
					break
				}

				if config.Delay > 0 {
					select {
					case <-time.After(config.Delay):
					case <-subscriberCtx.Done():
						destination.ErrorWithContext(subscriberCtx, subscriberCtx.Err())
						return subscriptions.Unsubscribe
					}
				}
			}

			return subscriptions.Unsubscribe
		})
	}
}

// ThrowIfEmpty errors with makeErr() if the source completes without
// emitting any value; otherwise it passes the source through unchanged.
func ThrowIfEmpty[T any](makeErr func() error) func(Observable[T]) Observable[T] {
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
						destination.ErrorWithContext(ctx, makeErr())
						return
					}
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}

// Materialize converts every Next, Error, and Complete notification from
// the source into a Notification value, so downstream operators can treat
// termination as ordinary data. The resulting Observable always completes
// normally, even if the source errored.
func Materialize[T any]() func(Observable[T]) Observable[Notification[T]] {
	return func(source Observable[T]) Observable[Notification[T]] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[Notification[T]]) Teardown {
			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, value T) {
					destination.NextWithContext(ctx, NewNotificationNext(value))
				},
				func(ctx context.Context, err error) {
					destination.NextWithContext(ctx, NewNotificationError[T](err))
					destination.CompleteWithContext(ctx)
				},
				func(ctx context.Context) {
					destination.NextWithContext(ctx, NewNotificationComplete[T]())
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}

// Dematerialize is the inverse of Materialize: it unpacks each
// Notification value back into a real Next, Error, or Complete signal.
func Dematerialize[T any]() func(Observable[Notification[T]]) Observable[T] {
	return func(source Observable[Notification[T]]) Observable[T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[T]) Teardown {
			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(ctx context.Context, n Notification[T]) {
					processNotificationWithObserverAndContext(ctx, n, destination)
				},
				destination.ErrorWithContext,
				destination.CompleteWithContext,
			))

			return sub.Unsubscribe
		})
	}
}
