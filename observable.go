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

	"github.com/samber/lo"
)

// Backpressure selects what a Subscriber does when it cannot accept a
// Next notification immediately.
type Backpressure int8

const (
	// BackpressureBlock waits for the destination to be ready.
	BackpressureBlock Backpressure = iota
	// BackpressureDrop discards the notification and reports it to
	// OnDroppedNotification instead of waiting.
	BackpressureDrop
)

// ConcurrencyMode selects the synchronization cost a Subscriber pays.
type ConcurrencyMode int8

const (
	// ConcurrencyModeSafe serializes Next/Error/Complete with a real mutex.
	// The default, and the only mode safe when more than one goroutine
	// might feed the chain.
	ConcurrencyModeSafe ConcurrencyMode = iota
	// ConcurrencyModeUnsafe performs no locking at all. Only correct for
	// single-producer chains.
	ConcurrencyModeUnsafe
	// ConcurrencyModeEventuallySafe locks with a real mutex but drops a
	// Next notification under contention rather than blocking.
	ConcurrencyModeEventuallySafe
)

// Observable is a factory for streams of values: each Subscribe call may
// run an independent production of values terminated by at most one of
// Error or Complete. An Observable is not itself a stream — subscribing
// twice to the same Observable may produce two unrelated sequences
// unless the Observable is backed by a Subject or wrapped in a
// ConnectableObservable.
type Observable[T any] interface {
	// Subscribe attaches destination and returns a Subscription that can
	// be used to cancel early or to wait for termination. Subscribe may
	// invoke destination's methods synchronously or from another
	// goroutine; it is the Observable's job to never call Next after an
	// Error or Complete, and the Subscriber wrapper enforces this even if
	// the underlying producer gets it wrong.
	Subscribe(destination Observer[T]) Subscription
	SubscribeWithContext(ctx context.Context, destination Observer[T]) Subscription
}

var _ Observable[int] = (*observableImpl[int])(nil)

// NewObservable creates an Observable from a subscribe function, using
// ConcurrencyModeSafe. The function receives the (already wrapped)
// destination and returns a Teardown to run on unsubscription, or nil.
func NewObservable[T any](subscribe func(destination Observer[T]) Teardown) Observable[T] {
	return NewSafeObservable(subscribe)
}

// NewSafeObservable is NewObservable, spelled out.
func NewSafeObservable[T any](subscribe func(destination Observer[T]) Teardown) Observable[T] {
	return NewObservableWithConcurrencyMode(
		func(_ context.Context, destination Observer[T]) Teardown { return subscribe(destination) },
		ConcurrencyModeSafe,
	)
}

// NewUnsafeObservable creates an Observable whose Subscriber performs no
// locking. Only correct when subscribe feeds destination from a single
// goroutine.
func NewUnsafeObservable[T any](subscribe func(destination Observer[T]) Teardown) Observable[T] {
	return NewObservableWithConcurrencyMode(
		func(_ context.Context, destination Observer[T]) Teardown { return subscribe(destination) },
		ConcurrencyModeUnsafe,
	)
}

// NewEventuallySafeObservable creates an Observable whose Subscriber
// drops a Next notification instead of blocking when contended.
func NewEventuallySafeObservable[T any](subscribe func(destination Observer[T]) Teardown) Observable[T] {
	return NewObservableWithConcurrencyMode(
		func(_ context.Context, destination Observer[T]) Teardown { return subscribe(destination) },
		ConcurrencyModeEventuallySafe,
	)
}

// NewObservableWithContext is NewObservable for a subscribe function
// that wants the subscription's context.
func NewObservableWithContext[T any](subscribe func(ctx context.Context, destination Observer[T]) Teardown) Observable[T] {
	return NewObservableWithConcurrencyMode(subscribe, ConcurrencyModeSafe)
}

// NewSafeObservableWithContext is an alias of NewObservableWithContext.
func NewSafeObservableWithContext[T any](subscribe func(ctx context.Context, destination Observer[T]) Teardown) Observable[T] {
	return NewObservableWithConcurrencyMode(subscribe, ConcurrencyModeSafe)
}

// NewUnsafeObservableWithContext is NewUnsafeObservable for a subscribe
// function that wants the subscription's context.
func NewUnsafeObservableWithContext[T any](subscribe func(ctx context.Context, destination Observer[T]) Teardown) Observable[T] {
	return NewObservableWithConcurrencyMode(subscribe, ConcurrencyModeUnsafe)
}

// NewEventuallySafeObservableWithContext is NewEventuallySafeObservable
// for a subscribe function that wants the subscription's context.
func NewEventuallySafeObservableWithContext[T any](subscribe func(ctx context.Context, destination Observer[T]) Teardown) Observable[T] {
	return NewObservableWithConcurrencyMode(subscribe, ConcurrencyModeEventuallySafe)
}

// NewObservableWithConcurrencyMode is the constructor every other
// NewXObservable variant funnels into.
func NewObservableWithConcurrencyMode[T any](subscribe func(ctx context.Context, destination Observer[T]) Teardown, mode ConcurrencyMode) Observable[T] {
	return &observableImpl[T]{mode: mode, subscribe: subscribe}
}

type observableImpl[T any] struct {
	mode      ConcurrencyMode
	subscribe func(ctx context.Context, destination Observer[T]) Teardown
}

func (o *observableImpl[T]) Subscribe(destination Observer[T]) Subscription {
	return o.SubscribeWithContext(context.Background(), destination)
}

func (o *observableImpl[T]) SubscribeWithContext(ctx context.Context, destination Observer[T]) Subscription {
	subscriber := NewSubscriberWithConcurrencyMode(destination, o.mode)

	lo.TryCatchWithErrorValue(
		func() error {
			subscriber.Add(o.subscribe(ctx, subscriber))
			return nil
		},
		func(e any) {
			err := recoverValueToError(e)
			subscriber.ErrorWithContext(ctx, newObservableError(err))
			subscriber.Unsubscribe()
		},
	)

	return subscriber
}

// Collect runs obs to completion and returns every value it emitted.
func Collect[T any](obs Observable[T]) ([]T, error) {
	values, _, err := CollectWithContext(context.Background(), obs)
	return values, err
}

// CollectWithContext is Collect, blocking on a caller-supplied context.
func CollectWithContext[T any](ctx context.Context, obs Observable[T]) ([]T, context.Context, error) {
	values := []T{}

	var lastCtx context.Context
	var err error

	sub := obs.SubscribeWithContext(ctx, NewObserverWithContext(
		func(_ context.Context, value T) { values = append(values, value) },
		func(ctx context.Context, thrown error) { err = thrown; lastCtx = ctx },
		func(ctx context.Context) { lastCtx = ctx },
	))

	sub.Wait()

	return values, lastCtx, err
}
