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
	"fmt"
	"sync/atomic"

	"github.com/samber/lo"
)

// Observer is the consumer of an Observable. It receives at most one
// terminal notification (Error xor Complete), preceded by any number of
// Next values. Implementations must be safe for the calls an Observable
// makes, but it is the Observer's job to stop forwarding once closed.
type Observer[T any] interface {
	Next(value T)
	NextWithContext(ctx context.Context, value T)

	Error(err error)
	ErrorWithContext(ctx context.Context, err error)

	Complete()
	CompleteWithContext(ctx context.Context)

	// IsClosed reports whether a terminal notification has already been
	// delivered; producers must stop emitting once this is true.
	IsClosed() bool
	HasThrown() bool
	IsCompleted() bool
}

var _ Observer[int] = (*observerImpl[int])(nil)

// NewObserver creates an Observer from plain callbacks.
func NewObserver[T any](onNext func(T), onError func(error), onComplete func()) Observer[T] {
	return &observerImpl[T]{
		onNext:     func(_ context.Context, value T) { onNext(value) },
		onError:    func(_ context.Context, err error) { onError(err) },
		onComplete: func(_ context.Context) { onComplete() },
	}
}

// NewObserverWithContext creates an Observer from context-aware callbacks.
func NewObserverWithContext[T any](onNext func(context.Context, T), onError func(context.Context, error), onComplete func(context.Context)) Observer[T] {
	return &observerImpl[T]{onNext: onNext, onError: onError, onComplete: onComplete}
}

type observerImpl[T any] struct {
	// 0: active, 1: errored, 2: completed.
	status     int32
	onNext     func(context.Context, T)
	onError    func(context.Context, error)
	onComplete func(context.Context)
}

func (o *observerImpl[T]) Next(value T) { o.NextWithContext(context.Background(), value) }

func (o *observerImpl[T]) NextWithContext(ctx context.Context, value T) {
	if o.onNext == nil || atomic.LoadInt32(&o.status) != 0 {
		OnDroppedNotification(ctx, NewNotificationNext(value))
		return
	}

	o.tryNext(ctx, value)
}

func (o *observerImpl[T]) Error(err error) { o.ErrorWithContext(context.Background(), err) }

func (o *observerImpl[T]) ErrorWithContext(ctx context.Context, err error) {
	if o.onError == nil || !atomic.CompareAndSwapInt32(&o.status, 0, 1) {
		OnDroppedNotification(ctx, NewNotificationError[T](err))
		return
	}

	o.tryError(ctx, err)
}

func (o *observerImpl[T]) Complete() { o.CompleteWithContext(context.Background()) }

func (o *observerImpl[T]) CompleteWithContext(ctx context.Context) {
	if o.onComplete == nil || !atomic.CompareAndSwapInt32(&o.status, 0, 2) {
		OnDroppedNotification(ctx, NewNotificationComplete[T]())
		return
	}

	o.tryComplete(ctx)
}

func (o *observerImpl[T]) tryNext(ctx context.Context, value T) {
	lo.TryCatchWithErrorValue(
		func() error {
			o.onNext(ctx, value)
			return nil
		},
		func(e any) {
			err := newObserverError(recoverValueToError(e))
			if o.onError == nil {
				OnUnhandledError(ctx, err)
			} else {
				o.tryError(ctx, err)
			}
		},
	)
}

func (o *observerImpl[T]) tryError(ctx context.Context, err error) {
	lo.TryCatchWithErrorValue(
		func() error {
			o.onError(ctx, err)
			return nil
		},
		func(e any) {
			OnUnhandledError(ctx, newObserverError(recoverValueToError(e)))
		},
	)
}

func (o *observerImpl[T]) tryComplete(ctx context.Context) {
	lo.TryCatchWithErrorValue(
		func() error {
			o.onComplete(ctx)
			return nil
		},
		func(e any) {
			OnUnhandledError(ctx, newObserverError(recoverValueToError(e)))
		},
	)
}

func (o *observerImpl[T]) IsClosed() bool    { return atomic.LoadInt32(&o.status) != 0 }
func (o *observerImpl[T]) HasThrown() bool   { return atomic.LoadInt32(&o.status) == 1 }
func (o *observerImpl[T]) IsCompleted() bool { return atomic.LoadInt32(&o.status) == 2 }

// OnNext builds a partial Observer that only reacts to Next; errors and
// completion are silently dropped.
func OnNext[T any](onNext func(T)) Observer[T] {
	return NewObserver(onNext, func(error) {}, func() {})
}

// OnError builds a partial Observer that only reacts to Error.
func OnError[T any](onError func(error)) Observer[T] {
	return NewObserver(func(T) {}, onError, func() {})
}

// OnComplete builds a partial Observer that only reacts to Complete.
func OnComplete[T any](onComplete func()) Observer[T] {
	return NewObserver(func(T) {}, func(error) {}, onComplete)
}

// NoopObserver discards every notification.
func NoopObserver[T any]() Observer[T] {
	return NewObserverWithContext[T](
		func(context.Context, T) {},
		func(context.Context, error) {},
		func(context.Context) {},
	)
}

// PrintObserver dumps notifications to stdout, for ad-hoc debugging.
func PrintObserver[T any]() Observer[T] {
	return NewObserverWithContext[T](
		func(_ context.Context, value T) { fmt.Printf("Next: %v\n", value) },
		func(_ context.Context, err error) { fmt.Printf("Error: %s\n", err.Error()) },
		func(context.Context) { fmt.Printf("Completed\n") },
	)
}
