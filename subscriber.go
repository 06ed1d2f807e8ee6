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

	"github.com/nimbus-rx/rx/internal/xsync"
)

// Subscriber is an Observer with Subscription capabilities layered on
// top. Every Observer passed to Subscribe gets wrapped into one so that
// operators can treat "consumer" and "cancellable handle" uniformly.
type Subscriber[T any] interface {
	Subscription
	Observer[T]
}

var _ Subscriber[int] = (*subscriberImpl[int])(nil)

// NewSubscriber wraps destination into a Subscriber using the Safe
// concurrency mode (a real mutex serializes Next/Error/Complete).
func NewSubscriber[T any](destination Observer[T]) Subscriber[T] {
	return NewSubscriberWithConcurrencyMode(destination, ConcurrencyModeSafe)
}

// NewSubscriberWithConcurrencyMode wraps destination into a Subscriber. If
// destination is already a Subscriber, it is returned unchanged rather than
// double-wrapped.
//
// ConcurrencyModeSafe locks with a real mutex: use it for any chain that
// more than one goroutine might feed (Merge, combine_latest, a scheduler
// callback racing the producer thread).
//
// ConcurrencyModeUnsafe skips locking entirely: use it only when the
// caller can prove the chain is fed by exactly one goroutine — this is
// the Go realization of the "local flavor" spec.md asks for, see
// DESIGN.md.
//
// ConcurrencyModeEventuallySafe locks with a real mutex but drops a Next
// notification instead of blocking when the lock is contended — the
// realization of Backpressure: drop.
func NewSubscriberWithConcurrencyMode[T any](destination Observer[T], mode ConcurrencyMode) Subscriber[T] {
	switch mode {
	case ConcurrencyModeSafe:
		return newSubscriberImpl(mode, xsync.NewMutexWithLock(), BackpressureBlock, destination)
	case ConcurrencyModeUnsafe:
		return newSubscriberImpl(mode, xsync.NewMutexWithoutLock(), BackpressureBlock, destination)
	case ConcurrencyModeEventuallySafe:
		return newSubscriberImpl(mode, xsync.NewMutexWithLock(), BackpressureDrop, destination)
	default:
		panic("rx: invalid concurrency mode")
	}
}

func newSubscriberImpl[T any](mode ConcurrencyMode, mu xsync.Mutex, backpressure Backpressure, destination Observer[T]) Subscriber[T] {
	if subscriber, ok := destination.(Subscriber[T]); ok {
		return subscriber
	}

	subscriber := &subscriberImpl[T]{
		Subscription: NewSubscription(nil),
		destination:  destination,
		mode:         mode,
		mu:           mu,
		backpressure: backpressure,
	}

	if subscription, ok := destination.(Subscription); ok {
		subscription.Add(subscriber.Unsubscribe)
	}

	return subscriber
}

type subscriberImpl[T any] struct {
	Subscription
	destination Observer[T]

	mode         ConcurrencyMode
	mu           xsync.Mutex
	backpressure Backpressure

	// status is read outside of mu: taking mu to read it would deadlock an
	// Observer that calls IsClosed/Unsubscribe synchronously from within
	// Next/Error/Complete.
	// 0: open, 1: errored, 2: completed.
	status int32
}

func (s *subscriberImpl[T]) Next(v T) { s.NextWithContext(context.Background(), v) }

func (s *subscriberImpl[T]) NextWithContext(ctx context.Context, v T) {
	if s.destination == nil {
		return
	}

	if s.backpressure == BackpressureDrop {
		if !s.mu.TryLock() {
			OnDroppedNotification(ctx, NewNotificationNext(v))
			return
		}
	} else {
		s.mu.Lock()
	}

	if atomic.LoadInt32(&s.status) == 0 {
		s.destination.NextWithContext(ctx, v)
	} else {
		OnDroppedNotification(ctx, NewNotificationNext(v))
	}

	s.mu.Unlock()
}

func (s *subscriberImpl[T]) Error(err error) { s.ErrorWithContext(context.Background(), err) }

func (s *subscriberImpl[T]) ErrorWithContext(ctx context.Context, err error) {
	s.mu.Lock()

	if atomic.CompareAndSwapInt32(&s.status, 0, 1) {
		if s.destination != nil {
			s.destination.ErrorWithContext(ctx, err)
		}
	} else {
		OnDroppedNotification(ctx, NewNotificationError[T](err))
	}

	s.mu.Unlock()
	s.unsubscribe()
}

func (s *subscriberImpl[T]) Complete() { s.CompleteWithContext(context.Background()) }

func (s *subscriberImpl[T]) CompleteWithContext(ctx context.Context) {
	s.mu.Lock()

	if atomic.CompareAndSwapInt32(&s.status, 0, 2) {
		if s.destination != nil {
			s.destination.CompleteWithContext(ctx)
		}
	} else {
		OnDroppedNotification(ctx, NewNotificationComplete[T]())
	}

	s.mu.Unlock()
	s.unsubscribe()
}

func (s *subscriberImpl[T]) IsClosed() bool    { return atomic.LoadInt32(&s.status) != 0 }
func (s *subscriberImpl[T]) HasThrown() bool   { return atomic.LoadInt32(&s.status) == 1 }
func (s *subscriberImpl[T]) IsCompleted() bool { return atomic.LoadInt32(&s.status) == 2 }

func (s *subscriberImpl[T]) Unsubscribe() {
	if atomic.CompareAndSwapInt32(&s.status, 0, 2) {
		s.unsubscribe()
	}
}

func (s *subscriberImpl[T]) unsubscribe() {
	s.Subscription.Unsubscribe()
}
