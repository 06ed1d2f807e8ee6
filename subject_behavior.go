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
)

var _ BehaviorSubject[int] = (*behaviorSubjectImpl[int])(nil)

// BehaviorSubject is a Subject that also exposes the value it holds.
type BehaviorSubject[T any] interface {
	Subject[T]
	Value() T
}

// NewBehaviorSubject emits its current value to every new subscriber
// before any further Next arrives, then behaves like a PublishSubject.
// A completed BehaviorSubject does not replay the last value to new
// subscribers, only the terminal notification.
func NewBehaviorSubject[T any](initial T) BehaviorSubject[T] {
	return &behaviorSubjectImpl[T]{
		status:      KindNext,
		broadcaster: newBroadcaster[T](),
		lastCtx:     context.Background(),
		last:        initial,
	}
}

type behaviorSubjectImpl[T any] struct {
	mu     sync.Mutex
	status Kind

	broadcaster[T]

	lastCtx context.Context
	last    T

	errCtx context.Context
	err    error
}

func (s *behaviorSubjectImpl[T]) Subscribe(destination Observer[T]) Subscription {
	return s.SubscribeWithContext(context.Background(), destination)
}

func (s *behaviorSubjectImpl[T]) SubscribeWithContext(subscriberCtx context.Context, destination Observer[T]) Subscription {
	subscription := NewSubscriber(destination)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.status {
	case KindError:
		subscription.ErrorWithContext(s.errCtx, s.err)
		return subscription
	case KindComplete:
		subscription.CompleteWithContext(subscriberCtx)
		return subscription
	}

	subscription.NextWithContext(s.lastCtx, s.last)

	index := s.register(subscription)
	subscription.Add(func() {
		s.mu.Lock()
		s.unregister(index)
		s.mu.Unlock()
	})

	return subscription
}

func (s *behaviorSubjectImpl[T]) Next(value T) { s.NextWithContext(context.Background(), value) }

func (s *behaviorSubjectImpl[T]) NextWithContext(ctx context.Context, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == KindNext {
		s.lastCtx, s.last = ctx, value
		s.broadcastNext(ctx, value)
	} else {
		OnDroppedNotification(ctx, NewNotificationNext(value))
	}
}

func (s *behaviorSubjectImpl[T]) Error(err error) { s.ErrorWithContext(context.Background(), err) }

func (s *behaviorSubjectImpl[T]) ErrorWithContext(ctx context.Context, err error) {
	s.mu.Lock()

	if s.status == KindNext {
		s.errCtx, s.err = ctx, err
		s.status = KindError
		s.broadcastError(ctx, err)
		s.unregisterAll()
	} else {
		OnDroppedNotification(ctx, NewNotificationError[T](err))
	}

	s.mu.Unlock()
}

func (s *behaviorSubjectImpl[T]) Complete() { s.CompleteWithContext(context.Background()) }

func (s *behaviorSubjectImpl[T]) CompleteWithContext(ctx context.Context) {
	s.mu.Lock()

	if s.status == KindNext {
		s.status = KindComplete
		s.broadcastComplete(ctx)
		s.unregisterAll()
	} else {
		OnDroppedNotification(ctx, NewNotificationComplete[T]())
	}

	s.mu.Unlock()
}

// Value returns the currently held value, whether or not anyone has
// subscribed.
func (s *behaviorSubjectImpl[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *behaviorSubjectImpl[T]) HasObserver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasObserver()
}

func (s *behaviorSubjectImpl[T]) CountObservers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count()
}

func (s *behaviorSubjectImpl[T]) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status != KindNext
}

func (s *behaviorSubjectImpl[T]) HasThrown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == KindError
}

func (s *behaviorSubjectImpl[T]) IsCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == KindComplete
}

func (s *behaviorSubjectImpl[T]) AsObservable() Observable[T] { return s }
func (s *behaviorSubjectImpl[T]) AsObserver() Observer[T]     { return s }
