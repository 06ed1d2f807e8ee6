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

var _ Subject[int] = (*publishSubjectImpl[int])(nil)

// NewPublishSubject broadcasts every value to whoever is subscribed at
// the moment it arrives (fanout). Values emitted before a subscription
// are never replayed to it.
func NewPublishSubject[T any]() Subject[T] {
	return &publishSubjectImpl[T]{
		status:      KindNext,
		broadcaster: newBroadcaster[T](),
	}
}

type publishSubjectImpl[T any] struct {
	mu     sync.Mutex
	status Kind

	broadcaster[T]

	errCtx context.Context
	err    error
}

func (s *publishSubjectImpl[T]) Subscribe(destination Observer[T]) Subscription {
	return s.SubscribeWithContext(context.Background(), destination)
}

func (s *publishSubjectImpl[T]) SubscribeWithContext(subscriberCtx context.Context, destination Observer[T]) Subscription {
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

	index := s.register(subscription)
	subscription.Add(func() {
		s.mu.Lock()
		s.unregister(index)
		s.mu.Unlock()
	})

	return subscription
}

func (s *publishSubjectImpl[T]) Next(value T) { s.NextWithContext(context.Background(), value) }

func (s *publishSubjectImpl[T]) NextWithContext(ctx context.Context, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == KindNext {
		s.broadcastNext(ctx, value)
	} else {
		OnDroppedNotification(ctx, NewNotificationNext(value))
	}
}

func (s *publishSubjectImpl[T]) Error(err error) { s.ErrorWithContext(context.Background(), err) }

func (s *publishSubjectImpl[T]) ErrorWithContext(ctx context.Context, err error) {
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

func (s *publishSubjectImpl[T]) Complete() { s.CompleteWithContext(context.Background()) }

func (s *publishSubjectImpl[T]) CompleteWithContext(ctx context.Context) {
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

func (s *publishSubjectImpl[T]) HasObserver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasObserver()
}

func (s *publishSubjectImpl[T]) CountObservers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count()
}

func (s *publishSubjectImpl[T]) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status != KindNext
}

func (s *publishSubjectImpl[T]) HasThrown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == KindError
}

func (s *publishSubjectImpl[T]) IsCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == KindComplete
}

func (s *publishSubjectImpl[T]) AsObservable() Observable[T] { return s }
func (s *publishSubjectImpl[T]) AsObserver() Observer[T]     { return s }
