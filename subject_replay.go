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

// ReplaySubjectUnlimitedBufferSize keeps every value ever emitted.
const ReplaySubjectUnlimitedBufferSize = -1

var _ Subject[int] = (*replaySubjectImpl[int])(nil)

type replayedValue[T any] struct {
	ctx   context.Context
	value T
}

// NewReplaySubject replays up to bufferSize past values (or all of them,
// with ReplaySubjectUnlimitedBufferSize) to every new subscriber before
// resuming live broadcast. bufferSize must be positive, or
// ReplaySubjectUnlimitedBufferSize; anything else is a programmer error.
func NewReplaySubject[T any](bufferSize int) Subject[T] {
	if bufferSize != ReplaySubjectUnlimitedBufferSize && bufferSize <= 0 {
		panic(ErrReplaySubjectWrongBuffer)
	}

	return &replaySubjectImpl[T]{
		status:      KindNext,
		broadcaster: newBroadcaster[T](),
		bufferSize:  bufferSize,
	}
}

type replaySubjectImpl[T any] struct {
	mu     sync.Mutex
	status Kind

	broadcaster[T]

	values     []replayedValue[T]
	bufferSize int

	errCtx context.Context
	err    error
}

func (s *replaySubjectImpl[T]) Subscribe(destination Observer[T]) Subscription {
	return s.SubscribeWithContext(context.Background(), destination)
}

func (s *replaySubjectImpl[T]) SubscribeWithContext(subscriberCtx context.Context, destination Observer[T]) Subscription {
	subscription := NewSubscriber(destination)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.values {
		subscription.NextWithContext(v.ctx, v.value)
	}

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

func (s *replaySubjectImpl[T]) Next(value T) { s.NextWithContext(context.Background(), value) }

func (s *replaySubjectImpl[T]) NextWithContext(ctx context.Context, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != KindNext {
		OnDroppedNotification(ctx, NewNotificationNext(value))
		return
	}

	s.broadcastNext(ctx, value)

	s.values = append(s.values, replayedValue[T]{ctx: ctx, value: value})
	if s.bufferSize != ReplaySubjectUnlimitedBufferSize && len(s.values) > s.bufferSize {
		OnDroppedNotification(ctx, NewNotificationNext(s.values[0].value))
		s.values = s.values[len(s.values)-s.bufferSize:]
	}
}

func (s *replaySubjectImpl[T]) Error(err error) { s.ErrorWithContext(context.Background(), err) }

func (s *replaySubjectImpl[T]) ErrorWithContext(ctx context.Context, err error) {
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

func (s *replaySubjectImpl[T]) Complete() { s.CompleteWithContext(context.Background()) }

func (s *replaySubjectImpl[T]) CompleteWithContext(ctx context.Context) {
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

func (s *replaySubjectImpl[T]) HasObserver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasObserver()
}

func (s *replaySubjectImpl[T]) CountObservers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count()
}

func (s *replaySubjectImpl[T]) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status != KindNext
}

func (s *replaySubjectImpl[T]) HasThrown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == KindError
}

func (s *replaySubjectImpl[T]) IsCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == KindComplete
}

func (s *replaySubjectImpl[T]) AsObservable() Observable[T] { return s }
func (s *replaySubjectImpl[T]) AsObserver() Observer[T]     { return s }
