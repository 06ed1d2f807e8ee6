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

// Subject is both an Observer and an Observable: it can be fed values
// directly, and it multicasts whatever it receives to every currently
// subscribed Observer.
type Subject[T any] interface {
	Observable[T]
	Observer[T]

	HasObserver() bool
	CountObservers() int

	AsObservable() Observable[T]
	AsObserver() Observer[T]
}

// NewSubject is an alias for NewPublishSubject.
func NewSubject[T any]() Subject[T] {
	return NewPublishSubject[T]()
}

// broadcaster holds the observer registry shared by every Subject
// flavor: a fanout set keyed by insertion index, cheap to range over
// and cheap to remove from under concurrent unsubscription.
type broadcaster[T any] struct {
	observers     map[uint32]Observer[T]
	observerIndex uint32
}

func newBroadcaster[T any]() broadcaster[T] {
	return broadcaster[T]{observers: make(map[uint32]Observer[T])}
}

func (b *broadcaster[T]) register(observer Observer[T]) uint32 {
	index := b.observerIndex
	b.observerIndex++
	b.observers[index] = observer
	return index
}

func (b *broadcaster[T]) unregister(index uint32) {
	delete(b.observers, index)
}

func (b *broadcaster[T]) unregisterAll() {
	for index := range b.observers {
		delete(b.observers, index)
	}
}

func (b *broadcaster[T]) hasObserver() bool { return len(b.observers) > 0 }
func (b *broadcaster[T]) count() int        { return len(b.observers) }

func (b *broadcaster[T]) broadcastNext(ctx context.Context, value T) {
	for _, observer := range b.observers {
		observer.NextWithContext(ctx, value)
	}
}

func (b *broadcaster[T]) broadcastError(ctx context.Context, err error) {
	for _, observer := range b.observers {
		observer.ErrorWithContext(ctx, err)
	}
}

func (b *broadcaster[T]) broadcastComplete(ctx context.Context) {
	for _, observer := range b.observers {
		observer.CompleteWithContext(ctx)
	}
}
