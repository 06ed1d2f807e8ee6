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

// ConnectableObservable multicasts a single underlying subscription to
// every Subscribe caller, instead of re-running the source for each one.
type ConnectableObservable[T any] interface {
	Observable[T]

	// Connect subscribes the underlying source through the connector
	// Subject. Calling Connect again after the previous connection closed
	// starts a fresh subscription; calling it while already connected
	// returns the existing one.
	Connect() Subscription
	ConnectWithContext(ctx context.Context) Subscription
}

var (
	_ ConnectableObservable[int] = (*connectableObservableImpl[int])(nil)
	_ Observable[int]            = (*connectableObservableImpl[int])(nil)
)

// ConnectableConfig configures a ConnectableObservable's multicast
// Subject and whether it resets across disconnects.
type ConnectableConfig[T any] struct {
	Connector         func() Subject[T]
	ResetOnDisconnect bool
}

func defaultConnector[T any]() Subject[T] {
	return NewPublishSubject[T]()
}

// NewConnectableObservable wraps subscribe into a ConnectableObservable
// backed by a fresh PublishSubject per connection.
func NewConnectableObservable[T any](subscribe func(destination Observer[T]) Teardown) ConnectableObservable[T] {
	return newConnectableObservableImpl(NewObservable(subscribe), ConnectableConfig[T]{
		Connector:         defaultConnector[T],
		ResetOnDisconnect: true,
	})
}

// NewConnectableObservableWithContext is NewConnectableObservable for a
// context-aware subscribe function.
func NewConnectableObservableWithContext[T any](subscribe func(ctx context.Context, destination Observer[T]) Teardown) ConnectableObservable[T] {
	return newConnectableObservableImpl(NewObservableWithContext(subscribe), ConnectableConfig[T]{
		Connector:         defaultConnector[T],
		ResetOnDisconnect: true,
	})
}

// NewConnectableObservableWithConfig is NewConnectableObservable with an
// explicit connector and reset behavior.
func NewConnectableObservableWithConfig[T any](subscribe func(destination Observer[T]) Teardown, config ConnectableConfig[T]) ConnectableObservable[T] {
	return newConnectableObservableImpl(NewObservable(subscribe), config)
}

// NewConnectableObservableWithConfigAndContext combines
// NewConnectableObservableWithConfig and the context-aware subscribe
// signature.
func NewConnectableObservableWithConfigAndContext[T any](subscribe func(ctx context.Context, destination Observer[T]) Teardown, config ConnectableConfig[T]) ConnectableObservable[T] {
	return newConnectableObservableImpl(NewObservableWithContext(subscribe), config)
}

// Connectable turns an existing Observable into a ConnectableObservable,
// using the default PublishSubject connector.
func Connectable[T any](source Observable[T]) ConnectableObservable[T] {
	return newConnectableObservableImpl(source, ConnectableConfig[T]{
		Connector:         defaultConnector[T],
		ResetOnDisconnect: true,
	})
}

// ConnectableWithConfig is Connectable with an explicit config.
func ConnectableWithConfig[T any](source Observable[T], config ConnectableConfig[T]) ConnectableObservable[T] {
	return newConnectableObservableImpl(source, config)
}

func newConnectableObservableImpl[T any](source Observable[T], config ConnectableConfig[T]) ConnectableObservable[T] {
	if config.Connector == nil {
		panic(ErrConnectableMissingFactory)
	}

	return &connectableObservableImpl[T]{
		config:  config,
		source:  source,
		subject: config.Connector(),
	}
}

type connectableObservableImpl[T any] struct {
	mu           sync.Mutex
	config       ConnectableConfig[T]
	source       Observable[T]
	subject      Subject[T]
	subscription Subscription
}

func (c *connectableObservableImpl[T]) Connect() Subscription {
	return c.ConnectWithContext(context.Background())
}

func (c *connectableObservableImpl[T]) ConnectWithContext(ctx context.Context) Subscription {
	c.mu.Lock()
	if c.subscription == nil || c.subscription.IsClosed() {
		c.subscription = c.source.SubscribeWithContext(ctx, c.subject)
		c.mu.Unlock()
		c.subscription.Add(func() {
			if c.config.ResetOnDisconnect {
				c.subject = c.config.Connector()
			}
		})
	} else {
		c.mu.Unlock()
	}

	return c.subscription
}

func (c *connectableObservableImpl[T]) Subscribe(destination Observer[T]) Subscription {
	return c.SubscribeWithContext(context.Background(), destination)
}

func (c *connectableObservableImpl[T]) SubscribeWithContext(ctx context.Context, destination Observer[T]) Subscription {
	return c.subject.SubscribeWithContext(ctx, destination)
}

// RefCount returns an Observable that connects the ConnectableObservable
// when the first Observer subscribes, and disconnects it when the last
// one unsubscribes.
func RefCount[T any](source ConnectableObservable[T]) Observable[T] {
	var mu sync.Mutex
	count := 0
	var connection Subscription

	return NewObservableWithContext(func(ctx context.Context, destination Observer[T]) Teardown {
		subscription := source.SubscribeWithContext(ctx, destination)

		mu.Lock()
		count++
		if count == 1 {
			connection = source.ConnectWithContext(ctx)
		}
		mu.Unlock()

		return func() {
			subscription.Unsubscribe()

			mu.Lock()
			count--
			if count == 0 && connection != nil {
				connection.Unsubscribe()
				connection = nil
			}
			mu.Unlock()
		}
	})
}
