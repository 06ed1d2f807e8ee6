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
	"errors"
	"sync"

	"github.com/samber/lo"
)

// Teardown cleans up resources held by a subscription. It runs exactly
// once, when the Subscription it was added to is unsubscribed.
type Teardown func()

// Unsubscribable is anything that can be unsubscribed from.
type Unsubscribable interface {
	Unsubscribe()
}

// Subscription represents an ongoing execution of an Observable. Closing
// a composite subscription closes every child registered via Add.
type Subscription interface {
	Unsubscribable

	Add(teardown Teardown)
	AddUnsubscribable(unsubscribable Unsubscribable)
	IsClosed() bool
	// Wait blocks until the subscription is closed. Rarely needed outside
	// of tests and Collect.
	Wait()
}

var _ Subscription = (*subscriptionImpl)(nil)

// NewSubscription creates a Subscription. If teardown is nil, nothing is
// added; otherwise teardown runs when the Subscription is unsubscribed.
func NewSubscription(teardown Teardown) Subscription {
	finalizers := make([]func(), 0, 4)
	if teardown != nil {
		finalizers = append(finalizers, teardown)
	}

	return &subscriptionImpl{finalizers: finalizers}
}

type subscriptionImpl struct {
	mu         sync.Mutex
	done       bool
	finalizers []func()
}

// Add registers a finalizer to run on unsubscription. Thread-safe.
func (s *subscriptionImpl) Add(teardown Teardown) {
	if teardown == nil {
		return
	}

	s.mu.Lock()

	if s.done {
		s.mu.Unlock()
		teardown()

		return
	}

	s.finalizers = append(s.finalizers, teardown)
	s.mu.Unlock()
}

// AddUnsubscribable merges another subscription's lifetime into this one.
func (s *subscriptionImpl) AddUnsubscribable(unsubscribable Unsubscribable) {
	if unsubscribable == nil {
		return
	}

	s.Add(unsubscribable.Unsubscribe)
}

// Unsubscribe disposes the subscription, running every registered
// finalizer exactly once, in registration order. Idempotent.
func (s *subscriptionImpl) Unsubscribe() {
	s.mu.Lock()

	if s.done {
		s.mu.Unlock()
		return
	}

	s.done = true
	finalizers := s.finalizers
	s.finalizers = nil
	s.mu.Unlock()

	var errs []error

	for _, finalizer := range finalizers {
		if err := execFinalizer(finalizer); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		panic(errors.Join(errs...))
	}
}

// IsClosed reports whether the subscription has been disposed.
func (s *subscriptionImpl) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}

// Wait blocks until the subscription is disposed.
func (s *subscriptionImpl) Wait() {
	ch := make(chan struct{}, 1)

	s.Add(func() {
		ch <- struct{}{}
	})

	<-ch
}

func execFinalizer(finalizer func()) (err error) {
	lo.TryCatchWithErrorValue(
		func() error {
			finalizer()
			return nil
		},
		func(e any) {
			err = newUnsubscriptionError(recoverValueToError(e))
		},
	)

	return err
}
