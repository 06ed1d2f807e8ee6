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
)

// Kind identifies which of the three notification shapes a Notification carries.
type Kind uint8

// Kind constants.
const (
	KindNext Kind = iota
	KindError
	KindComplete
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindNext:
		return "Next"
	case KindError:
		return "Error"
	case KindComplete:
		return "Complete"
	}

	panic("rx: unknown Kind")
}

// Notification represents a single emission from an Observable: a Next
// value, an Error, or a Complete signal, but never more than one at once.
// Used by Materialize/Dematerialize and by the dropped-notification hook.
type Notification[T any] struct {
	Kind  Kind
	Value T
	Err   error
}

func (n Notification[T]) String() string {
	switch n.Kind {
	case KindNext:
		return fmt.Sprintf("Next(%+v)", n.Value)
	case KindError:
		if n.Err == nil {
			return "Error(nil)"
		}

		return fmt.Sprintf("Error(%s)", n.Err.Error())
	case KindComplete:
		return "Complete()"
	}

	panic("rx: unknown Kind")
}

// NewNotificationNext creates a Notification carrying a Next value.
func NewNotificationNext[T any](value T) Notification[T] {
	return Notification[T]{Kind: KindNext, Value: value}
}

// NewNotificationError creates a Notification carrying an Error.
func NewNotificationError[T any](err error) Notification[T] {
	return Notification[T]{Kind: KindError, Err: err}
}

// NewNotificationComplete creates a Notification carrying a Complete signal.
func NewNotificationComplete[T any]() Notification[T] {
	return Notification[T]{Kind: KindComplete}
}

func processNotificationWithContext[T any](ctx context.Context, n Notification[T], onNext func(context.Context, T), onError func(context.Context, error), onComplete func(context.Context)) bool {
	switch n.Kind {
	case KindNext:
		onNext(ctx, n.Value)
		return true
	case KindError:
		onError(ctx, n.Err)
		return false
	case KindComplete:
		onComplete(ctx)
		return false
	}

	panic("rx: unknown Kind")
}

func processNotificationWithObserverAndContext[T any](ctx context.Context, n Notification[T], destination Observer[T]) bool {
	return processNotificationWithContext(
		ctx,
		n,
		destination.NextWithContext,
		destination.ErrorWithContext,
		destination.CompleteWithContext,
	)
}
