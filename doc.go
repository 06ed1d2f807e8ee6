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

// Package rx is a reactive push-based dataflow toolkit: observables,
// observers, subscriptions and a fixed algebra of operators, with
// optional time-based scheduling.
package rx

import (
	"context"
	"fmt"
	"log"
)

var (
	// By default, the library ignores unhandled errors and dropped
	// notifications. Override these to plug in your own error handling.
	//
	// Example:
	//
	//	rx.OnUnhandledError = func(ctx context.Context, err error) {
	//		slog.Error(fmt.Sprintf("unhandled error: %s", err.Error()))
	//	}

	// OnUnhandledError is called when an error is emitted by an Observable
	// and no error handler is registered.
	OnUnhandledError = IgnoreOnUnhandledError
	// OnDroppedNotification is called when a notification is emitted by an
	// Observable and no observer is left to receive it.
	OnDroppedNotification = IgnoreOnDroppedNotification
)

// IgnoreOnUnhandledError is the default implementation of OnUnhandledError.
func IgnoreOnUnhandledError(ctx context.Context, err error) {}

// IgnoreOnDroppedNotification is the default implementation of OnDroppedNotification.
func IgnoreOnDroppedNotification(ctx context.Context, notification fmt.Stringer) {}

// DefaultOnUnhandledError logs unhandled errors with the standard logger.
func DefaultOnUnhandledError(ctx context.Context, err error) {
	if err != nil {
		log.Printf("rx: unhandled error: %s", err.Error())
	}
}

var _ fmt.Stringer = (*Notification[int])(nil)

// DefaultOnDroppedNotification logs dropped notifications with the standard logger.
//
// Since we cannot assign a generic callback to OnDroppedNotification, this
// takes a fmt.Stringer rather than a Notification[T].
func DefaultOnDroppedNotification(ctx context.Context, notification fmt.Stringer) {
	log.Printf("rx: dropped notification: %s", notification.String())
}
