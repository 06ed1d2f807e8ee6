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
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
)

func recoverValueToError(e any) error {
	if err, ok := e.(error); ok {
		return err
	}

	return fmt.Errorf("unexpected panic: %v", e)
}

func recoverUnhandledError(ctx context.Context, cb func()) {
	lo.TryCatchWithErrorValue(
		func() error {
			cb()
			return nil
		},
		func(e any) {
			OnUnhandledError(ctx, recoverValueToError(e))
		},
	)
}

var (
	ErrTakeWrongCount            = errors.New("rx.Take: count must be greater than or equal to 0")
	ErrTakeLastWrongCount        = errors.New("rx.TakeLast: count must be greater than 0")
	ErrSkipWrongCount            = errors.New("rx.Skip: count must be greater than or equal to 0")
	ErrSkipLastWrongCount        = errors.New("rx.SkipLast: count must be greater than 0")
	ErrRepeatWrongCount          = errors.New("rx.Repeat: count must be greater than or equal to 0")
	ErrReplaySubjectWrongBuffer  = errors.New("rx.ReplaySubject: bufferSize must be > 0 or ReplaySubjectUnlimitedBufferSize")
	ErrMergeAllWrongConcurrency  = errors.New("rx.MergeAll: concurrent must be greater than or equal to 0")
	ErrConnectableMissingFactory = errors.New("rx.ConnectableObservable: missing connector factory")
	ErrGroupByNoKeySelector      = errors.New("rx.GroupBy: keySelector must not be nil")
	ErrFirstEmpty                = errors.New("rx.First: source completed without emitting")
	ErrLastEmpty                 = errors.New("rx.Last: source completed without emitting")
	ErrObserveOnWrongBufferSize  = errors.New("rx.ObserveOn: bufferSize must be greater than 0")
)

func newUnsubscriptionError(err error) error { return &unsubscriptionError{err: err} }

type unsubscriptionError struct{ err error }

func (e *unsubscriptionError) Error() string { return "rx.Subscription: " + e.err.Error() }
func (e *unsubscriptionError) Unwrap() error { return e.err }

func newObservableError(err error) error { return &observableError{err: err} }

type observableError struct{ err error }

func (e *observableError) Error() string { return "rx.Observable: " + e.err.Error() }
func (e *observableError) Unwrap() error { return e.err }

func newObserverError(err error) error { return &observerError{err: err} }

type observerError struct{ err error }

func (e *observerError) Error() string {
	if e.err == nil {
		return "rx.Observer: <nil>"
	}

	return "rx.Observer: " + e.err.Error()
}
func (e *observerError) Unwrap() error { return e.err }

func newTimeoutError(d time.Duration) error { return &timeoutError{duration: d} }

type timeoutError struct{ duration time.Duration }

func (e *timeoutError) Error() string { return "rx.Timeout: no emission within " + e.duration.String() }

func newPipeError(format string, args ...any) error { return &pipeError{msg: fmt.Sprintf(format, args...)} }

type pipeError struct{ msg string }

func (e *pipeError) Error() string { return "rx.Pipe: " + e.msg }
