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

// Package rxzerolog logs every notification flowing through an Observable
// using a zerolog.Logger, without altering the stream.
package rxzerolog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nimbus-rx/rx"
)

// Log logs every Next, Error, and Complete notification at level, using a
// one-line message.
func Log[T any](logger *zerolog.Logger, level zerolog.Level) func(rx.Observable[T]) rx.Observable[T] {
	return rx.TapWithContext(
		func(_ context.Context, value T) {
			logger.WithLevel(level).Msgf("rx.Next: %v", value)
		},
		func(_ context.Context, err error) {
			logger.WithLevel(level).Msgf("rx.Error: %s", err.Error())
		},
		func(context.Context) {
			logger.WithLevel(level).Msgf("rx.Complete")
		},
	)
}

// LogWithNotification logs every notification at level with structured
// fields instead of a formatted message.
func LogWithNotification[T any](logger *zerolog.Logger, level zerolog.Level) func(rx.Observable[T]) rx.Observable[T] {
	return rx.TapWithContext(
		func(_ context.Context, value T) {
			logger.WithLevel(level).Any("value", value).Msgf("rx.Next")
		},
		func(_ context.Context, err error) {
			logger.WithLevel(level).Err(err).Msgf("rx.Error")
		},
		func(context.Context) {
			logger.WithLevel(level).Msgf("rx.Complete")
		},
	)
}

// FatalOnError logs an Error notification at fatal level, which terminates
// the process per zerolog's Fatal semantics.
func FatalOnError[T any](logger *zerolog.Logger) func(rx.Observable[T]) rx.Observable[T] {
	return rx.TapOnErrorWithContext[T](
		func(_ context.Context, err error) {
			logger.Fatal().Err(err).Msgf("rx.Error")
		},
	)
}
