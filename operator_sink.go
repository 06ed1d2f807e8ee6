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

// ToSlice collects every source value into a slice, emitted once the
// source completes. An empty source yields an empty, non-nil slice.
func ToSlice[T any]() func(Observable[T]) Observable[[]T] {
	return func(source Observable[T]) Observable[[]T] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[[]T]) Teardown {
			slice := []T{}

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(_ context.Context, value T) {
					slice = append(slice, value)
				},
				destination.ErrorWithContext,
				func(ctx context.Context) {
					destination.NextWithContext(ctx, slice)
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}

// ToMap collects every source value into a map keyed and valued by
// project, emitted once the source completes. Later values overwrite
// earlier ones under a colliding key. An empty source yields an empty,
// non-nil map.
func ToMap[T any, K comparable, V any](project func(item T) (K, V)) func(Observable[T]) Observable[map[K]V] {
	return func(source Observable[T]) Observable[map[K]V] {
		return NewUnsafeObservableWithContext(func(subscriberCtx context.Context, destination Observer[map[K]V]) Teardown {
			output := map[K]V{}

			sub := source.SubscribeWithContext(subscriberCtx, NewObserverWithContext(
				func(_ context.Context, value T) {
					k, v := project(value)
					output[k] = v
				},
				destination.ErrorWithContext,
				func(ctx context.Context) {
					destination.NextWithContext(ctx, output)
					destination.CompleteWithContext(ctx)
				},
			))

			return sub.Unsubscribe
		})
	}
}
