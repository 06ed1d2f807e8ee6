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

import "time"

// Scheduler abstracts "run this later" so that timing operators
// (Delay, Debounce, ThrottleTime, SampleTime, Interval...) don't have to
// choose between real wall-clock goroutines and a deterministic clock a
// test can drive by hand. Each of them takes its Scheduler as an explicit
// argument; none falls back to DefaultScheduler.
type Scheduler interface {
	// Now returns the scheduler's current time. On RealTimeScheduler this
	// is time.Now(); on ManualScheduler it is whatever the clock was last
	// advanced to.
	Now() time.Time

	// Schedule runs task once after d elapses on this scheduler's clock.
	// The returned Subscription cancels the pending task if it hasn't run
	// yet; unsubscribing after the task ran is a no-op.
	Schedule(d time.Duration, task func()) Subscription

	// ScheduleRepeating runs task once every d, starting after the first
	// d elapses. The returned Subscription stops further runs.
	ScheduleRepeating(d time.Duration, task func()) Subscription
}

// DefaultScheduler is a ready-made RealTimeScheduler that callers can pass
// to the timing operators. No operator reads it implicitly; tests that
// need determinism construct their own ManualScheduler and pass it
// instead.
var DefaultScheduler Scheduler = NewRealTimeScheduler()
