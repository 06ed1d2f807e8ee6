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

var _ Scheduler = (*RealTimeScheduler)(nil)

// RealTimeScheduler schedules work against the wall clock using
// time.Timer and time.Ticker, each backed by its own goroutine.
type RealTimeScheduler struct{}

// NewRealTimeScheduler creates a RealTimeScheduler.
func NewRealTimeScheduler() *RealTimeScheduler {
	return &RealTimeScheduler{}
}

func (s *RealTimeScheduler) Now() time.Time { return time.Now() }

func (s *RealTimeScheduler) Schedule(d time.Duration, task func()) Subscription {
	timer := time.NewTimer(d)
	done := make(chan struct{})

	go func() {
		select {
		case <-timer.C:
			task()
		case <-done:
			timer.Stop()
		}
	}()

	return NewSubscription(func() {
		close(done)
	})
}

func (s *RealTimeScheduler) ScheduleRepeating(d time.Duration, task func()) Subscription {
	ticker := time.NewTicker(d)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				task()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return NewSubscription(func() {
		close(done)
	})
}
