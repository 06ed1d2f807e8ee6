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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToSlice_collectsAllValues(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(1, 2, 3), ToSlice[int]()))

	is.NoError(err)
	is.Equal([][]int{{1, 2, 3}}, values)
}

func TestToSlice_emptySourceYieldsEmptySlice(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Empty[int](), ToSlice[int]()))

	is.NoError(err)
	is.Equal([][]int{{}}, values)
}

func TestToMap_collectsKeyedByProject(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(1, 2, 3), ToMap(func(v int) (int, int) { return v, v * v })))

	is.NoError(err)
	is.Equal([]map[int]int{{1: 1, 2: 4, 3: 9}}, values)
}

func TestToMap_laterValuesOverwriteEarlierUnderCollidingKey(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Pipe1(Of(1, 11, 2), ToMap(func(v int) (int, int) { return v % 10, v })))

	is.NoError(err)
	is.Equal([]map[int]int{{1: 11, 2: 2}}, values)
}
