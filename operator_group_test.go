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
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGroupBy_splitsByKey(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	groups := map[string][]int{}

	groupObs, err := Collect(GroupBy(func(v int) string {
		if v%2 == 0 {
			return "even"
		}
		return "odd"
	})(Of(1, 2, 3, 4, 5, 6)))

	is.NoError(err)
	is.Len(groupObs, 2)

	for _, g := range groupObs {
		values, err := Collect(g)
		is.NoError(err)

		if len(values) > 0 && values[0]%2 == 0 {
			groups["even"] = values
		} else {
			groups["odd"] = values
		}
	}

	sort.Ints(groups["even"])
	sort.Ints(groups["odd"])

	is.Equal([]int{2, 4, 6}, groups["even"])
	is.Equal([]int{1, 3, 5}, groups["odd"])
}

func TestGroupBy_panicsOnNilKeySelector(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	is.PanicsWithError(ErrGroupByNoKeySelector.Error(), func() {
		GroupBy[int, string](nil)
	})
}
