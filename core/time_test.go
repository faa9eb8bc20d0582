// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"
	"time"

	"github.com/devblok/hellotriangle/core"
	qt "github.com/frankban/quicktest"
)

func TestTimeUnthrottled(t *testing.T) {
	ts := core.NewTime(core.TimeConfiguration{})
	defer ts.Stop()
	for idx := 0; idx < 1000; idx++ {
		ts.Wait()
	}
}

func TestTimeThrottled(t *testing.T) {
	c := qt.New(t)
	ts := core.NewTime(core.TimeConfiguration{EventPollDelay: 5})
	defer ts.Stop()

	start := time.Now()
	ts.Wait()
	ts.Wait()
	c.Assert(time.Since(start) >= 5*time.Millisecond, qt.Equals, true)
}
