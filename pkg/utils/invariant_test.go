package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRaiseInvariant(t *testing.T) {
	if IsTestMode {
		assert.PanicsWithValue(t, "invariant violated: test", func() {
			RaiseInvariant("invariant", "test", "This is a test invariant violation")
		})
		return
	}
	before := GetMetricValue("invariant" /*module*/, "test" /*invariantType*/)
	RaiseInvariant("invariant", "test", "This is a test invariant violation", "attempt", 1)
	RaiseInvariant("invariant", "test", "This is a test invariant violation", "attempt", 2)
	assert.Equal(t, before+2, GetMetricValue("invariant", "test"))
	assert.Zero(t, GetMetricValue("invariant", "never_raised"))
}
