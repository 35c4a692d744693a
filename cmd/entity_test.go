package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailedSummary(t *testing.T) {
	assert.Equal(t, "1 file could not be loaded (see the warnings above)", failedSummary(1))
	assert.Equal(t, "3 files could not be loaded (see the warnings above)", failedSummary(3))
	assert.NotContains(t, failedSummary(2), "--log-level")
}
