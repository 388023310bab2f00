package netsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycle(t *testing.T) {
	assert.False(t, Ready())

	assert.NoError(t, Startup())
	assert.True(t, Ready())

	// Repeated startup keeps the subsystem ready.
	assert.NoError(t, Startup())
	assert.True(t, Ready())

	assert.NoError(t, Shutdown())
	assert.False(t, Ready())
}
