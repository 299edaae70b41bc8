package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderersPassThroughWithoutTerminal(t *testing.T) {
	// Test binaries never run attached to a terminal, so styling is off
	// and the helpers return their input unchanged.
	assert.Equal(t, "done", Success("done"))
	assert.Equal(t, "bad", Error("bad"))
	assert.Equal(t, "/tmp/x", Path("/tmp/x"))
}
