package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeoutRelationships(t *testing.T) {
	// a single command must be able to finish within a dialed session's
	// snapshot budget
	assert.Less(t, CommandTimeout, SnapshotTimeout)
	assert.Less(t, SSHDialTimeout, SnapshotTimeout)

	// the write timeout has to cover a device-backed snapshot request
	assert.Greater(t, ServerWriteTimeout, ServerReadTimeout)

	assert.Positive(t, SnapshotConcurrency)
	assert.Positive(t, CommandInterval)
}
