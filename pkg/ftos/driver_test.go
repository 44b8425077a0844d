package ftos

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nserrors "github.com/netsnap/netsnap/pkg/errors"
	"github.com/netsnap/netsnap/pkg/transport"
)

func testDriver(outputs map[string]string) (*Driver, *transport.Script) {
	script := transport.NewScript(outputs)
	return New(script), script
}

func TestIsAlive(t *testing.T) {
	d, script := testDriver(nil)
	assert.True(t, d.IsAlive(context.Background()))
	script.SetAlive(false)
	assert.False(t, d.IsAlive(context.Background()))
}

func TestGetterAbortsOnTransportError(t *testing.T) {
	d, script := testDriver(nil)
	script.Err = fmt.Errorf("connection reset")

	_, err := d.Facts(context.Background())
	require.Error(t, err)
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeTransport))

	_, err = d.ARPTable(context.Background())
	require.Error(t, err)

	_, err = d.Ping(context.Background(), "10.1.1.1", DefaultPingOptions())
	require.Error(t, err)
}
