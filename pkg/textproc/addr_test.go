package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	nserrors "github.com/netsnap/netsnap/pkg/errors"
)

func TestParseIP(t *testing.T) {
	got, err := ParseIP("10.10.10.1")
	assert.NoError(t, err)
	assert.Equal(t, "10.10.10.1", got)

	got, err = ParseIP("FE80::1")
	assert.NoError(t, err)
	assert.Equal(t, "fe80::1", got)

	_, err = ParseIP("not-an-ip")
	assert.Error(t, err)
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeValidation))
}

func TestSplitPrefix(t *testing.T) {
	addr, n, ok := SplitPrefix("10.0.0.1/24")
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.1", addr)
	assert.Equal(t, 24, n)

	addr, _, ok = SplitPrefix("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, "10.0.0.1", addr)

	addr, n, ok = SplitPrefix("2001:db8::1/64")
	assert.True(t, ok)
	assert.Equal(t, "2001:db8::1", addr)
	assert.Equal(t, 64, n)
}

func TestParseMAC(t *testing.T) {
	got, err := ParseMAC("00:01:e8:8b:dc:2f")
	assert.NoError(t, err)
	assert.Equal(t, "00:01:E8:8B:DC:2F", got)

	// dotted notation normalizes to colon form
	got, err = ParseMAC("0001.e88b.dc2f")
	assert.NoError(t, err)
	assert.Equal(t, "00:01:E8:8B:DC:2F", got)

	_, err = ParseMAC("zz:zz:zz:zz:zz:zz")
	assert.Error(t, err)
	assert.True(t, nserrors.IsCode(err, nserrors.ErrCodeValidation))
}

func TestMACOrEmpty(t *testing.T) {
	assert.Equal(t, "", MACOrEmpty(""))
	assert.Equal(t, "  ", MACOrEmpty("  "))
	assert.Equal(t, "00:01:E8:8B:DC:2F", MACOrEmpty("00:01:e8:8b:dc:2f"))
	assert.Equal(t, "garbage", MACOrEmpty("garbage"))
}

func TestIPOrEmpty(t *testing.T) {
	assert.Equal(t, "", IPOrEmpty(""))
	assert.Equal(t, "10.0.0.1", IPOrEmpty("10.0.0.1"))
	assert.Equal(t, "garbage", IPOrEmpty("garbage"))
}
