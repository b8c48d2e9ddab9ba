package countcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIsOrderIndependent(t *testing.T) {
	a := Key("data", "2021_3_5_other", map[string]string{"areaType": "nation", "areaName": "england"})
	b := Key("data", "2021_3_5_other", map[string]string{"areaName": "england", "areaType": "nation"})
	assert.Equal(t, a, b)
}

func TestKeyDiffersOnPartition(t *testing.T) {
	a := Key("data", "2021_3_5_other", map[string]string{"areaType": "nation"})
	b := Key("data", "2021_3_6_other", map[string]string{"areaType": "nation"})
	assert.NotEqual(t, a, b)
}

func TestPutAndGet(t *testing.T) {
	c, err := New(16)
	require.NoError(t, err)

	key := Key("count", "2021_3_5_other", map[string]string{"areaType": "nation"})
	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Put(key, 42)
	v, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, int64(42), v)
	assert.Equal(t, 1, c.Len())
}

func TestNewDefaultsSizeWhenNonPositive(t *testing.T) {
	c, err := New(0)
	require.NoError(t, err)
	require.NotNil(t, c)
}
