package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvBool(t *testing.T) {
	t.Setenv("SWAGCONVERT_TEST_BOOL", "")
	assert.True(t, envBool("SWAGCONVERT_TEST_BOOL", true))

	t.Setenv("SWAGCONVERT_TEST_BOOL", "true")
	assert.True(t, envBool("SWAGCONVERT_TEST_BOOL", false))

	t.Setenv("SWAGCONVERT_TEST_BOOL", "false")
	assert.False(t, envBool("SWAGCONVERT_TEST_BOOL", true))

	t.Setenv("SWAGCONVERT_TEST_BOOL", "banana")
	assert.True(t, envBool("SWAGCONVERT_TEST_BOOL", true), "invalid value falls back to default")
}

func TestEnvInt64(t *testing.T) {
	t.Setenv("SWAGCONVERT_TEST_INT", "")
	assert.Equal(t, int64(42), envInt64("SWAGCONVERT_TEST_INT", 42))

	t.Setenv("SWAGCONVERT_TEST_INT", "1048576")
	assert.Equal(t, int64(1048576), envInt64("SWAGCONVERT_TEST_INT", 42))

	t.Setenv("SWAGCONVERT_TEST_INT", "-5")
	assert.Equal(t, int64(42), envInt64("SWAGCONVERT_TEST_INT", 42), "non-positive value falls back to default")

	t.Setenv("SWAGCONVERT_TEST_INT", "nope")
	assert.Equal(t, int64(42), envInt64("SWAGCONVERT_TEST_INT", 42))
}

func TestLoadConfigDefaults(t *testing.T) {
	c := loadConfig()
	assert.False(t, c.ConvertStrict)
	assert.False(t, c.ConvertNoInfo)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
}
