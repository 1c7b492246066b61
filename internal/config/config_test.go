package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAtoi(t *testing.T) {
	t.Setenv("TEST_LIMIT", "25")
	assert.Equal(t, 25, atoi("TEST_LIMIT", 5))

	t.Setenv("TEST_LIMIT", "lots")
	assert.Equal(t, 5, atoi("TEST_LIMIT", 5))

	t.Setenv("TEST_LIMIT", "-3")
	assert.Equal(t, 5, atoi("TEST_LIMIT", 5))

	assert.Equal(t, 7, atoi("TEST_LIMIT_UNSET", 7))
}

func TestDuration(t *testing.T) {
	t.Setenv("TEST_WINDOW", "30s")
	assert.Equal(t, 30*time.Second, duration("TEST_WINDOW", time.Minute))

	t.Setenv("TEST_WINDOW", "soon")
	assert.Equal(t, time.Minute, duration("TEST_WINDOW", time.Minute))
}

func TestGetenv(t *testing.T) {
	t.Setenv("TEST_NAME", "")
	assert.Equal(t, "fallback", getenv("TEST_NAME", "fallback"))

	t.Setenv("TEST_NAME", "set")
	assert.Equal(t, "set", getenv("TEST_NAME", "fallback"))
}
