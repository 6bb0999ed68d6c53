package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigReadsEnvironment(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "set-value")
	assert.Equal(t, "set-value", Config("CONFIG_TEST_KEY"))
}

func TestConfigDefault(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "set-value")
	assert.Equal(t, "set-value", ConfigDefault("CONFIG_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", ConfigDefault("CONFIG_TEST_MISSING", "fallback"))
}
