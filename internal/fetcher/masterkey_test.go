package fetcher_test

import (
	"os"
	"strings"
	"testing"

	"github.com/mmdsnb/freerouter/internal/fetcher"
	"github.com/stretchr/testify/assert"
)

func TestMasterKey_EnvUsedVerbatim(t *testing.T) {
	t.Setenv(fetcher.EnvMasterKey, "sk-env-test-key-12345")

	key1, err := fetcher.GetOrCreateMasterKey()
	assert.NoError(t, err)
	key2, err := fetcher.GetOrCreateMasterKey()
	assert.NoError(t, err)

	assert.Equal(t, "sk-env-test-key-12345", key1)
	assert.Equal(t, key1, key2)
}

func TestMasterKey_GeneratedFormat(t *testing.T) {
	os.Unsetenv(fetcher.EnvMasterKey)

	key, err := fetcher.GetOrCreateMasterKey()
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "sk-"), "generated key should start with sk-")
	assert.Greater(t, len(key), 40, "generated key should be long enough")
}

func TestMasterKey_EphemeralKeysDiffer(t *testing.T) {
	os.Unsetenv(fetcher.EnvMasterKey)

	key1, err := fetcher.GetOrCreateMasterKey()
	assert.NoError(t, err)
	key2, err := fetcher.GetOrCreateMasterKey()
	assert.NoError(t, err)

	assert.NotEqual(t, key1, key2, "ephemeral keys should differ on each generation")
}
