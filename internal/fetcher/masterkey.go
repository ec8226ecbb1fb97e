package fetcher

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
)

// EnvMasterKey supplies a stable master key across regenerations.
const EnvMasterKey = "LITELLM_MASTER_KEY"

const keyPrefix = "sk-"

// GetOrCreateMasterKey returns the master key from the environment when
// set, otherwise a freshly generated ephemeral key. Generated keys differ
// on every call; restarting without the env var invalidates previously
// distributed keys.
func GetOrCreateMasterKey() (string, error) {
	if key := os.Getenv(EnvMasterKey); key != "" {
		return key, nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate master key: %w", err)
	}
	return keyPrefix + hex.EncodeToString(buf), nil
}
