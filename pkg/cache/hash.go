package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/boxgrid/pkg/grid"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// RenderKeyOpts holds everything besides the input that changes a
// rendered diagram.
type RenderKeyOpts struct {
	Grid    grid.Options
	Style   string
	Preset  string
	Format  string // text or json
	Version string // binary version, so upgrades invalidate old entries
}

// RenderKey returns the cache key for rendering input with opts.
func RenderKey(input []byte, opts RenderKeyOpts) string {
	return hashKey("render", Hash(input), opts)
}
