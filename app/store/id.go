package store

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator issues kind-prefixed identifiers such as
// "prod_9f86d081c0a14e5d". The prefix keeps ids legible in logs and URLs;
// the UUIDv4 body makes reuse within a process lifetime impossible in
// practice. No cross-process uniqueness is promised — the stores themselves
// are process-local.
type IDGenerator struct {
	prefix string
}

// NewIDGenerator creates a generator branding every id with prefix.
func NewIDGenerator(prefix string) *IDGenerator {
	return &IDGenerator{prefix: prefix}
}

// Next returns a fresh identifier.
func (g *IDGenerator) Next() string {
	return g.prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
