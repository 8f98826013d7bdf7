package syntax

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Domain prefixes for content-addressed identity. The version suffix
// enables future algorithm migration.
const domainFormula = "sequent/formula/v1"

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null byte prevents
// domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// memo caches a node's fingerprint for the instance's lifetime. The
// fingerprint is computed at most once no matter how often it is asked
// for, and it never appears in any serialized form of the node: a
// snapshot restored elsewhere recomputes it on first use.
type memo struct {
	once sync.Once
	fp   string
}

// fingerprint returns the memoized domain-separated hash of key.
func (m *memo) fingerprint(domain, key string) string {
	m.once.Do(func() {
		m.fp = hashWithDomain(domain, []byte(key))
	})
	return m.fp
}

// computed reports whether the fingerprint has been materialized yet.
// Test hook for the memoization contract.
func (m *memo) computed() bool {
	return m.fp != ""
}
