// Package storage persists the ledger of everything the bot has already
// posted: exact URLs and content fingerprints of titles. Entries are
// append-only; once posted, always posted.
package storage

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Store answers membership queries against the posted ledger and records
// new entries after a successful publish. Implementations must surface
// I/O failures rather than report "not posted".
type Store interface {
	HasURL(url string) (bool, error)
	HasFingerprint(fingerprint string) (bool, error)
	Record(url, title string) error
	Close() error
}

// Fingerprint hashes a normalized title. Two articles with different URLs
// but the same normalized title count as the same content.
func Fingerprint(title string) string {
	normalized := strings.ToLower(strings.TrimSpace(title))
	sum := md5.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
