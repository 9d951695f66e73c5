package storage

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// FileStore keeps the posted ledger in two flat text logs, one URL or one
// fingerprint per line. Both files are append-only; a missing file is an
// empty ledger.
type FileStore struct {
	linksPath  string
	hashesPath string

	mu           sync.Mutex
	urls         map[string]struct{}
	fingerprints map[string]struct{}
}

// OpenFileStore loads both logs into memory. Missing files are fine;
// unreadable ones are not.
func OpenFileStore(linksPath, hashesPath string) (*FileStore, error) {
	fs := &FileStore{
		linksPath:    linksPath,
		hashesPath:   hashesPath,
		urls:         make(map[string]struct{}),
		fingerprints: make(map[string]struct{}),
	}

	if err := loadLines(linksPath, fs.urls); err != nil {
		return nil, fmt.Errorf("load posted links: %w", err)
	}
	if err := loadLines(hashesPath, fs.fingerprints); err != nil {
		return nil, fmt.Errorf("load content hashes: %w", err)
	}

	return fs, nil
}

func loadLines(path string, into map[string]struct{}) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			into[line] = struct{}{}
		}
	}
	return nil
}

func (fs *FileStore) HasURL(url string) (bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	_, ok := fs.urls[strings.TrimSpace(url)]
	return ok, nil
}

func (fs *FileStore) HasFingerprint(fingerprint string) (bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	_, ok := fs.fingerprints[fingerprint]
	return ok, nil
}

// Record appends the URL and the title fingerprint to their logs. Call
// only after the article was actually published.
func (fs *FileStore) Record(url, title string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	url = strings.TrimSpace(url)
	fingerprint := Fingerprint(title)

	if err := appendLine(fs.linksPath, url); err != nil {
		return fmt.Errorf("record posted link: %w", err)
	}
	if err := appendLine(fs.hashesPath, fingerprint); err != nil {
		return fmt.Errorf("record content hash: %w", err)
	}

	fs.urls[url] = struct{}{}
	fs.fingerprints[fingerprint] = struct{}{}
	return nil
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return err
	}
	return nil
}

func (fs *FileStore) Close() error {
	return nil
}
