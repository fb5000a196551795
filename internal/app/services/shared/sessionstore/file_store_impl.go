package sessionstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type fileEntry struct {
	Value     string     `json:"value"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type fileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore keeps the slots in a single JSON document on local disk. The
// document is rewritten through a temporary file and renamed into place.
func NewFileStore(path string) contracts.KeyValueStore {
	return &fileStore{path: path}
}

func (f *fileStore) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return "", err
	}

	entry, ok := entries[key]
	if !ok {
		return "", nil
	}
	if entry.ExpiresAt != nil && time.Now().After(*entry.ExpiresAt) {
		return "", nil
	}
	return entry.Value, nil
}

func (f *fileStore) Set(ctx context.Context, key string, value string, exp time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}

	entry := fileEntry{Value: value}
	if exp > 0 {
		expiresAt := time.Now().Add(exp)
		entry.ExpiresAt = &expiresAt
	}
	entries[key] = entry

	return f.write(entries)
}

func (f *fileStore) Delete(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}
	for _, key := range keys {
		delete(entries, key)
	}
	return f.write(entries)
}

// read treats a corrupt document as empty so a damaged file never blocks
// signing in again.
func (f *fileStore) read() (map[string]fileEntry, error) {
	entries := make(map[string]fileEntry)

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, exceptions.ErrFileStoreRead(err)
	}
	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return make(map[string]fileEntry), nil
	}
	return entries, nil
}

func (f *fileStore) write(entries map[string]fileEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return exceptions.ErrFileStoreWrite(err)
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return exceptions.ErrFileStoreWrite(err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return exceptions.ErrFileStoreWrite(err)
	}
	return nil
}
