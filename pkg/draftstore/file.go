package draftstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend stores each key as a JSON document in a directory. This is the
// durable local store used by the authoring tools: drafts survive restarts
// without any server round trip.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) Get(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (b *FileBackend) Set(_ context.Context, key, value string) error {
	return os.WriteFile(b.path(key), []byte(value), 0o644)
}

func (b *FileBackend) Del(_ context.Context, key string) error {
	err := os.Remove(b.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// path flattens the namespace into a file name; draft namespaces use ':' as
// a separator which is not portable across filesystems.
func (b *FileBackend) path(key string) string {
	name := strings.NewReplacer(":", "_", "/", "_", string(os.PathSeparator), "_").Replace(key)
	return filepath.Join(b.dir, name+".json")
}
