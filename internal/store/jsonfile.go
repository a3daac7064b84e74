package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	srvErrors "github.com/pf9/region-wizard/pkg/errors"
)

// jsonFile is a collection persisted as a single JSON array. Appends read
// the whole array, add the item and rewrite the file. There is no locking:
// two processes appending at the same time can lose one of the writes.
type jsonFile[T any] struct {
	fs   afero.Fs
	dir  string
	path string
}

func newJSONFile[T any](fs afero.Fs, dir, path string) *jsonFile[T] {
	return &jsonFile[T]{fs: fs, dir: dir, path: path}
}

func (f *jsonFile[T]) read() ([]T, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, srvErrors.NewPersistenceError(f.path, err)
	}

	items := []T{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", f.path, err)
	}
	return items, nil
}

func (f *jsonFile[T]) append(item T) error {
	items, err := f.read()
	if err != nil {
		return err
	}
	items = append(items, item)

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", f.path, err)
	}

	if err := f.fs.MkdirAll(f.dir, 0o700); err != nil {
		return srvErrors.NewPersistenceError(f.dir, err)
	}
	if err := afero.WriteFile(f.fs, f.path, data, 0o600); err != nil {
		return srvErrors.NewPersistenceError(f.path, err)
	}

	zap.S().Named("store").Debugw("records written", "path", f.path, "count", len(items))
	return nil
}
