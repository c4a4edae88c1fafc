package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirTarget writes files below a local directory.
type DirTarget struct {
	Root string
}

// Put writes data to Root/key, creating parent directories.
func (d DirTarget) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !filepath.IsLocal(filepath.FromSlash(key)) {
		return fmt.Errorf("key %q escapes %s", key, d.Root)
	}
	dest := filepath.Join(d.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}
