package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Origin is where shell assets actually live; the network side of the
// cache-then-network lookup.
type Origin interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// DirOrigin serves shell assets from a local directory. "/" resolves to
// index.html, matching the document root contract.
type DirOrigin struct {
	root string
}

func NewDirOrigin(root string) *DirOrigin {
	return &DirOrigin{root: root}
}

func (o *DirOrigin) Fetch(ctx context.Context, path string) ([]byte, error) {
	if path == "/" {
		path = "/index.html"
	}

	rel := strings.TrimPrefix(filepath.Clean("/"+path), "/")
	body, err := os.ReadFile(filepath.Join(o.root, rel))
	if err != nil {
		return nil, fmt.Errorf("origin: fetch %s: %w", path, err)
	}
	return body, nil
}
