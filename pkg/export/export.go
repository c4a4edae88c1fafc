// Package export writes rendered pages to static storage.
//
// Each page is rendered once with a render.Renderer and stored under a key
// derived from its URL path ("/" becomes "index.html", "/blog" becomes
// "blog/index.html"). Targets are a local directory (DirTarget) or an S3
// bucket (S3Target).
package export

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/vango-dev/markup/pkg/html"
	"github.com/vango-dev/markup/pkg/render"
)

// Page is one document to export.
type Page struct {
	// Path is the URL path the page is served at.
	Path string

	// Build returns the document. It is called once per export.
	Build func(ctx context.Context) (html.Document, error)
}

// Target stores exported files.
type Target interface {
	Put(ctx context.Context, key string, data []byte) error
}

// Result summarises an export.
type Result struct {
	Keys  []string
	Bytes int64
}

// Export renders every page and stores it in target. It stops at the first
// failure; pages stored before it stay in place.
func Export(ctx context.Context, r *render.Renderer, pages []Page, target Target) (Result, error) {
	var res Result
	seen := make(map[string]string, len(pages))

	for _, p := range pages {
		key, err := KeyForPath(p.Path)
		if err != nil {
			return res, err
		}
		if prev, ok := seen[key]; ok {
			return res, fmt.Errorf("export: %q and %q both map to %s", prev, p.Path, key)
		}
		seen[key] = p.Path

		doc, err := p.Build(ctx)
		if err != nil {
			return res, fmt.Errorf("export: build %s: %w", p.Path, err)
		}

		var buf bytes.Buffer
		if err := r.RenderDocument(render.WithName(ctx, p.Path), &buf, doc); err != nil {
			return res, fmt.Errorf("export: %w", err)
		}
		if err := target.Put(ctx, key, buf.Bytes()); err != nil {
			return res, fmt.Errorf("export: put %s: %w", key, err)
		}

		res.Keys = append(res.Keys, key)
		res.Bytes += int64(buf.Len())
	}
	return res, nil
}

// KeyForPath maps a URL path to the file key it is exported under. Paths
// ending in ".html" keep their name.
func KeyForPath(urlPath string) (string, error) {
	if strings.ContainsAny(urlPath, "?#") {
		return "", fmt.Errorf("export: path %q has a query or fragment", urlPath)
	}
	clean := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	switch {
	case clean == "":
		return "index.html", nil
	case strings.HasSuffix(clean, ".html"):
		return clean, nil
	default:
		return clean + "/index.html", nil
	}
}
