// Package site is the demo site shipped with the markup CLI. It is served by
// `markup serve`, printed by `markup render` and written by `markup export`.
package site

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/markup/pkg/export"
	"github.com/vango-dev/markup/pkg/html"
	"github.com/vango-dev/markup/pkg/server"
	"github.com/vango-dev/markup/pkg/style"
)

// Post is a blog entry.
type Post struct {
	Slug      string
	Title     string
	Summary   string
	Body      []string
	Tags      []string
	Published time.Time
	Draft     bool
}

// Site holds the demo content.
type Site struct {
	Name   string
	Policy style.Policy
	Posts  []Post
}

// Demo returns the built-in demo site.
func Demo(policy style.Policy) *Site {
	return &Site{
		Name:   "markup",
		Policy: policy,
		Posts: []Post{
			{
				Slug:      "typed-trees",
				Title:     "Typed trees",
				Summary:   "Building pages from values instead of templates.",
				Body:      []string{"Every element is a Go value.", "Trees render once, straight into the response."},
				Tags:      []string{"html", "go"},
				Published: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				Slug:      "styles-to-classes",
				Title:     "Styles to classes",
				Summary:   "Inline declarations become a deduplicated stylesheet.",
				Body:      []string{"Equal declarations share a class.", "Media queries & pseudo-classes are grouped."},
				Tags:      []string{"css"},
				Published: time.Date(2024, 4, 12, 0, 0, 0, 0, time.UTC),
			},
			{
				Slug:  "unfinished",
				Title: "Unfinished",
				Draft: true,
			},
		},
	}
}

// Published returns the non-draft posts, newest first.
func (s *Site) Published() []Post {
	var posts []Post
	for _, p := range s.Posts {
		if !p.Draft {
			posts = append(posts, p)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Published.After(posts[j].Published)
	})
	return posts
}

// Post returns the published post with slug.
func (s *Site) Post(slug string) (Post, bool) {
	for _, p := range s.Posts {
		if p.Slug == slug && !p.Draft {
			return p, true
		}
	}
	return Post{}, false
}

// Page returns the document served at path.
func (s *Site) Page(path string) (html.Document, error) {
	switch {
	case path == "/" || path == "":
		return s.Home(), nil
	case path == "/about":
		return s.About(), nil
	case strings.HasPrefix(path, "/posts/"):
		post, ok := s.Post(strings.TrimPrefix(path, "/posts/"))
		if !ok {
			return html.Document{}, fmt.Errorf("post %q: %w", path, server.ErrNotFound)
		}
		return s.PostPage(post), nil
	case path == "/404.html":
		return s.NotFound(), nil
	}
	return html.Document{}, fmt.Errorf("%s: %w", path, server.ErrNotFound)
}

// Routes returns the pages keyed by chi route pattern.
func (s *Site) Routes() map[string]server.PageFunc {
	return map[string]server.PageFunc{
		"/":      func(*http.Request) (html.Document, error) { return s.Home(), nil },
		"/about": func(*http.Request) (html.Document, error) { return s.About(), nil },
		"/posts/{slug}": func(r *http.Request) (html.Document, error) {
			return s.Page("/posts/" + chi.URLParam(r, "slug"))
		},
	}
}

// Paths lists every exportable path.
func (s *Site) Paths() []string {
	paths := []string{"/", "/about"}
	for _, p := range s.Published() {
		paths = append(paths, "/posts/"+p.Slug)
	}
	return append(paths, "/404.html")
}

// ExportPages returns every path as an export page.
func (s *Site) ExportPages() []export.Page {
	paths := s.Paths()
	pages := make([]export.Page, len(paths))
	for i, path := range paths {
		pages[i] = export.Page{Path: path, Build: func(context.Context) (html.Document, error) {
			return s.Page(path)
		}}
	}
	return pages
}
