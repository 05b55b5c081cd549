// Package loader discovers GraphQL SDL documents under a source tree and
// reads them into composer sources.
package loader

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/graphkit/sdlmerge/composer"
	"github.com/graphkit/sdlmerge/sdlerrors"
)

// DefaultExtensions lists the schema-document file extensions recognized by
// default. Matching is case-insensitive.
var DefaultExtensions = []string{".graphql", ".graphqls", ".gql"}

// Loader discovers SDL documents under a root directory.
type Loader struct {
	// Extensions are the recognized file extensions (case-insensitive);
	// DefaultExtensions when empty
	Extensions []string
	// Exclude lists file paths that are never treated as documents,
	// typically the output file when it lives under the source tree
	Exclude []string
	// Concurrency bounds concurrent file reads; defaults to GOMAXPROCS
	Concurrency int
}

// New creates a Loader with default settings.
func New() *Loader {
	return &Loader{Extensions: DefaultExtensions}
}

// IsDocument reports whether path names a schema document the loader would
// pick up: a recognized extension and not an excluded path. The watcher
// uses the same predicate to filter change events.
func (l *Loader) IsDocument(path string) bool {
	if l.isExcluded(path) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range l.extensions() {
		if ext == want {
			return true
		}
	}
	return false
}

// Load scans root recursively and returns one source per discovered
// document, named by its root-relative path. Discovery order is the walk's
// lexical order, so an unchanged tree always yields the same source list.
// File reads fan out concurrently into a single collected slice; the first
// failure aborts the load.
func (l *Loader) Load(root string) ([]composer.Source, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return &sdlerrors.DiscoveryError{Path: path, Cause: walkErr}
		}
		if d.IsDir() {
			return nil
		}
		if l.IsDocument(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sources := make([]composer.Source, len(paths))
	var g errgroup.Group
	g.SetLimit(l.concurrency())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return &sdlerrors.DiscoveryError{Path: path, Message: "cannot read document", Cause: err}
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return &sdlerrors.DiscoveryError{Path: path, Message: "cannot determine relative path", Cause: err}
			}
			sources[i] = composer.Source{Name: filepath.ToSlash(rel), Input: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

func (l *Loader) extensions() []string {
	if len(l.Extensions) == 0 {
		return DefaultExtensions
	}
	return l.Extensions
}

func (l *Loader) concurrency() int {
	if l.Concurrency > 0 {
		return l.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func (l *Loader) isExcluded(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, excluded := range l.Exclude {
		excludedAbs, err := filepath.Abs(excluded)
		if err != nil {
			continue
		}
		if abs == excludedAbs {
			return true
		}
	}
	return false
}
