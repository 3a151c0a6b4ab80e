package precedent

import (
	"context"
	"io/fs"
	"sync"
)

// Loader fetches precedent text from a source (filesystem or fs.FS).
// Implementations live under internal/precedent but satisfy this contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem; defaults to the
	// operating system if nil.
	FileSystem fs.FS
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// TemplateCache loads a precedent once and serves the same immutable Document
// for the rest of the process lifetime. The precedent is treated as read-only
// process-wide state; reloading it is a restart-only operation.
type TemplateCache struct {
	loader Loader
	source Source

	once sync.Once
	doc  Document
	err  error
}

// NewTemplateCache binds a loader and source without loading anything yet.
func NewTemplateCache(loader Loader, src Source) *TemplateCache {
	return &TemplateCache{loader: loader, source: src}
}

// Document returns the cached precedent, loading it on first use. The context
// only applies to the initial load; later calls return the cached result.
func (c *TemplateCache) Document(ctx context.Context) (Document, error) {
	c.once.Do(func() {
		c.doc, c.err = c.loader.Load(ctx, c.source)
	})
	return c.doc, c.err
}

// Construction helpers live in the top-level letter package to prevent import cycles.
