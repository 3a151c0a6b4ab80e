package loader

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/Dave-Ash-4297/letter/pkg/precedent"
)

// Loader implements precedent.Loader by delegating to file or fs.FS
// strategies. Construction helpers live in the top-level letter package.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ precedent.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options precedent.LoaderOptions) precedent.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches a precedent from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src precedent.Source) (precedent.Document, error) {
	if src == nil {
		return precedent.Document{}, errors.New("precedent loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case precedent.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case precedent.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = errors.New("precedent loader: unsupported source kind")
	}
	if err != nil {
		return precedent.Document{}, err
	}

	return precedent.NewDocument(src, string(data))
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("precedent loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return data, nil
}
