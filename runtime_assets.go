package letter

import (
	"embed"
	"io/fs"

	"github.com/Dave-Ash-4297/letter/pkg/precedent"
)

//go:embed assets/precedent.txt
var embeddedAssets embed.FS

// EmbeddedAssetsFS exposes the built-in precedent so applications can ship
// without an external template file.
func EmbeddedAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

// DefaultPrecedentSource points at the embedded precedent.
func DefaultPrecedentSource() precedent.Source {
	return precedent.SourceFromFS("precedent.txt")
}

// DefaultTemplateCache loads the embedded precedent once per process and
// serves the same immutable document thereafter.
func DefaultTemplateCache() *precedent.TemplateCache {
	loader := NewLoader(precedent.WithFileSystem(EmbeddedAssetsFS()))
	return precedent.NewTemplateCache(loader, DefaultPrecedentSource())
}
