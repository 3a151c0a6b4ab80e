package letter

import (
	internalLoader "github.com/Dave-Ash-4297/letter/internal/precedent/loader"
	internalParser "github.com/Dave-Ash-4297/letter/internal/precedent/parser"
	"github.com/Dave-Ash-4297/letter/pkg/precedent"
)

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...precedent.LoaderOption) precedent.Loader {
	cfg := precedent.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...precedent.ParserOption) precedent.Parser {
	cfg := precedent.NewParserOptions(options...)
	return internalParser.New(cfg)
}
