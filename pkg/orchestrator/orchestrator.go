// Package orchestrator coordinates the full pipeline from precedent text to
// generated documents: load → parse → resolve placeholders → assemble. It
// applies sensible defaults (built-in loader/parser, docx builder) while
// remaining open to dependency injection for advanced callers.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Dave-Ash-4297/letter/internal/docx"
	internalLoader "github.com/Dave-Ash-4297/letter/internal/precedent/loader"
	internalParser "github.com/Dave-Ash-4297/letter/internal/precedent/parser"
	"github.com/Dave-Ash-4297/letter/pkg/answers"
	"github.com/Dave-Ash-4297/letter/pkg/assemble"
	"github.com/Dave-Ash-4297/letter/pkg/document"
	"github.com/Dave-Ash-4297/letter/pkg/firm"
	"github.com/Dave-Ash-4297/letter/pkg/placeholder"
	"github.com/Dave-Ash-4297/letter/pkg/precedent"
)

const defaultBuilderName = docx.BuilderName

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom precedent loader.
func WithLoader(loader precedent.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom precedent parser.
func WithParser(parser precedent.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithRegistry injects a document builder registry.
func WithRegistry(registry *document.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultBuilder overrides the builder used when a request omits an
// explicit Builder field.
func WithDefaultBuilder(name string) Option {
	return func(o *Orchestrator) {
		o.defaultBuilder = name
	}
}

// WithFirmDetails overrides the static firm data merged into every
// placeholder map.
func WithFirmDetails(details firm.Details) Option {
	return func(o *Orchestrator) {
		o.firm = details
		o.firmSet = true
	}
}

// WithLogger attaches a logger to the pipeline stages. Defaults to a nop
// logger so library consumers stay quiet.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator runs one generation request start to finish. Each request
// builds its own placeholder map, element sequence, and builder instances, so
// one Orchestrator can serve independent submissions.
type Orchestrator struct {
	loader          precedent.Loader
	parser          precedent.Parser
	registry        *document.Registry
	defaultBuilder  string
	firm            firm.Details
	firmSet         bool
	logger          *zap.Logger
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultBuilder: defaultBuilderName,
		logger:         zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to generate one set of documents.
type Request struct {
	// Source identifies where the precedent lives. Optional when Document is
	// supplied.
	Source precedent.Source

	// Document allows callers to bypass the loader when they already hold the
	// precedent, e.g. from a TemplateCache.
	Document *precedent.Document

	// Answers carries the submitted field values and selections.
	Answers answers.Answers

	// Builder names the document backend. If empty, the orchestrator falls
	// back to the configured default builder.
	Builder string
}

// Output bundles the two generated documents of one request.
type Output struct {
	ClientCareLetter []byte
	AdviceSummary    []byte
}

// Generate executes the loader → parser → resolver → assembler sequence for
// one submission. Any failure aborts the whole request; no partial output is
// returned.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Output, error) {
	if ctx == nil {
		return Output{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return Output{}, err
	}

	elements, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return Output{}, fmt.Errorf("orchestrator: parse precedent: %w", err)
	}
	o.logger.Debug("parsed precedent",
		zap.String("source", doc.Location()),
		zap.Int("elements", len(elements)))

	sanitized := req.Answers.Sanitized()
	placeholders := placeholder.Resolve(sanitized, o.firm)
	o.logger.Debug("placeholder map created", zap.Int("entries", len(placeholders)))

	factory, err := o.builderFor(req.Builder)
	if err != nil {
		return Output{}, err
	}

	letter, err := o.buildLetter(factory, elements, sanitized, placeholders)
	if err != nil {
		return Output{}, fmt.Errorf("orchestrator: build client care letter: %w", err)
	}

	advice, err := o.buildAdvice(factory, sanitized, placeholders)
	if err != nil {
		return Output{}, fmt.Errorf("orchestrator: build advice summary: %w", err)
	}

	o.logger.Info("generated documents",
		zap.String("matter", sanitized.OurRef),
		zap.Int("letter_bytes", len(letter)),
		zap.Int("advice_bytes", len(advice)))
	return Output{ClientCareLetter: letter, AdviceSummary: advice}, nil
}

func (o *Orchestrator) buildLetter(factory document.Factory, elements []precedent.Element, a answers.Answers, placeholders placeholder.Map) ([]byte, error) {
	builder, err := factory()
	if err != nil {
		return nil, err
	}
	asm := assemble.New(builder, placeholders,
		assemble.WithHourlyRate(a.HourlyRate),
		assemble.WithLogger(o.logger))
	if err := asm.Letter(elements, a.Selections()); err != nil {
		return nil, err
	}
	return builder.Bytes()
}

func (o *Orchestrator) buildAdvice(factory document.Factory, a answers.Answers, placeholders placeholder.Map) ([]byte, error) {
	builder, err := factory()
	if err != nil {
		return nil, err
	}
	asm := assemble.New(builder, placeholders, assemble.WithLogger(o.logger))
	if err := asm.AdviceSummary(a.Advice); err != nil {
		return nil, err
	}
	return builder.Bytes()
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (precedent.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return precedent.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return precedent.Document{}, fmt.Errorf("orchestrator: load precedent: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) builderFor(name string) (document.Factory, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: builder registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultBuilder
	}

	if target != "" {
		factory, err := o.registry.Get(target)
		if err == nil {
			return factory, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: builder %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no builders registered")
	}
	factory, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: builder %q: %w", names[0], err)
	}
	return factory, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(precedent.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(precedent.NewParserOptions())
	}
	if o.registry == nil {
		o.registry = document.NewRegistry()
		o.registry.MustRegister(docx.BuilderName, docx.Factory)
	}
	if o.defaultBuilder == "" {
		o.defaultBuilder = defaultBuilderName
	}
	if !o.firmSet {
		o.firm = firm.Default()
	}

	o.defaultsApplied = true
}
