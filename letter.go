// Package letter generates client-care letters and initial-advice summaries
// from a plain-text precedent and a set of submitted answers. The root
// package is a thin facade over pkg/orchestrator and friends so most callers
// need a single import.
package letter

import (
	"context"

	"github.com/Dave-Ash-4297/letter/pkg/answers"
	"github.com/Dave-Ash-4297/letter/pkg/firm"
	"github.com/Dave-Ash-4297/letter/pkg/orchestrator"
	"github.com/Dave-Ash-4297/letter/pkg/precedent"
)

// Answers carries one submission's field values; alias exported via the root
// package for convenience.
type Answers = answers.Answers

// InitialAdvice captures the first-advice summary fields.
type InitialAdvice = answers.InitialAdvice

// CostEstimate describes the estimated initial costs.
type CostEstimate = answers.CostEstimate

// FirmDetails is the static firm data merged into every placeholder map.
type FirmDetails = firm.Details

// Request describes one generation request.
type Request = orchestrator.Request

// Output bundles the two generated documents.
type Output = orchestrator.Output

// Selections carries the run-time conditional choices.
type Selections = precedent.Selections

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the precedent from source and produces both documents. It is
// the simplest entry point for callers that just want the .docx bytes.
func Generate(ctx context.Context, source precedent.Source, a answers.Answers, options ...orchestrator.Option) (orchestrator.Output, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:  source,
		Answers: a,
	})
}

// GenerateFromDocument produces both documents from a pre-loaded precedent,
// bypassing the loader stage while still delegating to the orchestrator.
func GenerateFromDocument(ctx context.Context, doc precedent.Document, a answers.Answers, options ...orchestrator.Option) (orchestrator.Output, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Answers:  a,
	})
}

// WithFirmDetails re-exports the orchestrator option so callers can override
// firm data without importing pkg/orchestrator.
func WithFirmDetails(details firm.Details) orchestrator.Option {
	return orchestrator.WithFirmDetails(details)
}
