package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	letter "github.com/Dave-Ash-4297/letter"
	"github.com/Dave-Ash-4297/letter/pkg/answers"
	"github.com/Dave-Ash-4297/letter/pkg/firm"
	"github.com/Dave-Ash-4297/letter/pkg/orchestrator"
	"github.com/Dave-Ash-4297/letter/pkg/precedent"
)

func main() {
	templatePath := flag.String("template", "", "precedent text file (embedded default if empty)")
	answersPath := flag.String("answers", "", "answers yaml file")
	firmPath := flag.String("firm", "", "firm details yaml override")
	interactive := flag.Bool("interactive", false, "collect answers with interactive prompts")
	letterOut := flag.String("out-letter", "client_care_letter.docx", "client care letter output path")
	adviceOut := flag.String("out-advice", "initial_advice_summary.docx", "advice summary output path")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := newLogger(*debug)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	var (
		submission answers.Answers
		err        error
	)
	switch {
	case *interactive:
		submission, err = collectAnswers(ctx, newSurveyDriver())
		if err != nil {
			log.Fatalf("Failed to collect answers: %v", err)
		}
	case *answersPath != "":
		submission, err = loadAnswers(*answersPath)
		if err != nil {
			log.Fatalf("Failed to load answers: %v", err)
		}
	default:
		log.Fatal("either -answers or -interactive is required")
	}

	options := []orchestrator.Option{orchestrator.WithLogger(logger)}
	if *firmPath != "" {
		details, err := firm.Load(*firmPath)
		if err != nil {
			log.Fatalf("Failed to load firm details: %v", err)
		}
		options = append(options, orchestrator.WithFirmDetails(details))
	}

	req := orchestrator.Request{Answers: submission}
	if *templatePath != "" {
		req.Source = precedent.SourceFromFile(*templatePath)
	} else {
		doc, err := letter.DefaultTemplateCache().Document(ctx)
		if err != nil {
			log.Fatalf("Failed to load embedded precedent: %v", err)
		}
		req.Document = &doc
	}

	gen := letter.NewOrchestrator(options...)
	out, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate documents: %v", err)
	}

	if err := os.WriteFile(*letterOut, out.ClientCareLetter, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *letterOut, err)
	}
	if err := os.WriteFile(*adviceOut, out.AdviceSummary, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *adviceOut, err)
	}
	fmt.Printf("Client care letter written to %s\n", *letterOut)
	fmt.Printf("Initial advice summary written to %s\n", *adviceOut)
}

func newLogger(debug bool) *zap.Logger {
	config := zap.NewProductionConfig()
	if debug {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		log.Fatalf("Failed to initialise logger: %v", err)
	}
	return logger
}

func loadAnswers(path string) (answers.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return answers.Answers{}, fmt.Errorf("read %s: %w", path, err)
	}
	var a answers.Answers
	if err := yaml.Unmarshal(data, &a); err != nil {
		return answers.Answers{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return a, nil
}
