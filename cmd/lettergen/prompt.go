package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/Dave-Ash-4297/letter/pkg/answers"
	"github.com/Dave-Ash-4297/letter/pkg/precedent"
)

const dateLayout = "2006-01-02"

// ErrPromptCancelled reports that the user interrupted the prompt flow.
var ErrPromptCancelled = errors.New("lettergen: prompt cancelled")

// InputConfig configures a basic text input prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no style prompt.
type ConfirmConfig struct {
	Message string
	Default bool
}

// SelectConfig configures a single-select prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
}

// TextAreaConfig configures a multi-line text prompt.
type TextAreaConfig struct {
	Message string
	Default string
}

// PromptDriver abstracts the actual prompt implementation so the collection
// flow can be tested without a real terminal.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	TextArea(ctx context.Context, cfg TextAreaConfig) (string, error)
}

type surveyDriver struct{}

func newSurveyDriver() PromptDriver {
	return &surveyDriver{}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		validator := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			text, _ := ans.(string)
			return validator(text)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out string
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	for i, option := range cfg.Options {
		if option == out {
			return i, nil
		}
	}
	return 0, nil
}

func (d *surveyDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Multiline{
		Message: cfg.Message,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrPromptCancelled
	}
	return err
}

// collectAnswers walks the same form the original web UI presented: letter
// and client details, advice summary, case track, then the dynamic content
// and costs estimate.
func collectAnswers(ctx context.Context, driver PromptDriver) (answers.Answers, error) {
	var a answers.Answers

	today := time.Now().Format(dateLayout)

	steps := []func() error{
		func() (err error) {
			a.OurRef, err = driver.Input(ctx, InputConfig{Message: "Our reference", Default: "PDP/10011/001"})
			return err
		},
		func() (err error) {
			a.YourRef, err = driver.Input(ctx, InputConfig{Message: "Your reference", Default: "REF"})
			return err
		},
		func() (err error) {
			a.LetterDate, err = askDate(ctx, driver, "Letter date", today)
			return err
		},
		func() (err error) {
			a.ClientName, err = driver.Input(ctx, InputConfig{Message: "Client full name / company name"})
			return err
		},
		func() (err error) {
			a.ClientSalutation, err = driver.Input(ctx, InputConfig{
				Message: "Salutation",
				Help:    "Used for 'Dear ...' and the address block",
			})
			return err
		},
		func() (err error) {
			a.AddressLine1, err = driver.Input(ctx, InputConfig{Message: "Address line 1"})
			return err
		},
		func() (err error) {
			a.AddressLine2, err = driver.Input(ctx, InputConfig{Message: "Address line 2 (optional)"})
			return err
		},
		func() (err error) {
			a.Postcode, err = driver.Input(ctx, InputConfig{Message: "Postcode"})
			return err
		},
		func() (err error) {
			idx, err := driver.Select(ctx, SelectConfig{
				Message: "Client type",
				Options: []string{string(precedent.ClientIndividual), string(precedent.ClientCorporate)},
			})
			if err != nil {
				return err
			}
			a.ClientType = precedent.ClientIndividual
			if idx == 1 {
				a.ClientType = precedent.ClientCorporate
			}
			return nil
		},
		func() (err error) {
			a.ClaimAssigned, err = driver.Confirm(ctx, ConfirmConfig{Message: "Is the claim already assigned to a track?"})
			return err
		},
		func() (err error) {
			tracks := precedent.Tracks()
			options := make([]string, len(tracks))
			for i, track := range tracks {
				options[i] = string(track)
			}
			idx, err := driver.Select(ctx, SelectConfig{Message: "Which track applies?", Options: options})
			if err != nil {
				return err
			}
			a.Track = tracks[idx]
			return nil
		},
		func() (err error) {
			a.Advice.Date, err = askDate(ctx, driver, "Date of initial advice", today)
			return err
		},
		func() (err error) {
			idx, err := driver.Select(ctx, SelectConfig{
				Message: "Method of initial advice",
				Options: []string{"Phone Call", "In Person", "Teams Call"},
			})
			if err != nil {
				return err
			}
			a.Advice.Method = []string{"Phone Call", "In Person", "Teams Call"}[idx]
			return nil
		},
		func() (err error) {
			a.Advice.Content, err = driver.TextArea(ctx, TextAreaConfig{Message: "Advice given"})
			return err
		},
		func() (err error) {
			a.DisputeNature, err = driver.TextArea(ctx, TextAreaConfig{Message: "Nature of the dispute"})
			return err
		},
		func() (err error) {
			a.InitialSteps, err = driver.TextArea(ctx, TextAreaConfig{Message: "Initial work to carry out"})
			return err
		},
		func() (err error) {
			a.Timescales, err = driver.TextArea(ctx, TextAreaConfig{Message: "Estimated timescales"})
			return err
		},
		func() (err error) {
			a.HourlyRate, err = askInt(ctx, driver, "Your hourly rate (£)", "295")
			return err
		},
		func() error {
			return collectCosts(ctx, driver, &a)
		},
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return answers.Answers{}, err
		}
	}
	return a, nil
}

func collectCosts(ctx context.Context, driver PromptDriver, a *answers.Answers) error {
	useRange, err := driver.Confirm(ctx, ConfirmConfig{Message: "Use a cost range?", Default: true})
	if err != nil {
		return err
	}
	a.Costs.UseRange = useRange

	rate := float64(a.HourlyRate)
	if useRange {
		lower, err := askFloat(ctx, driver, "Lower estimate (£, excl. VAT)", formatAmount(rate*2.5))
		if err != nil {
			return err
		}
		upper, err := askFloat(ctx, driver, "Upper estimate (£, excl. VAT)", formatAmount(rate*3.5))
		if err != nil {
			return err
		}
		a.Costs.Lower, a.Costs.Upper = lower, upper
		return nil
	}

	fixed, err := askFloat(ctx, driver, "Fixed fee (£, excl. VAT)", formatAmount(rate*2.5))
	if err != nil {
		return err
	}
	a.Costs.Fixed = fixed
	return nil
}

func askDate(ctx context.Context, driver PromptDriver, message, def string) (time.Time, error) {
	raw, err := driver.Input(ctx, InputConfig{
		Message:   message,
		Default:   def,
		Help:      "Format: YYYY-MM-DD",
		Validator: validDate,
	})
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(dateLayout, strings.TrimSpace(raw))
}

func askInt(ctx context.Context, driver PromptDriver, message, def string) (int, error) {
	raw, err := driver.Input(ctx, InputConfig{
		Message:   message,
		Default:   def,
		Validator: validInt,
	})
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(raw))
}

func askFloat(ctx context.Context, driver PromptDriver, message, def string) (float64, error) {
	raw, err := driver.Input(ctx, InputConfig{
		Message:   message,
		Default:   def,
		Validator: validFloat,
	})
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func validDate(raw string) error {
	if _, err := time.Parse(dateLayout, strings.TrimSpace(raw)); err != nil {
		return fmt.Errorf("enter a date as YYYY-MM-DD")
	}
	return nil
}

func validInt(raw string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(raw)); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func validFloat(raw string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err != nil {
		return fmt.Errorf("enter an amount")
	}
	return nil
}
