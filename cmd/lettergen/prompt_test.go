package main

import (
	"context"
	"testing"
	"time"

	"github.com/Dave-Ash-4297/letter/pkg/precedent"
)

// scriptDriver replays canned responses so the collection flow can run
// without a terminal.
type scriptDriver struct {
	t *testing.T

	inputs    []string
	confirms  []bool
	selects   []int
	textAreas []string
}

func (d *scriptDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		d.t.Fatalf("unexpected Input prompt: %s", cfg.Message)
	}
	next := d.inputs[0]
	d.inputs = d.inputs[1:]
	if next == "" {
		next = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(next); err != nil {
			return "", err
		}
	}
	return next, nil
}

func (d *scriptDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		d.t.Fatalf("unexpected Confirm prompt: %s", cfg.Message)
	}
	next := d.confirms[0]
	d.confirms = d.confirms[1:]
	return next, nil
}

func (d *scriptDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		d.t.Fatalf("unexpected Select prompt: %s", cfg.Message)
	}
	next := d.selects[0]
	d.selects = d.selects[1:]
	if next < 0 || next >= len(cfg.Options) {
		d.t.Fatalf("scripted index %d out of range for %q", next, cfg.Message)
	}
	return next, nil
}

func (d *scriptDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	if len(d.textAreas) == 0 {
		d.t.Fatalf("unexpected TextArea prompt: %s", cfg.Message)
	}
	next := d.textAreas[0]
	d.textAreas = d.textAreas[1:]
	return next, nil
}

func TestCollectAnswersFixedFee(t *testing.T) {
	driver := &scriptDriver{
		t: t,
		inputs: []string{
			"PDP/10011/001", // our reference
			"REF",           // your reference
			"2026-03-02",    // letter date
			"Example Holdings Ltd",
			"Sirs",
			"1 Example Way",
			"",
			"EX4 MPL",
			"2026-03-02", // advice date
			"300",        // hourly rate
			"750",        // fixed fee
		},
		confirms:  []bool{true, false}, // claim assigned, use range
		selects:   []int{1, 3, 2},      // corporate, multi track, teams call
		textAreas: []string{"advice given", "a supplier dispute", "review the contract", "four weeks"},
	}

	a, err := collectAnswers(context.Background(), driver)
	if err != nil {
		t.Fatalf("collect answers: %v", err)
	}

	if a.OurRef != "PDP/10011/001" || a.YourRef != "REF" {
		t.Fatalf("references = %q / %q", a.OurRef, a.YourRef)
	}
	wantDate := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	if !a.LetterDate.Equal(wantDate) {
		t.Fatalf("letter date = %v", a.LetterDate)
	}
	if a.ClientType != precedent.ClientCorporate {
		t.Fatalf("client type = %q", a.ClientType)
	}
	if !a.ClaimAssigned || a.Track != precedent.TrackMulti {
		t.Fatalf("track selections = %v / %q", a.ClaimAssigned, a.Track)
	}
	if a.Advice.Method != "Teams Call" || a.Advice.Content != "advice given" {
		t.Fatalf("advice = %+v", a.Advice)
	}
	if a.DisputeNature != "a supplier dispute" || a.Timescales != "four weeks" {
		t.Fatalf("free text = %q / %q", a.DisputeNature, a.Timescales)
	}
	if a.HourlyRate != 300 {
		t.Fatalf("hourly rate = %d", a.HourlyRate)
	}
	if a.Costs.UseRange || a.Costs.Fixed != 750 {
		t.Fatalf("costs = %+v", a.Costs)
	}

	if len(driver.inputs)+len(driver.confirms)+len(driver.selects)+len(driver.textAreas) != 0 {
		t.Fatalf("unconsumed scripted responses remain")
	}
}

func TestCollectAnswersCostRangeDefaults(t *testing.T) {
	driver := &scriptDriver{
		t: t,
		inputs: []string{
			"PDP/1", "REF", "2026-03-02",
			"Mr. Smith", "Mr. Smith", "1 Example Way", "", "EX4 MPL",
			"2026-03-02",
			"300", // hourly rate
			"",    // lower: accept default 750.00
			"",    // upper: accept default 1050.00
		},
		confirms:  []bool{false, true}, // not assigned, use range
		selects:   []int{0, 1, 0},      // individual, fast track, phone call
		textAreas: []string{"advice", "dispute", "steps", "timescales"},
	}

	a, err := collectAnswers(context.Background(), driver)
	if err != nil {
		t.Fatalf("collect answers: %v", err)
	}
	if !a.Costs.UseRange {
		t.Fatalf("expected a cost range")
	}
	// Defaults derive from the hourly rate: 2.5× and 3.5×.
	if a.Costs.Lower != 750 || a.Costs.Upper != 1050 {
		t.Fatalf("cost range = %+v", a.Costs)
	}
}

func TestValidators(t *testing.T) {
	if err := validDate("2026-03-02"); err != nil {
		t.Fatalf("validDate rejected a valid date: %v", err)
	}
	if err := validDate("02/03/2026"); err == nil {
		t.Fatalf("validDate accepted the wrong layout")
	}
	if err := validInt("295"); err != nil {
		t.Fatalf("validInt rejected a whole number: %v", err)
	}
	if err := validInt("295.50"); err == nil {
		t.Fatalf("validInt accepted a decimal")
	}
	if err := validFloat("737.50"); err != nil {
		t.Fatalf("validFloat rejected an amount: %v", err)
	}
	if err := validFloat("seven"); err == nil {
		t.Fatalf("validFloat accepted text")
	}
}
