package main

import "testing"

// feedNumber should replay digits and decimal point through the engine
func TestFeedNumber(t *testing.T) {
	e := NewEngine()
	feedNumber(e, "  3.14  ")

	if got := e.DisplayText(); got != "3.14" {
		t.Errorf("display = %q, want %q", got, "3.14")
	}
}

// Replay should stop at the first non-numeric rune
func TestFeedNumberStopsAtGarbage(t *testing.T) {
	e := NewEngine()
	feedNumber(e, "12ab34")

	if got := e.DisplayText(); got != "12" {
		t.Errorf("display = %q, want %q", got, "12")
	}
}

// Pasted text must obey the same display invariants as typed input
func TestFeedNumberRespectsInvariants(t *testing.T) {
	e := NewEngine()
	feedNumber(e, "1.2.3")
	if got := e.DisplayText(); got != "1.23" {
		t.Errorf("display = %q, want %q (single decimal point)", got, "1.23")
	}

	e = NewEngine()
	feedNumber(e, "123456789012345678")
	if got := len(e.DisplayText()); got != maxDisplayLen {
		t.Errorf("display length = %d, want cap %d", got, maxDisplayLen)
	}
}

// Pasting while in error state should dismiss the error like typing does
func TestFeedNumberDismissesError(t *testing.T) {
	e := NewEngine()
	e.Evaluate() // incomplete input
	feedNumber(e, "9")

	if e.InError() {
		t.Error("paste did not dismiss the error state")
	}
	if got := e.DisplayText(); got != "9" {
		t.Errorf("display = %q, want %q", got, "9")
	}
}
