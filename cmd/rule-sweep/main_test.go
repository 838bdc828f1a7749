package main

import (
	"testing"

	"wolfram-ca/internal/automaton"
)

func TestSelectPool(t *testing.T) {
	if got := len(selectPool(false)); got != len(automaton.Curated()) {
		t.Fatalf("default pool size: got %d, want %d", got, len(automaton.Curated()))
	}
	if got := len(selectPool(true)); got != 256 {
		t.Fatalf("all pool size: got %d, want 256", got)
	}
}

func TestSurveyRuleZeroDiesImmediately(t *testing.T) {
	res, err := survey(0, 16, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.dieOutStep != 1 {
		t.Fatalf("rule 0 die-out step: got %d, want 1", res.dieOutStep)
	}
	if res.meanDensity != 0 {
		t.Fatalf("rule 0 density: got %g, want 0", res.meanDensity)
	}
}

// Rule 204 maps every cell onto itself, so the seed row repeats forever.
func TestSurveyIdentityRuleIsPeriodic(t *testing.T) {
	res, err := survey(204, 16, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.dieOutStep != -1 {
		t.Fatalf("identity rule died at step %d", res.dieOutStep)
	}
	if res.period != 1 || res.periodStart != 0 {
		t.Fatalf("identity rule period: got %d from %d, want 1 from 0", res.period, res.periodStart)
	}
	if res.meanDensity <= 0 {
		t.Fatalf("identity rule density: got %g, want > 0", res.meanDensity)
	}
}

func TestSurveyRejectsBadRule(t *testing.T) {
	if _, err := survey(300, 16, 8, 1); err == nil {
		t.Fatal("out-of-range rule accepted")
	}
}
