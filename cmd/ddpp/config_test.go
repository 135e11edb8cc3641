package main

import (
	"errors"
	"testing"
)

func TestRunConfig_ValidateRequiresASearch(t *testing.T) {
	cfg := runConfig{}
	if err := cfg.validate(); !errors.Is(err, ErrNoSearchSelected) {
		t.Fatalf("expected ErrNoSearchSelected, got %v", err)
	}
}

func TestRunConfig_ValidateRejectsBFWithoutGD(t *testing.T) {
	cfg := runConfig{ee: true, bf: true}
	if err := cfg.validate(); !errors.Is(err, ErrBruteForceNeedsGD) {
		t.Fatalf("expected ErrBruteForceNeedsGD, got %v", err)
	}
}

func TestRunConfig_ValidateAcceptsGDAlone(t *testing.T) {
	cfg := runConfig{gd: true}
	if err := cfg.validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunConfig_ValidateAcceptsGDAndBF(t *testing.T) {
	cfg := runConfig{gd: true, bf: true}
	if err := cfg.validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
