package main

import (
	"testing"

	"github.com/vovakirdan/crystal-cavern/internal/core"
)

func TestParseScript(t *testing.T) {
	script, err := parseScript("right, jump@30, shoot@40-42, left@100-")
	if err != nil {
		t.Fatalf("parseScript error: %v", err)
	}
	if len(script) != 4 {
		t.Fatalf("len(script) = %d, expected 4", len(script))
	}

	tests := []struct {
		tick     int
		action   core.Action
		expected bool
	}{
		{0, core.ActionRight, true},
		{500, core.ActionRight, true},
		{29, core.ActionJump, false},
		{30, core.ActionJump, true},
		{31, core.ActionJump, false},
		{39, core.ActionShoot, false},
		{40, core.ActionShoot, true},
		{42, core.ActionShoot, true},
		{43, core.ActionShoot, false},
		{99, core.ActionLeft, false},
		{100, core.ActionLeft, true},
		{9999, core.ActionLeft, true},
	}

	for _, tt := range tests {
		got := script.frame(tt.tick).Has(tt.action)
		if got != tt.expected {
			t.Errorf("frame(%d).Has(%v) = %v, expected %v", tt.tick, tt.action, got, tt.expected)
		}
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []string{
		"fly",
		"jump@",
		"jump@x",
		"jump@-3",
		"shoot@50-40",
		"shoot@10-y",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := parseScript(input); err == nil {
				t.Errorf("parseScript(%q) expected error", input)
			}
		})
	}
}

func TestParseScriptEmpty(t *testing.T) {
	script, err := parseScript("")
	if err != nil {
		t.Fatalf("parseScript error: %v", err)
	}
	if script.frame(0).Has(core.ActionRight) {
		t.Error("empty script should produce empty frames")
	}
}
