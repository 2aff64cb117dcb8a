package utils

import (
	"strings"
	"testing"
	"time"
)

func TestCheckName(t *testing.T) {
	if !CheckName("Alice") {
		t.Error("plain name must pass")
	}
	if CheckName("") {
		t.Error("empty name must fail")
	}
	if !CheckName(strings.Repeat("a", 100)) {
		t.Error("100-char name must pass")
	}
	if CheckName(strings.Repeat("a", 101)) {
		t.Error("101-char name must fail")
	}
}

func TestCheckEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+c@sub.example.co",
		"o'brien@example.ie",
	}
	for _, email := range valid {
		if !CheckEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"alice@",
		"alice@example",
		"alice @example.com",
		strings.Repeat("a", 250) + "@x.com",
	}
	for _, email := range invalid {
		if CheckEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestCheckGender(t *testing.T) {
	if !CheckGender("M") || !CheckGender("F") {
		t.Error("M and F must pass")
	}
	for _, g := range []string{"", "m", "f", "X", "MF"} {
		if CheckGender(g) {
			t.Errorf("expected %q to be invalid", g)
		}
	}
}

func TestCheckWeight(t *testing.T) {
	if !CheckWeight(62.5) {
		t.Error("positive weight must pass")
	}
	if CheckWeight(0) || CheckWeight(-1) {
		t.Error("non-positive weight must fail")
	}
}

func TestCheckBirthdate(t *testing.T) {
	if !CheckBirthdate(time.Now().AddDate(-30, 0, 0)) {
		t.Error("past date must pass")
	}
	if CheckBirthdate(time.Now().AddDate(1, 0, 0)) {
		t.Error("future date must fail")
	}
}
