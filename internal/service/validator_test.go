package service

import (
	"errors"
	"testing"
)

func TestIsValidPhone(t *testing.T) {
	cases := map[string]bool{
		"0812345678":  true,
		"0612345678":  true,
		"0912345678":  true,
		"081234567":   false,
		"1812345678":  false,
		"0712345678":  false,
		"08123456789": false,
		"08-1234567":  false,
		"":            false,
	}
	for phone, want := range cases {
		if got := IsValidPhone(phone); got != want {
			t.Fatalf("IsValidPhone(%q) = %v, want %v", phone, got, want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := map[string]bool{
		"a.b@x.co":              true,
		"somchai_j@mail.co.th":  true,
		"first-last@example.io": true,
		"สมชาย@example.com":     true,
		"user٣@example.com":     true,
		"สมชาย@ตัวอย่าง.com":    false,
		"a@b":                   false,
		"a@b.c":                 false,
		"no-at-sign.com":        false,
		"a b@x.co":              false,
		"":                      false,
	}
	for email, want := range cases {
		if got := IsValidEmail(email); got != want {
			t.Fatalf("IsValidEmail(%q) = %v, want %v", email, got, want)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	if got, err := ParseQuantity(" 3 "); err != nil || got != 3 {
		t.Fatalf("expected 3, got %d err=%v", got, err)
	}
	for _, text := range []string{"0", "-1", "1.5", "abc", ""} {
		_, err := ParseQuantity(text)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("ParseQuantity(%q) expected validation error, got %v", text, err)
		}
		if ValidationField(err) != FieldQuantity {
			t.Fatalf("ParseQuantity(%q) unexpected field: %s", text, ValidationField(err))
		}
	}
}
