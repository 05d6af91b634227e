package models

import (
	"encoding/json"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    Amount
		wantErr bool
	}{
		{"100000", 10000000, false},
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"12.346", 1235, false}, // half-up on third decimal
		{"0", 0, false},        // zero is a valid amount
		{"-5", 0, true},
		{"+5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1.2.3", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAmount(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAmountJSON(t *testing.T) {
	// Amounts must survive a JSON round trip exactly, to two decimals.
	out, err := json.Marshal(Amount(1234))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != "12.34" {
		t.Errorf("expected 12.34, got %s", out)
	}

	var a Amount
	if err := json.Unmarshal([]byte("50000"), &a); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if a != 5000000 {
		t.Errorf("expected 5000000 cents, got %v", a)
	}

	if err := json.Unmarshal([]byte(`"12,50"`), &a); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if a != 1250 {
		t.Errorf("expected 1250 cents, got %v", a)
	}

	// Bad input is rejected, never coerced to zero.
	for _, bad := range []string{`-1`, `"abc"`, `null`, `true`} {
		if err := json.Unmarshal([]byte(bad), &a); err == nil {
			t.Errorf("expected error unmarshaling %s", bad)
		}
	}
}

func TestAmountString(t *testing.T) {
	if got := Amount(10000000).String(); got != "100000.00" {
		t.Errorf("expected 100000.00, got %s", got)
	}
	if got := Amount(5).String(); got != "0.05" {
		t.Errorf("expected 0.05, got %s", got)
	}
	if got := Amount(-1250).String(); got != "-12.50" {
		t.Errorf("expected -12.50, got %s", got)
	}
}
