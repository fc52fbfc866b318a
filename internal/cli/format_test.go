package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0"},
		{"25", "$25"},
		{"1234", "$1,234"},
		{"-5", "-$5"},
		{"5.5", "$5.50"},
		{"-1234.567", "-$1,234.57"},
	}
	for _, tt := range tests {
		got := FormatMoney("$", decimal.RequireFromString(tt.in))
		if got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney("$", decimal.NewFromInt(35)); got != "+$35" {
		t.Errorf("FormatSignedMoney(35) = %q, want +$35", got)
	}
	if got := FormatSignedMoney("$", decimal.NewFromInt(-5)); got != "-$5" {
		t.Errorf("FormatSignedMoney(-5) = %q, want -$5", got)
	}
	if got := FormatSignedMoney("$", decimal.Zero); got != "$0" {
		t.Errorf("FormatSignedMoney(0) = %q, want $0", got)
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Errorf("FormatNumber = %q, want 1,234,567", got)
	}
}

func TestFormatImpulse(t *testing.T) {
	if got := FormatImpulse(3); got != "●●●○○" {
		t.Errorf("FormatImpulse(3) = %q", got)
	}
	if got := FormatImpulse(9); got != "●●●●●" {
		t.Errorf("FormatImpulse(9) = %q", got)
	}
}
