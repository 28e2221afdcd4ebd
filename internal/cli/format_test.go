package cli

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{128000, "128,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney("₹", 128000); got != "₹128,000" {
		t.Errorf("FormatMoney = %q", got)
	}
	if got := FormatMoney("$", -500); got != "-$500" {
		t.Errorf("FormatMoney negative = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(29.77); got != "29.77%" {
		t.Errorf("FormatPercent = %q", got)
	}
	if got := FormatPercent(0); got != "0.00%" {
		t.Errorf("FormatPercent zero = %q", got)
	}
}

func TestFormatDays(t *testing.T) {
	if got := FormatDays(1); got != "1 day" {
		t.Errorf("FormatDays(1) = %q", got)
	}
	if got := FormatDays(50); got != "50 days" {
		t.Errorf("FormatDays(50) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "Oct 10, 2025" {
		t.Errorf("FormatDate = %q", got)
	}
}

func TestMaskCardNumber(t *testing.T) {
	if got := MaskCardNumber("4412"); got != "**** **** **** 4412" {
		t.Errorf("MaskCardNumber = %q", got)
	}
	if got := MaskCardNumber(""); got != "**** **** **** ····" {
		t.Errorf("MaskCardNumber empty = %q", got)
	}
}

func TestOrdinalDay(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {12, "12th"}, {13, "13th"},
		{21, "21st"}, {22, "22nd"}, {23, "23rd"}, {31, "31st"},
	}
	for _, tt := range tests {
		if got := OrdinalDay(tt.day); got != tt.want {
			t.Errorf("OrdinalDay(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestRenderUtilizationBar(t *testing.T) {
	if got := RenderUtilizationBar(5, 10, 10); got != "█████░░░░░" {
		t.Errorf("half bar = %q", got)
	}
	if got := RenderUtilizationBar(20, 10, 10); got != "██████████" {
		t.Errorf("over-limit bar = %q", got)
	}
	if got := RenderUtilizationBar(5, 0, 10); got != "░░░░░░░░░░" {
		t.Errorf("zero-limit bar = %q", got)
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	tests := []struct {
		value, max int64
		width      int
		want       string
	}{
		{50, 100, 10, "█████"},
		{100, 100, 10, "██████████"},
		{200, 100, 10, "██████████"},
		{0, 100, 10, ""},
		{50, 0, 10, ""},
	}
	for _, tt := range tests {
		if got := RenderHorizontalBar(tt.value, tt.max, tt.width); got != tt.want {
			t.Errorf("RenderHorizontalBar(%d, %d, %d) = %q, want %q",
				tt.value, tt.max, tt.width, got, tt.want)
		}
	}
}
