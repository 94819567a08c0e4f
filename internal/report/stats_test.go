package report

import (
	"math"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{150000000, "₹15.00 Cr"},
		{2500000, "₹25.00 L"},
		{100000, "₹1.00 L"},
		{500, "₹500"},
		{0, "₹0"},
		{99999, "₹99,999"},
		{math.NaN(), "₹0"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUtilization(t *testing.T) {
	tests := []struct {
		allocated, utilized float64
		want                int
	}{
		{0, 0, 0},
		{100, 50, 50},
		{3000000, 2000000, 67},
		{0, 500, 0},
		{100, 150, 150},
	}
	for _, tt := range tests {
		if got := Utilization(tt.allocated, tt.utilized); got != tt.want {
			t.Errorf("Utilization(%v, %v) = %d, want %d", tt.allocated, tt.utilized, got, tt.want)
		}
	}
}

func TestAttendanceRate(t *testing.T) {
	if got := AttendanceRate(0, 0, 95); got != 95 {
		t.Fatalf("empty rate = %d, want fallback 95", got)
	}
	if got := AttendanceRate(2, 3, 95); got != 67 {
		t.Fatalf("rate = %d, want 67", got)
	}
	if got := AttendanceRate(0, 4, 95); got != 0 {
		t.Fatalf("rate = %d, want 0", got)
	}
}

func TestFormatBeneficiaries(t *testing.T) {
	tests := map[int64]string{
		2500000: "25L+",
		4500:    "5K+",
		999:     "999",
	}
	for in, want := range tests {
		if got := FormatBeneficiaries(in); got != want {
			t.Errorf("FormatBeneficiaries(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestShare(t *testing.T) {
	if got := Share(1, 3); got != 33.3 {
		t.Fatalf("Share = %v", got)
	}
	if got := Share(5, 0); got != 0 {
		t.Fatalf("Share = %v", got)
	}
}
