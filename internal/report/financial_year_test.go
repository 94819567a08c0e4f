package report

import "testing"

func TestFinancialYear(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"2024", "2024-25", true},
		{"2099", "2099-00", true},
		{"2024-25", "2024-25", true},
		{" 2023 ", "2023-24", true},
		{"2024abc", "2024-25", true},
		{"2009", "2009-10", true},
		{"abc", "", false},
		{"", "", false},
		{"All", "", false},
	}
	for _, tt := range tests {
		got, ok := FinancialYear(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FinancialYear(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFinancialYearFromInt(t *testing.T) {
	if got := FinancialYearFromInt(1999); got != "1999-00" {
		t.Fatalf("got %q", got)
	}
	if got := FinancialYearFromInt(2000); got != "2000-01" {
		t.Fatalf("got %q", got)
	}
}
