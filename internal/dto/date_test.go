package dto

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantNil bool
		wantErr bool
	}{
		{in: "2024-06-01", want: "2024-06-01"},
		{in: "2024-06-01T00:00:00.000Z", want: "2024-06-01"},
		{in: "", wantNil: true},
		{in: "01/06/2024", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tt.in, err)
		}
		if tt.wantNil {
			if got != nil {
				t.Errorf("ParseDate(%q) = %v, want nil", tt.in, got)
			}
			continue
		}
		if s := time.Time(*got).Format(dateLayout); s != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, s, tt.want)
		}
	}
}

func TestBudgetRequestNormalizesYearAndLocation(t *testing.T) {
	zero := uint(0)
	empty := ""
	b := BudgetRequest{FinancialYear: "2024", DistrictID: &zero, Village: &empty}.ToModel()
	if b.FinancialYear != "2024-25" {
		t.Errorf("financial year = %q", b.FinancialYear)
	}
	if b.DistrictID != nil || b.Village != nil {
		t.Errorf("empty location kept: %+v", b)
	}

	b = BudgetRequest{FinancialYear: "2023-24"}.ToModel()
	if b.FinancialYear != "2023-24" {
		t.Errorf("financial year = %q", b.FinancialYear)
	}
}
