package report

import (
	"reflect"
	"testing"
)

func TestBudgetBars(t *testing.T) {
	rows := []HODBudget{
		{HODName: "A", Allocated: 30000000, Utilized: 15000000},
		{HODName: "B"},
	}
	s := BudgetBars(rows)
	if !reflect.DeepEqual(s.Labels, []string{"A", "B"}) {
		t.Fatalf("labels = %v", s.Labels)
	}
	if len(s.Datasets) != 2 {
		t.Fatalf("datasets = %d", len(s.Datasets))
	}
	if !reflect.DeepEqual(s.Datasets[0].Data, []float64{3, 0}) || !reflect.DeepEqual(s.Datasets[1].Data, []float64{1.5, 0}) {
		t.Fatalf("data = %v / %v", s.Datasets[0].Data, s.Datasets[1].Data)
	}
}

func TestAttendancePie(t *testing.T) {
	s := AttendancePie([]HODAttendance{
		{Present: 3, Absent: 1, HalfDay: 1},
		{Present: 2, OnLeave: 4},
	})
	want := []float64{5, 1, 1, 4}
	if !reflect.DeepEqual(s.Datasets[0].Data, want) {
		t.Fatalf("data = %v, want %v", s.Datasets[0].Data, want)
	}
}

func TestEmptySeriesKeepsSlices(t *testing.T) {
	s := SchemesPie(nil)
	if s.Labels == nil || s.Datasets[0].Data == nil {
		t.Fatal("expected empty, non-nil slices for JSON arrays")
	}
}
