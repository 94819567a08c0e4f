package repository

import (
	"fmt"
	"testing"

	"hod-management-backend/internal/dbtest"
)


func TestSearchCapsResults(t *testing.T) {
	cols := []string{"id", "name", "detail"}
	hods := dbtest.Query("FROM `hods` WHERE name LIKE \\? OR department LIKE \\?").
		Returns(cols)
	for i := 1; i <= 5; i++ {
		hods.Rows = append(hods.Rows, dbtest.Row(int64(i), fmt.Sprintf("HOD %d", i), "Health"))
	}
	schemes := dbtest.Query("FROM `schemes` WHERE name LIKE \\? OR scheme_category LIKE \\?").Returns(cols)
	for i := 1; i <= 5; i++ {
		schemes.Rows = append(schemes.Rows, dbtest.Row(int64(i), fmt.Sprintf("Scheme %d", i), "Rural"))
	}
	staff := dbtest.Query("FROM `staff` WHERE").Returns(cols, dbtest.Row(int64(1), "Ravi", "Clerk"))
	officers := dbtest.Query("FROM `nodal_officers` WHERE").Returns(cols)

	db, script := dbtest.New(t, hods, schemes, staff, officers)
	repo := NewSearchRepository(db)

	results, err := repo.Search("ra")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if err := script.ExpectationsMet(); err != nil {
		t.Fatal(err)
	}
	if len(results) != 10 {
		t.Fatalf("results = %d, want 10", len(results))
	}
	if results[0].Type != "HOD" || results[0].Name != "HOD 1 - Health" || results[0].Path != "/hods" {
		t.Fatalf("first = %+v", results[0])
	}
	if results[5].Type != "Scheme" || results[5].Name != "Scheme 1" {
		t.Fatalf("sixth = %+v", results[5])
	}
}

func TestVillagesByMandal(t *testing.T) {
	db, _ := dbtest.New(t,
		dbtest.Query("SELECT DISTINCT village FROM `budget` WHERE mandal_id = \\? AND \\(village IS NOT NULL AND village <> ''\\)").
			WithArgs(int64(12)).
			Returns([]string{"village"}, dbtest.Row("Kondapur"), dbtest.Row("Manikonda")),
	)
	repo := NewLocationRepository(db)

	villages, err := repo.GetVillages(VillagesByMandal, 12)
	if err != nil {
		t.Fatalf("GetVillages: %v", err)
	}
	if len(villages) != 2 || villages[0].Name != "Kondapur" {
		t.Fatalf("villages = %+v", villages)
	}
}
