package repository

import (
	"fmt"

	"hod-management-backend/internal/model"

	"gorm.io/gorm"
)

const (
	searchPerType = 5
	searchLimit   = 10
)

type SearchRepository interface {
	Search(term string) ([]model.SearchResult, error)
}

type searchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db}
}

type searchHit struct {
	ID     uint
	Name   string
	Detail string
}

// Search matches HODs, schemes, staff and nodal officers, at most five of each
// and ten in total.
func (r *searchRepository) Search(term string) ([]model.SearchResult, error) {
	pattern := "%" + term + "%"
	sources := []struct {
		table, detail, kind, path string
		showDetail                bool
	}{
		{"hods", "department", "HOD", "/hods", true},
		{"schemes", "scheme_category", "Scheme", "/schemes", false},
		{"staff", "designation", "Staff", "/staff", true},
		{"nodal_officers", "designation", "Nodal Officer", "/nodal-officers", true},
	}

	results := make([]model.SearchResult, 0, searchLimit)
	for _, src := range sources {
		hits := []searchHit{}
		err := r.db.Table(src.table).
			Select(fmt.Sprintf("id, name, COALESCE(%s, '') AS detail", src.detail)).
			Where(fmt.Sprintf("name LIKE ? OR %s LIKE ?", src.detail), pattern, pattern).
			Order("name").
			Limit(searchPerType).
			Scan(&hits).Error
		if err != nil {
			return nil, err
		}
		for _, h := range hits {
			name := h.Name
			if src.showDetail {
				name = h.Name + " - " + h.Detail
			}
			results = append(results, model.SearchResult{Type: src.kind, Name: name, Path: src.path, ID: h.ID})
		}
	}
	if len(results) > searchLimit {
		results = results[:searchLimit]
	}
	return results, nil
}
