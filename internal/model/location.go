package model

// State -> District -> Mandal. Villages are not normalized: they are the distinct
// budget.village values recorded under a location.
type State struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"size:255;not null"`
	Code   string `json:"code" gorm:"size:10"`
	Status int    `json:"status" gorm:"default:1"`

	Districts []District `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

type District struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	StateID uint   `json:"state_id" gorm:"not null;index"`
	Name    string `json:"name" gorm:"size:255;not null"`
	Status  int    `json:"status" gorm:"default:1"`

	Mandals []Mandal `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

type Mandal struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	DistrictID uint   `json:"district_id" gorm:"not null;index"`
	Name       string `json:"name" gorm:"size:255;not null"`
	Status     int    `json:"status" gorm:"default:1"`
}
