package model

import "time"

// Distillery is keyed by its DSP (Distilled Spirits Plant) registration code,
// a natural key assigned by the regulator, not a surrogate id.
type Distillery struct {
	DSP             string `gorm:"primaryKey;size:15"`
	Name            string `gorm:"uniqueIndex;not null"`
	ParentCompanyID uint   `gorm:"not null"`
	Website         string
	Address1        string `gorm:"column:address_1"`
	Address2        string `gorm:"column:address_2"`
	City            string
	State           string
	PostalCode      string
	Country         string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	ParentCompany ParentCompany `gorm:"foreignKey:ParentCompanyID"`
	Brands        []Brand       `gorm:"foreignKey:DistilleryDSP;references:DSP"`
}
