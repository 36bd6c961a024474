package model

import "gorm.io/gorm"

// ParentCompany is the top of the ownership chain: a conglomerate or holding
// company that owns one or more distilleries.
type ParentCompany struct {
	gorm.Model
	Name       string `gorm:"uniqueIndex;not null"`
	Website    string
	Address1   string `gorm:"column:address_1"`
	Address2   string `gorm:"column:address_2"`
	City       string
	State      string
	PostalCode string
	Country    string

	Distilleries []Distillery `gorm:"foreignKey:ParentCompanyID"`
}
