package model

import "gorm.io/gorm"

// Brand names can repeat across distilleries (sourced whiskey), so the
// uniqueness constraint is on the (name, distillery) pair.
type Brand struct {
	gorm.Model
	Name          string `gorm:"uniqueIndex:idx_brand_distillery;not null"`
	Category      string
	DistilleryDSP string `gorm:"size:15;uniqueIndex:idx_brand_distillery;not null"`

	Distillery Distillery `gorm:"foreignKey:DistilleryDSP;references:DSP"`
	Bottles    []Bottle   `gorm:"foreignKey:BrandID"`
}
