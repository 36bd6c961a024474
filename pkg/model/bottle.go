package model

import (
	"time"

	"gorm.io/gorm"
)

// Bottle is a single physical bottle in the collection. Everything beyond the
// owning brand is optional; numeric and date fields are pointers so an absent
// form value stays NULL rather than collapsing to zero.
type Bottle struct {
	gorm.Model
	BrandID                   uint `gorm:"not null"`
	Expression                string
	VolumeML                  *int
	Proof                     *float64
	StatedAge                 *float64
	EstimatedAge              *float64
	PrimaryGrain              string
	PrimaryGrainPercentage    *float64
	SecondaryGrain            string
	SecondaryGrainPercentage  *float64
	TertiaryGrain             string
	TertiaryGrainPercentage   *float64
	QuaternaryGrain           string
	QuaternaryGrainPercentage *float64
	Source                    string
	PricePaid                 *float64
	SRP                       *float64
	DatePurchased             *time.Time
	DateDistilled             *time.Time
	DateBottled               *time.Time
	DateOpened                *time.Time
	DateEmptied               *time.Time
	SingleBarrel              bool
	ChillFiltered             bool
	BottledInBond             bool
	Peated                    bool
	Finished                  bool
	Notes                     string

	Brand Brand `gorm:"foreignKey:BrandID"`
}

// Available reports whether the bottle is still in inventory. An unset
// DateEmptied is the availability signal; there is no stored status column.
func (b *Bottle) Available() bool {
	return b.DateEmptied == nil
}

type BrandCount struct {
	BrandName string
	Count     int64
}

type InventoryReport struct {
	TotalBottles     int64
	AvailableBottles int64
	AllByBrand       []BrandCount
	AvailableByBrand []BrandCount
}
