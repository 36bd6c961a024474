package server

import (
	"time"

	"mortlach.dev/Rickhouse/pkg/model"
)

// The JSON field names match what the frontend forms and chart pages already
// consume, so they track the form field names rather than the Go names.

type parentCompanyJSON struct {
	ID         uint   `json:"parent_company_id"`
	Name       string `json:"parent_company_name"`
	Website    string `json:"website"`
	Address1   string `json:"address_1"`
	Address2   string `json:"address_2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type distilleryJSON struct {
	DSP             string `json:"dsp"`
	Name            string `json:"distillery_name"`
	ParentCompanyID uint   `json:"parent_company_id"`
	Website         string `json:"website"`
	Address1        string `json:"address_1"`
	Address2        string `json:"address_2"`
	City            string `json:"city"`
	State           string `json:"state"`
	PostalCode      string `json:"postal_code"`
	Country         string `json:"country"`
}

type brandJSON struct {
	ID            uint   `json:"brand_id"`
	Name          string `json:"brand_name"`
	Category      string `json:"category"`
	DistilleryDSP string `json:"distillery_id"`
}

// bottleJSON denormalizes the owning brand so flight and search results can
// be rendered without a second lookup. Optional fields marshal as null.
type bottleJSON struct {
	ID                        uint     `json:"bottle_id"`
	BrandID                   uint     `json:"brand_id"`
	Expression                string   `json:"expression"`
	BrandName                 string   `json:"brand_name"`
	Category                  string   `json:"category"`
	VolumeML                  *int     `json:"volume_ml"`
	Proof                     *float64 `json:"proof"`
	StatedAge                 *float64 `json:"stated_age"`
	EstimatedAge              *float64 `json:"estimated_age"`
	PrimaryGrain              string   `json:"primary_grain"`
	PrimaryGrainPercentage    *float64 `json:"primary_grain_percentage"`
	SecondaryGrain            string   `json:"secondary_grain"`
	SecondaryGrainPercentage  *float64 `json:"secondary_grain_percentage"`
	TertiaryGrain             string   `json:"tertiary_grain"`
	TertiaryGrainPercentage   *float64 `json:"tertiary_grain_percentage"`
	QuaternaryGrain           string   `json:"quaternary_grain"`
	QuaternaryGrainPercentage *float64 `json:"quaternary_grain_percentage"`
	Source                    string   `json:"source"`
	PricePaid                 *float64 `json:"price_paid"`
	SRP                       *float64 `json:"srp"`
	DatePurchased             *string  `json:"date_purchased"`
	DateDistilled             *string  `json:"date_distilled"`
	DateBottled               *string  `json:"date_bottled"`
	DateOpened                *string  `json:"date_opened"`
	DateEmptied               *string  `json:"date_emptied"`
	SingleBarrel              bool     `json:"single_barrel"`
	ChillFiltered             bool     `json:"chill_filtered"`
	BottledInBond             bool     `json:"bottled_in_bond"`
	Peated                    bool     `json:"peated"`
	Finished                  bool     `json:"finished"`
	Notes                     string   `json:"notes"`
}

type taskJSON struct {
	ID        uint   `json:"task_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"date_created"`
}

func parentCompanyFromModel(company *model.ParentCompany) parentCompanyJSON {
	return parentCompanyJSON{
		ID:         company.ID,
		Name:       company.Name,
		Website:    company.Website,
		Address1:   company.Address1,
		Address2:   company.Address2,
		City:       company.City,
		State:      company.State,
		PostalCode: company.PostalCode,
		Country:    company.Country,
	}
}

func parentCompaniesFromModel(companies []*model.ParentCompany) []parentCompanyJSON {
	results := make([]parentCompanyJSON, 0, len(companies))
	for _, company := range companies {
		results = append(results, parentCompanyFromModel(company))
	}

	return results
}

func distilleryFromModel(distillery *model.Distillery) distilleryJSON {
	return distilleryJSON{
		DSP:             distillery.DSP,
		Name:            distillery.Name,
		ParentCompanyID: distillery.ParentCompanyID,
		Website:         distillery.Website,
		Address1:        distillery.Address1,
		Address2:        distillery.Address2,
		City:            distillery.City,
		State:           distillery.State,
		PostalCode:      distillery.PostalCode,
		Country:         distillery.Country,
	}
}

func distilleriesFromModel(distilleries []*model.Distillery) []distilleryJSON {
	results := make([]distilleryJSON, 0, len(distilleries))
	for _, distillery := range distilleries {
		results = append(results, distilleryFromModel(distillery))
	}

	return results
}

func brandFromModel(brand *model.Brand) brandJSON {
	return brandJSON{
		ID:            brand.ID,
		Name:          brand.Name,
		Category:      brand.Category,
		DistilleryDSP: brand.DistilleryDSP,
	}
}

func brandsFromModel(brands []*model.Brand) []brandJSON {
	results := make([]brandJSON, 0, len(brands))
	for _, brand := range brands {
		results = append(results, brandFromModel(brand))
	}

	return results
}

//nolint:funlen // one line per serialized field
func bottleFromModel(bottle *model.Bottle) bottleJSON {
	return bottleJSON{
		ID:                        bottle.ID,
		BrandID:                   bottle.BrandID,
		Expression:                bottle.Expression,
		BrandName:                 bottle.Brand.Name,
		Category:                  bottle.Brand.Category,
		VolumeML:                  bottle.VolumeML,
		Proof:                     bottle.Proof,
		StatedAge:                 bottle.StatedAge,
		EstimatedAge:              bottle.EstimatedAge,
		PrimaryGrain:              bottle.PrimaryGrain,
		PrimaryGrainPercentage:    bottle.PrimaryGrainPercentage,
		SecondaryGrain:            bottle.SecondaryGrain,
		SecondaryGrainPercentage:  bottle.SecondaryGrainPercentage,
		TertiaryGrain:             bottle.TertiaryGrain,
		TertiaryGrainPercentage:   bottle.TertiaryGrainPercentage,
		QuaternaryGrain:           bottle.QuaternaryGrain,
		QuaternaryGrainPercentage: bottle.QuaternaryGrainPercentage,
		Source:                    bottle.Source,
		PricePaid:                 bottle.PricePaid,
		SRP:                       bottle.SRP,
		DatePurchased:             isoDate(bottle.DatePurchased),
		DateDistilled:             isoDate(bottle.DateDistilled),
		DateBottled:               isoDate(bottle.DateBottled),
		DateOpened:                isoDate(bottle.DateOpened),
		DateEmptied:               isoDate(bottle.DateEmptied),
		SingleBarrel:              bottle.SingleBarrel,
		ChillFiltered:             bottle.ChillFiltered,
		BottledInBond:             bottle.BottledInBond,
		Peated:                    bottle.Peated,
		Finished:                  bottle.Finished,
		Notes:                     bottle.Notes,
	}
}

func bottlesFromModel(bottles []*model.Bottle) []bottleJSON {
	results := make([]bottleJSON, 0, len(bottles))
	for _, bottle := range bottles {
		results = append(results, bottleFromModel(bottle))
	}

	return results
}

func taskFromModel(task *model.Task) taskJSON {
	return taskJSON{
		ID:        task.ID,
		Content:   task.Content,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
	}
}

func tasksFromModel(tasks []*model.Task) []taskJSON {
	results := make([]taskJSON, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, taskFromModel(task))
	}

	return results
}

func isoDate(value *time.Time) *string {
	if value == nil {
		return nil
	}

	formatted := value.Format("2006-01-02")

	return &formatted
}
