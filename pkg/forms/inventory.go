package forms

import (
	"net/url"

	"mortlach.dev/Rickhouse/pkg/model"
)

func ParseParentCompany(values url.Values) (*model.ParentCompany, error) {
	name, err := required(values, "parent_company_name")
	if err != nil {
		return nil, err
	}

	company := model.ParentCompany{
		Name:       name,
		Website:    text(values, "website"),
		Address1:   text(values, "address_1"),
		Address2:   text(values, "address_2"),
		City:       text(values, "city"),
		State:      text(values, "state"),
		PostalCode: text(values, "postal_code"),
		Country:    text(values, "country"),
	}

	return &company, nil
}

func ParseDistillery(values url.Values) (*model.Distillery, error) {
	dsp, err := required(values, "dsp")
	if err != nil {
		return nil, err
	}

	name, err := required(values, "distillery_name")
	if err != nil {
		return nil, err
	}

	parentCompanyID, err := requiredUint(values, "parent_company_id")
	if err != nil {
		return nil, err
	}

	distillery := model.Distillery{
		DSP:             dsp,
		Name:            name,
		ParentCompanyID: parentCompanyID,
		Website:         text(values, "website"),
		Address1:        text(values, "address_1"),
		Address2:        text(values, "address_2"),
		City:            text(values, "city"),
		State:           text(values, "state"),
		PostalCode:      text(values, "postal_code"),
		Country:         text(values, "country"),
	}

	return &distillery, nil
}

func ParseBrand(values url.Values) (*model.Brand, error) {
	name, err := required(values, "brand_name")
	if err != nil {
		return nil, err
	}

	dsp, err := required(values, "distillery_id")
	if err != nil {
		return nil, err
	}

	brand := model.Brand{
		Name:          name,
		Category:      text(values, "category"),
		DistilleryDSP: dsp,
	}

	return &brand, nil
}

//nolint:funlen // one line per form field
func ParseBottle(values url.Values) (*model.Bottle, error) {
	brandID, err := requiredUint(values, "brand_id")
	if err != nil {
		return nil, err
	}

	bottle := model.Bottle{
		BrandID:         brandID,
		Expression:      text(values, "expression"),
		PrimaryGrain:    text(values, "primary_grain"),
		SecondaryGrain:  text(values, "secondary_grain"),
		TertiaryGrain:   text(values, "tertiary_grain"),
		QuaternaryGrain: text(values, "quaternary_grain"),
		Source:          text(values, "source"),
		Notes:           text(values, "notes"),
		SingleBarrel:    checkbox(values, "single_barrel"),
		ChillFiltered:   checkbox(values, "chill_filtered"),
		BottledInBond:   checkbox(values, "bottled_in_bond"),
		Peated:          checkbox(values, "peated"),
		Finished:        checkbox(values, "finished"),
	}

	if bottle.VolumeML, err = intField(values, "volume_ml"); err != nil {
		return nil, err
	}

	if bottle.Proof, err = floatField(values, "proof"); err != nil {
		return nil, err
	}

	if bottle.StatedAge, err = floatField(values, "stated_age"); err != nil {
		return nil, err
	}

	if bottle.EstimatedAge, err = floatField(values, "estimated_age"); err != nil {
		return nil, err
	}

	if bottle.PrimaryGrainPercentage, err = floatField(values, "primary_grain_percentage"); err != nil {
		return nil, err
	}

	if bottle.SecondaryGrainPercentage, err = floatField(values, "secondary_grain_percentage"); err != nil {
		return nil, err
	}

	if bottle.TertiaryGrainPercentage, err = floatField(values, "tertiary_grain_percentage"); err != nil {
		return nil, err
	}

	if bottle.QuaternaryGrainPercentage, err = floatField(values, "quaternary_grain_percentage"); err != nil {
		return nil, err
	}

	if bottle.PricePaid, err = floatField(values, "price_paid"); err != nil {
		return nil, err
	}

	if bottle.SRP, err = floatField(values, "srp"); err != nil {
		return nil, err
	}

	if bottle.DatePurchased, err = dateField(values, "date_purchased"); err != nil {
		return nil, err
	}

	if bottle.DateDistilled, err = dateField(values, "date_distilled"); err != nil {
		return nil, err
	}

	if bottle.DateBottled, err = dateField(values, "date_bottled"); err != nil {
		return nil, err
	}

	if bottle.DateOpened, err = dateField(values, "date_opened"); err != nil {
		return nil, err
	}

	if bottle.DateEmptied, err = dateField(values, "date_emptied"); err != nil {
		return nil, err
	}

	return &bottle, nil
}

func ParseTask(values url.Values) (*model.Task, error) {
	content, err := required(values, "content")
	if err != nil {
		return nil, err
	}

	return &model.Task{Content: content}, nil
}
