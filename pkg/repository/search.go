package repository

import (
	"context"

	"gorm.io/gorm"

	"mortlach.dev/Rickhouse/pkg/model"
)

// ParentCompanyFilter holds optional search criteria; nil fields are ignored.
type ParentCompanyFilter struct {
	Name    *string
	City    *string
	Country *string
}

type DistilleryFilter struct {
	Name            *string
	ParentCompanyID *uint
	Country         *string
}

type BrandFilter struct {
	Name          *string
	Category      *string
	DistilleryDSP *string
}

type BottleFilter struct {
	Expression *string
	BrandID    *uint
}

func (r *Repository) SearchParentCompanies(ctx context.Context, filter ParentCompanyFilter) ([]*model.ParentCompany, error) {
	query := r.DB.WithContext(ctx).Model(&model.ParentCompany{})
	query = addContainsCriteria(query, "name", filter.Name)
	query = addContainsCriteria(query, "city", filter.City)
	query = addContainsCriteria(query, "country", filter.Country)

	var companies []*model.ParentCompany
	if result := query.Order("name").Find(&companies); result.Error != nil {
		return nil, result.Error
	}

	return companies, nil
}

func (r *Repository) SearchDistilleries(ctx context.Context, filter DistilleryFilter) ([]*model.Distillery, error) {
	query := r.DB.WithContext(ctx).Model(&model.Distillery{})
	query = addContainsCriteria(query, "name", filter.Name)
	query = addContainsCriteria(query, "country", filter.Country)

	if filter.ParentCompanyID != nil {
		query = query.Where("parent_company_id = ?", *filter.ParentCompanyID)
	}

	var distilleries []*model.Distillery
	if result := query.Order("name").Find(&distilleries); result.Error != nil {
		return nil, result.Error
	}

	return distilleries, nil
}

func (r *Repository) SearchBrands(ctx context.Context, filter BrandFilter) ([]*model.Brand, error) {
	query := r.DB.WithContext(ctx).Model(&model.Brand{})
	query = addContainsCriteria(query, "name", filter.Name)
	query = addContainsCriteria(query, "category", filter.Category)

	if filter.DistilleryDSP != nil {
		query = query.Where("distillery_dsp = ?", *filter.DistilleryDSP)
	}

	var brands []*model.Brand
	if result := query.Order("name").Find(&brands); result.Error != nil {
		return nil, result.Error
	}

	return brands, nil
}

func (r *Repository) SearchBottles(ctx context.Context, filter BottleFilter) ([]*model.Bottle, error) {
	query := r.DB.WithContext(ctx).Model(&model.Bottle{}).Joins("Brand")
	query = addContainsCriteria(query, "bottles.expression", filter.Expression)

	if filter.BrandID != nil {
		query = query.Where("bottles.brand_id = ?", *filter.BrandID)
	}

	var bottles []*model.Bottle
	if result := query.Order("bottles.expression").Find(&bottles); result.Error != nil {
		return nil, result.Error
	}

	return bottles, nil
}

func addContainsCriteria(query *gorm.DB, column string, value *string) *gorm.DB {
	if value == nil || *value == "" {
		return query
	}

	return query.Where(column+" ILIKE ?", "%"+*value+"%")
}
