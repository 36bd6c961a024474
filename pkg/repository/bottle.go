package repository

import (
	"context"

	"mortlach.dev/Rickhouse/pkg/model"
)

func (r *Repository) AddBottle(ctx context.Context, bottle model.Bottle) (*model.Bottle, error) {
	if result := r.DB.WithContext(ctx).Omit("Brand").Create(&bottle); result.Error != nil {
		return nil, result.Error
	}

	return &bottle, nil
}

// GetAvailableBottles returns every bottle still in inventory, i.e. with no
// date_emptied, with the owning brand joined for denormalized serialization.
func (r *Repository) GetAvailableBottles(ctx context.Context) ([]*model.Bottle, error) {
	var bottles []*model.Bottle

	result := r.DB.WithContext(ctx).
		Joins("Brand").
		Where("bottles.date_emptied IS NULL").
		Find(&bottles)
	if result.Error != nil {
		return nil, result.Error
	}

	return bottles, nil
}

func (r *Repository) GetInventoryReport(ctx context.Context) (*model.InventoryReport, error) {
	var report model.InventoryReport

	if result := r.DB.WithContext(ctx).Model(&model.Bottle{}).Count(&report.TotalBottles); result.Error != nil {
		return nil, result.Error
	}

	result := r.DB.WithContext(ctx).Model(&model.Bottle{}).
		Where("date_emptied IS NULL").
		Count(&report.AvailableBottles)
	if result.Error != nil {
		return nil, result.Error
	}

	allByBrand, err := r.countBottlesByBrand(ctx, false)
	if err != nil {
		return nil, err
	}

	availableByBrand, err := r.countBottlesByBrand(ctx, true)
	if err != nil {
		return nil, err
	}

	report.AllByBrand = allByBrand
	report.AvailableByBrand = availableByBrand

	return &report, nil
}

func (r *Repository) countBottlesByBrand(ctx context.Context, availableOnly bool) ([]model.BrandCount, error) {
	var counts []model.BrandCount

	query := r.DB.WithContext(ctx).Table("bottles").
		Select("brands.name as brand_name, count(bottles.id) as count").
		Joins("INNER JOIN brands ON brands.id = bottles.brand_id").
		Where("bottles.deleted_at IS NULL").
		Group("brands.name").
		Order("brands.name")

	if availableOnly {
		query = query.Where("bottles.date_emptied IS NULL")
	}

	if result := query.Scan(&counts); result.Error != nil {
		return nil, result.Error
	}

	return counts, nil
}
