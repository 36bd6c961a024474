package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mortlach.dev/Rickhouse/pkg/model"
)

var ErrDistilleryNotFound = errors.New("distillery not found")

func (r *Repository) AddDistillery(ctx context.Context, distillery model.Distillery) (*model.Distillery, error) {
	if result := r.DB.WithContext(ctx).Create(&distillery); result.Error != nil {
		return nil, result.Error
	}

	return &distillery, nil
}

func (r *Repository) GetDistilleryByDSP(ctx context.Context, dsp string) (*model.Distillery, error) {
	var distillery model.Distillery

	result := r.DB.WithContext(ctx).Where("dsp = ?", dsp).First(&distillery)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDistilleryNotFound
		}

		return nil, result.Error
	}

	return &distillery, nil
}

func (r *Repository) ListDistilleries(ctx context.Context) ([]*model.Distillery, error) {
	var distilleries []*model.Distillery

	if result := r.DB.WithContext(ctx).Order("name").Find(&distilleries); result.Error != nil {
		return nil, result.Error
	}

	return distilleries, nil
}
