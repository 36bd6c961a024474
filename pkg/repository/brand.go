package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mortlach.dev/Rickhouse/pkg/model"
)

var ErrBrandNotFound = errors.New("brand not found")

func (r *Repository) AddBrand(ctx context.Context, brand model.Brand) (*model.Brand, error) {
	if result := r.DB.WithContext(ctx).Create(&brand); result.Error != nil {
		return nil, result.Error
	}

	return &brand, nil
}

func (r *Repository) FindBrandByNameAndDistillery(ctx context.Context, name string, dsp string) (*model.Brand, error) {
	var brand model.Brand

	result := r.DB.WithContext(ctx).
		Where("name = ? AND distillery_dsp = ?", name, dsp).
		First(&brand)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}

		return nil, result.Error
	}

	return &brand, nil
}

func (r *Repository) GetBrandByID(ctx context.Context, id uint) (*model.Brand, error) {
	var brand model.Brand

	result := r.DB.WithContext(ctx).First(&brand, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}

		return nil, result.Error
	}

	return &brand, nil
}

func (r *Repository) ListBrands(ctx context.Context) ([]*model.Brand, error) {
	var brands []*model.Brand

	if result := r.DB.WithContext(ctx).Order("name").Find(&brands); result.Error != nil {
		return nil, result.Error
	}

	return brands, nil
}
