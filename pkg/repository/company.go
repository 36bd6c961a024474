package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mortlach.dev/Rickhouse/pkg/model"
)

var ErrParentCompanyNotFound = errors.New("parent company not found")

func (r *Repository) AddParentCompany(ctx context.Context, company model.ParentCompany) (*model.ParentCompany, error) {
	if result := r.DB.WithContext(ctx).Create(&company); result.Error != nil {
		return nil, result.Error
	}

	return &company, nil
}

func (r *Repository) FindParentCompanyByName(ctx context.Context, name string) (*model.ParentCompany, error) {
	var company model.ParentCompany

	result := r.DB.WithContext(ctx).Where("name = ?", name).First(&company)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrParentCompanyNotFound
		}

		return nil, result.Error
	}

	return &company, nil
}

func (r *Repository) GetParentCompanyByID(ctx context.Context, id uint) (*model.ParentCompany, error) {
	var company model.ParentCompany

	result := r.DB.WithContext(ctx).First(&company, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrParentCompanyNotFound
		}

		return nil, result.Error
	}

	return &company, nil
}

func (r *Repository) ListParentCompanies(ctx context.Context) ([]*model.ParentCompany, error) {
	var companies []*model.ParentCompany

	if result := r.DB.WithContext(ctx).Order("name").Find(&companies); result.Error != nil {
		return nil, result.Error
	}

	return companies, nil
}
