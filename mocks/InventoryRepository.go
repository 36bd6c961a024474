// Package mocks holds testify doubles for the repository interfaces used by
// the HTTP handlers.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"mortlach.dev/Rickhouse/pkg/model"
	"mortlach.dev/Rickhouse/pkg/repository"
)

type InventoryRepository struct {
	mock.Mock
}

func NewInventoryRepository(t *testing.T) *InventoryRepository {
	t.Helper()

	m := &InventoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *InventoryRepository) AddParentCompany(ctx context.Context, company model.ParentCompany) (*model.ParentCompany, error) {
	args := m.Called(ctx, company)

	return companyResult(args)
}

func (m *InventoryRepository) FindParentCompanyByName(ctx context.Context, name string) (*model.ParentCompany, error) {
	args := m.Called(ctx, name)

	return companyResult(args)
}

func (m *InventoryRepository) GetParentCompanyByID(ctx context.Context, id uint) (*model.ParentCompany, error) {
	args := m.Called(ctx, id)

	return companyResult(args)
}

func (m *InventoryRepository) ListParentCompanies(ctx context.Context) ([]*model.ParentCompany, error) {
	args := m.Called(ctx)

	return companiesResult(args)
}

func (m *InventoryRepository) AddDistillery(ctx context.Context, distillery model.Distillery) (*model.Distillery, error) {
	args := m.Called(ctx, distillery)

	return distilleryResult(args)
}

func (m *InventoryRepository) GetDistilleryByDSP(ctx context.Context, dsp string) (*model.Distillery, error) {
	args := m.Called(ctx, dsp)

	return distilleryResult(args)
}

func (m *InventoryRepository) ListDistilleries(ctx context.Context) ([]*model.Distillery, error) {
	args := m.Called(ctx)

	return distilleriesResult(args)
}

func (m *InventoryRepository) AddBrand(ctx context.Context, brand model.Brand) (*model.Brand, error) {
	args := m.Called(ctx, brand)

	return brandResult(args)
}

func (m *InventoryRepository) FindBrandByNameAndDistillery(ctx context.Context, name string, dsp string) (*model.Brand, error) {
	args := m.Called(ctx, name, dsp)

	return brandResult(args)
}

func (m *InventoryRepository) GetBrandByID(ctx context.Context, id uint) (*model.Brand, error) {
	args := m.Called(ctx, id)

	return brandResult(args)
}

func (m *InventoryRepository) ListBrands(ctx context.Context) ([]*model.Brand, error) {
	args := m.Called(ctx)

	return brandsResult(args)
}

func (m *InventoryRepository) AddBottle(ctx context.Context, bottle model.Bottle) (*model.Bottle, error) {
	args := m.Called(ctx, bottle)

	return bottleResult(args)
}

func (m *InventoryRepository) GetAvailableBottles(ctx context.Context) ([]*model.Bottle, error) {
	args := m.Called(ctx)

	return bottlesResult(args)
}

func (m *InventoryRepository) GetInventoryReport(ctx context.Context) (*model.InventoryReport, error) {
	args := m.Called(ctx)

	var report *model.InventoryReport
	if args.Get(0) != nil {
		report = args.Get(0).(*model.InventoryReport)
	}

	return report, args.Error(1)
}

func (m *InventoryRepository) SearchParentCompanies(ctx context.Context, filter repository.ParentCompanyFilter) ([]*model.ParentCompany, error) {
	args := m.Called(ctx, filter)

	return companiesResult(args)
}

func (m *InventoryRepository) SearchDistilleries(ctx context.Context, filter repository.DistilleryFilter) ([]*model.Distillery, error) {
	args := m.Called(ctx, filter)

	return distilleriesResult(args)
}

func (m *InventoryRepository) SearchBrands(ctx context.Context, filter repository.BrandFilter) ([]*model.Brand, error) {
	args := m.Called(ctx, filter)

	return brandsResult(args)
}

func (m *InventoryRepository) SearchBottles(ctx context.Context, filter repository.BottleFilter) ([]*model.Bottle, error) {
	args := m.Called(ctx, filter)

	return bottlesResult(args)
}

func companyResult(args mock.Arguments) (*model.ParentCompany, error) {
	var company *model.ParentCompany
	if args.Get(0) != nil {
		company = args.Get(0).(*model.ParentCompany)
	}

	return company, args.Error(1)
}

func companiesResult(args mock.Arguments) ([]*model.ParentCompany, error) {
	var companies []*model.ParentCompany
	if args.Get(0) != nil {
		companies = args.Get(0).([]*model.ParentCompany)
	}

	return companies, args.Error(1)
}

func distilleryResult(args mock.Arguments) (*model.Distillery, error) {
	var distillery *model.Distillery
	if args.Get(0) != nil {
		distillery = args.Get(0).(*model.Distillery)
	}

	return distillery, args.Error(1)
}

func distilleriesResult(args mock.Arguments) ([]*model.Distillery, error) {
	var distilleries []*model.Distillery
	if args.Get(0) != nil {
		distilleries = args.Get(0).([]*model.Distillery)
	}

	return distilleries, args.Error(1)
}

func brandResult(args mock.Arguments) (*model.Brand, error) {
	var brand *model.Brand
	if args.Get(0) != nil {
		brand = args.Get(0).(*model.Brand)
	}

	return brand, args.Error(1)
}

func brandsResult(args mock.Arguments) ([]*model.Brand, error) {
	var brands []*model.Brand
	if args.Get(0) != nil {
		brands = args.Get(0).([]*model.Brand)
	}

	return brands, args.Error(1)
}

func bottleResult(args mock.Arguments) (*model.Bottle, error) {
	var bottle *model.Bottle
	if args.Get(0) != nil {
		bottle = args.Get(0).(*model.Bottle)
	}

	return bottle, args.Error(1)
}

func bottlesResult(args mock.Arguments) ([]*model.Bottle, error) {
	var bottles []*model.Bottle
	if args.Get(0) != nil {
		bottles = args.Get(0).([]*model.Bottle)
	}

	return bottles, args.Error(1)
}
