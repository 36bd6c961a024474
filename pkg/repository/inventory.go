package repository

import (
	"context"

	"mortlach.dev/Rickhouse/pkg/model"
)

type InventoryRepository interface { //nolint:interfacebloat // this is an acceptable interface
	AddParentCompany(ctx context.Context, company model.ParentCompany) (*model.ParentCompany, error)
	FindParentCompanyByName(ctx context.Context, name string) (*model.ParentCompany, error)
	GetParentCompanyByID(ctx context.Context, id uint) (*model.ParentCompany, error)
	ListParentCompanies(ctx context.Context) ([]*model.ParentCompany, error)
	AddDistillery(ctx context.Context, distillery model.Distillery) (*model.Distillery, error)
	GetDistilleryByDSP(ctx context.Context, dsp string) (*model.Distillery, error)
	ListDistilleries(ctx context.Context) ([]*model.Distillery, error)
	AddBrand(ctx context.Context, brand model.Brand) (*model.Brand, error)
	FindBrandByNameAndDistillery(ctx context.Context, name string, dsp string) (*model.Brand, error)
	GetBrandByID(ctx context.Context, id uint) (*model.Brand, error)
	ListBrands(ctx context.Context) ([]*model.Brand, error)
	AddBottle(ctx context.Context, bottle model.Bottle) (*model.Bottle, error)
	GetAvailableBottles(ctx context.Context) ([]*model.Bottle, error)
	GetInventoryReport(ctx context.Context) (*model.InventoryReport, error)
	SearchParentCompanies(ctx context.Context, filter ParentCompanyFilter) ([]*model.ParentCompany, error)
	SearchDistilleries(ctx context.Context, filter DistilleryFilter) ([]*model.Distillery, error)
	SearchBrands(ctx context.Context, filter BrandFilter) ([]*model.Brand, error)
	SearchBottles(ctx context.Context, filter BottleFilter) ([]*model.Bottle, error)
}

type TaskRepository interface {
	AddTask(ctx context.Context, task model.Task) (*model.Task, error)
	GetTasks(ctx context.Context) ([]*model.Task, error)
	GetTaskByID(ctx context.Context, id uint) (*model.Task, error)
	UpdateTask(ctx context.Context, task *model.Task) (*model.Task, error)
	DeleteTask(ctx context.Context, id uint) error
}
