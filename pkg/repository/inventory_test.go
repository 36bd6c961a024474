package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"mortlach.dev/Rickhouse/pkg/model"
	"mortlach.dev/Rickhouse/pkg/repository"
)

type InventoryTestSuite struct {
	RepositorySuite
}

func TestInventoryTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryTestSuite))
}

func (suite *InventoryTestSuite) TestAddParentCompany_AddsCompany() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "parent_companies" ("created_at","updated_at","deleted_at","name","website","address_1","address_2","city","state","postal_code","country") VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, "Sazerac Company", "https://www.sazerac.com", "101 Magazine St", "", "New Orleans", "LA", "70130", "USA").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)))
	suite.mock.ExpectCommit()

	company := model.ParentCompany{
		Name:       "Sazerac Company",
		Website:    "https://www.sazerac.com",
		Address1:   "101 Magazine St",
		City:       "New Orleans",
		State:      "LA",
		PostalCode: "70130",
		Country:    "USA",
	}
	result, err := suite.repository.AddParentCompany(context.Background(), company)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Equal(uint(1), result.ID)
}

func (suite *InventoryTestSuite) TestFindParentCompanyByName_FindsCompany() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "parent_companies" WHERE name \= \$1 (.+)`).
		WithArgs("Sazerac Company", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(uint(3), "Sazerac Company"))

	company, err := suite.repository.FindParentCompanyByName(context.Background(), "Sazerac Company")
	suite.Require().NoError(err)
	suite.NotNil(company)
	suite.Equal(uint(3), company.ID)
	suite.Equal("Sazerac Company", company.Name)
}

func (suite *InventoryTestSuite) TestFindParentCompanyByName_ReturnsErrorWhenNoRecords() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(gorm.ErrRecordNotFound)

	company, err := suite.repository.FindParentCompanyByName(context.Background(), "Nonesuch Spirits")
	suite.Require().ErrorIs(err, repository.ErrParentCompanyNotFound)
	suite.Nil(company)
	suite.Equal(1, suite.observedLogs.Len())

	errorLog := suite.observedLogs.All()[0]
	suite.Equal("record not found", errorLog.ContextMap()["error"])
}

func (suite *InventoryTestSuite) TestListParentCompanies_OrdersByName() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "parent_companies" WHERE "parent_companies"."deleted_at" IS NULL ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(uint(2), "Beam Suntory").AddRow(uint(1), "Sazerac Company"))

	companies, err := suite.repository.ListParentCompanies(context.Background())
	suite.Require().NoError(err)
	suite.Len(companies, 2)
	suite.Equal("Beam Suntory", companies[0].Name)
	suite.Equal("Sazerac Company", companies[1].Name)
}

func (suite *InventoryTestSuite) TestAddDistillery_AddsDistillery() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "distilleries" ("dsp","name","parent_company_id","website","address_1","address_2","city","state","postal_code","country","created_at","updated_at") VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`)).
		WithArgs("DSP-KY-113", "Buffalo Trace", uint(1), "https://www.buffalotracedistillery.com", "113 Great Buffalo Trace", "", "Frankfort", "KY", "40601", "USA", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	distillery := model.Distillery{
		DSP:             "DSP-KY-113",
		Name:            "Buffalo Trace",
		ParentCompanyID: 1,
		Website:         "https://www.buffalotracedistillery.com",
		Address1:        "113 Great Buffalo Trace",
		City:            "Frankfort",
		State:           "KY",
		PostalCode:      "40601",
		Country:         "USA",
	}
	result, err := suite.repository.AddDistillery(context.Background(), distillery)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Equal("DSP-KY-113", result.DSP)
}

func (suite *InventoryTestSuite) TestGetDistilleryByDSP_FindsDistillery() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "distilleries" WHERE dsp \= \$1 (.+)`).
		WithArgs("DSP-KY-113", 1).
		WillReturnRows(sqlmock.NewRows([]string{"dsp", "name", "parent_company_id"}).
			AddRow("DSP-KY-113", "Buffalo Trace", uint(1)))

	distillery, err := suite.repository.GetDistilleryByDSP(context.Background(), "DSP-KY-113")
	suite.Require().NoError(err)
	suite.NotNil(distillery)
	suite.Equal("Buffalo Trace", distillery.Name)
	suite.Equal(uint(1), distillery.ParentCompanyID)
}

func (suite *InventoryTestSuite) TestGetDistilleryByDSP_ReturnsErrorWhenNoRecords() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(gorm.ErrRecordNotFound)

	distillery, err := suite.repository.GetDistilleryByDSP(context.Background(), "DSP-XX-000")
	suite.Require().ErrorIs(err, repository.ErrDistilleryNotFound)
	suite.Nil(distillery)
}

func (suite *InventoryTestSuite) TestAddBrand_AddsBrand() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "brands" ("created_at","updated_at","deleted_at","name","category","distillery_dsp") VALUES ($1,$2,$3,$4,$5,$6) RETURNING "id"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), nil, "Eagle Rare", "Bourbon", "DSP-KY-113").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(7)))
	suite.mock.ExpectCommit()

	brand := model.Brand{
		Name:          "Eagle Rare",
		Category:      "Bourbon",
		DistilleryDSP: "DSP-KY-113",
	}
	result, err := suite.repository.AddBrand(context.Background(), brand)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Equal(uint(7), result.ID)
}

func (suite *InventoryTestSuite) TestFindBrandByNameAndDistillery_FindsBrand() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "brands" WHERE \(name \= \$1 AND distillery_dsp \= \$2\) (.+)`).
		WithArgs("Eagle Rare", "DSP-KY-113", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category"}).
			AddRow(uint(7), "Eagle Rare", "Bourbon"))

	brand, err := suite.repository.FindBrandByNameAndDistillery(context.Background(), "Eagle Rare", "DSP-KY-113")
	suite.Require().NoError(err)
	suite.NotNil(brand)
	suite.Equal(uint(7), brand.ID)
	suite.Equal("Bourbon", brand.Category)
}

func (suite *InventoryTestSuite) TestGetBrandByID_ReturnsErrorWhenNoRecords() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(gorm.ErrRecordNotFound)

	brand, err := suite.repository.GetBrandByID(context.Background(), 99)
	suite.Require().ErrorIs(err, repository.ErrBrandNotFound)
	suite.Nil(brand)
}

func (suite *InventoryTestSuite) TestListBrands_OrdersByName() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "brands" WHERE "brands"."deleted_at" IS NULL ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category"}).
			AddRow(uint(7), "Eagle Rare", "Bourbon").AddRow(uint(4), "Weller", "Wheated Bourbon"))

	brands, err := suite.repository.ListBrands(context.Background())
	suite.Require().NoError(err)
	suite.Len(brands, 2)
	suite.Equal("Eagle Rare", brands[0].Name)
	suite.Equal("Weller", brands[1].Name)
}
