package server_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"gorm.io/gorm"

	"mortlach.dev/Rickhouse/pkg/model"
	"mortlach.dev/Rickhouse/pkg/repository"
)

type SearchHandlerTestSuite struct {
	ServerSuite
}

func TestSearchHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SearchHandlerTestSuite))
}

func (suite *SearchHandlerTestSuite) TestSearchRecords_NoTableIsRejected() {
	recorder := suite.postForm("/search_records", url.Values{})
	suite.Equal(http.StatusBadRequest, recorder.Code)

	body := suite.decode(recorder)
	suite.Equal(false, body["success"])
	suite.Equal("No table specified.", body["error"])
}

func (suite *SearchHandlerTestSuite) TestSearchRecords_InvalidTableIsRejected() {
	form := url.Values{}
	form.Set("table", "warehouse")

	recorder := suite.postForm("/search_records", form)
	suite.Equal(http.StatusBadRequest, recorder.Code)

	body := suite.decode(recorder)
	suite.Equal("Invalid table specified.", body["error"])
}

func (suite *SearchHandlerTestSuite) TestSearchRecords_ParentCompanyCriteria() {
	expected := repository.ParentCompanyFilter{Name: pointy.String("saz"), Country: pointy.String("usa")}
	suite.inventoryRepo.On("SearchParentCompanies", mock.Anything, expected).
		Return([]*model.ParentCompany{{Model: gorm.Model{ID: 1}, Name: "Sazerac Company", Country: "USA"}}, nil)

	form := url.Values{}
	form.Set("table", "parent_company")
	form.Set("parent_company_name", " saz ")
	form.Set("country", "usa")

	recorder := suite.postForm("/search_records", form)
	suite.Equal(http.StatusOK, recorder.Code)

	body := suite.decode(recorder)
	suite.Equal(true, body["success"])

	results, ok := body["results"].([]any)
	suite.Require().True(ok)
	suite.Require().Len(results, 1)

	first, ok := results[0].(map[string]any)
	suite.Require().True(ok)
	suite.Equal("Sazerac Company", first["parent_company_name"])
	suite.Equal("USA", first["country"])
}

func (suite *SearchHandlerTestSuite) TestSearchRecords_NoCriteriaReturnsAll() {
	suite.inventoryRepo.On("SearchBrands", mock.Anything, repository.BrandFilter{}).
		Return([]*model.Brand{
			{Model: gorm.Model{ID: 7}, Name: "Eagle Rare", Category: "Bourbon", DistilleryDSP: "DSP-KY-113"},
			{Model: gorm.Model{ID: 4}, Name: "Weller", Category: "Wheated Bourbon", DistilleryDSP: "DSP-KY-113"},
		}, nil)

	form := url.Values{}
	form.Set("table", "brand")

	recorder := suite.postForm("/search_records", form)
	suite.Equal(http.StatusOK, recorder.Code)

	body := suite.decode(recorder)
	results, ok := body["results"].([]any)
	suite.Require().True(ok)
	suite.Len(results, 2)
}

func (suite *SearchHandlerTestSuite) TestSearchRecords_BottleSerializationDenormalizesBrand() {
	expected := repository.BottleFilter{Expression: pointy.String("rare"), BrandID: pointy.Uint(7)}
	suite.inventoryRepo.On("SearchBottles", mock.Anything, expected).
		Return([]*model.Bottle{{
			Model:      gorm.Model{ID: 12},
			BrandID:    7,
			Expression: "Eagle Rare 10 Year",
			Brand:      model.Brand{Model: gorm.Model{ID: 7}, Name: "Eagle Rare", Category: "Bourbon"},
		}}, nil)

	form := url.Values{}
	form.Set("table", "bottle")
	form.Set("expression", "rare")
	form.Set("brand_id", "7")

	recorder := suite.postForm("/search_records", form)
	suite.Equal(http.StatusOK, recorder.Code)

	body := suite.decode(recorder)
	results, ok := body["results"].([]any)
	suite.Require().True(ok)
	suite.Require().Len(results, 1)

	first, ok := results[0].(map[string]any)
	suite.Require().True(ok)
	suite.Equal("Eagle Rare 10 Year", first["expression"])
	suite.Equal("Eagle Rare", first["brand_name"])
	suite.Equal("Bourbon", first["category"])
	suite.Nil(first["proof"])
	suite.Nil(first["date_emptied"])
}

func (suite *SearchHandlerTestSuite) TestSearchRecords_NonNumericBrandIDIsRejected() {
	form := url.Values{}
	form.Set("table", "bottle")
	form.Set("brand_id", "seven")

	recorder := suite.postForm("/search_records", form)
	suite.Equal(http.StatusBadRequest, recorder.Code)

	body := suite.decode(recorder)
	suite.Equal("Invalid value for brand_id.", body["error"])
}
