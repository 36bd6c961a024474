package server

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mortlach.dev/Rickhouse/pkg/repository"
)

// SearchRecords runs a filtered search over one table at a time. The table
// discriminator picks which filter fields apply; blank criteria are ignored,
// so an empty form returns every row of the table.
func (s *InventoryServer) SearchRecords(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		badRequest(c, "Invalid form payload.")

		return
	}

	values := c.Request.PostForm

	table := strings.TrimSpace(values.Get("table"))
	if table == "" {
		s.logger.Warn("no table specified in search")
		badRequest(c, "No table specified.")

		return
	}

	switch table {
	case "parent_company":
		s.searchParentCompanies(c, values)
	case "distillery":
		s.searchDistilleries(c, values)
	case "brand":
		s.searchBrands(c, values)
	case "bottle":
		s.searchBottles(c, values)
	default:
		s.logger.Warn("invalid table specified in search", zap.String("table", table))
		badRequest(c, "Invalid table specified.")
	}
}

func (s *InventoryServer) searchParentCompanies(c *gin.Context, values url.Values) {
	filter := repository.ParentCompanyFilter{
		Name:    criterion(values, "parent_company_name"),
		City:    criterion(values, "city"),
		Country: criterion(values, "country"),
	}

	companies, err := s.repository.SearchParentCompanies(c.Request.Context(), filter)
	if err != nil {
		s.searchFailed(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "results": parentCompaniesFromModel(companies)})
}

func (s *InventoryServer) searchDistilleries(c *gin.Context, values url.Values) {
	filter := repository.DistilleryFilter{
		Name:    criterion(values, "distillery_name"),
		Country: criterion(values, "country"),
	}

	parentCompanyID, ok := uintCriterion(values, "parent_company_id")
	if !ok {
		badRequest(c, "Invalid value for parent_company_id.")

		return
	}

	filter.ParentCompanyID = parentCompanyID

	distilleries, err := s.repository.SearchDistilleries(c.Request.Context(), filter)
	if err != nil {
		s.searchFailed(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "results": distilleriesFromModel(distilleries)})
}

func (s *InventoryServer) searchBrands(c *gin.Context, values url.Values) {
	filter := repository.BrandFilter{
		Name:          criterion(values, "brand_name"),
		Category:      criterion(values, "category"),
		DistilleryDSP: criterion(values, "distillery_id"),
	}

	brands, err := s.repository.SearchBrands(c.Request.Context(), filter)
	if err != nil {
		s.searchFailed(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "results": brandsFromModel(brands)})
}

func (s *InventoryServer) searchBottles(c *gin.Context, values url.Values) {
	filter := repository.BottleFilter{
		Expression: criterion(values, "expression"),
	}

	brandID, ok := uintCriterion(values, "brand_id")
	if !ok {
		badRequest(c, "Invalid value for brand_id.")

		return
	}

	filter.BrandID = brandID

	bottles, err := s.repository.SearchBottles(c.Request.Context(), filter)
	if err != nil {
		s.searchFailed(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "results": bottlesFromModel(bottles)})
}

func (s *InventoryServer) searchFailed(c *gin.Context, err error) {
	s.logger.Error("error searching records", zap.Error(err))
	internalError(c, "An error occurred during the search.")
}

func criterion(values url.Values, key string) *string {
	value := strings.TrimSpace(values.Get(key))
	if value == "" {
		return nil
	}

	return &value
}

func uintCriterion(values url.Values, key string) (*uint, bool) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, true
	}

	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, false
	}

	value := uint(parsed)

	return &value, true
}
