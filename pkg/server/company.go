package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mortlach.dev/Rickhouse/pkg/forms"
	"mortlach.dev/Rickhouse/pkg/repository"
)

func (s *InventoryServer) AddParentCompany(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		badRequest(c, "Invalid form payload.")

		return
	}

	company, err := forms.ParseParentCompany(c.Request.PostForm)
	if err != nil {
		if errors.Is(err, forms.ErrMissingField) {
			s.logger.Warn("parent company name is missing")
			badRequest(c, "Parent Company Name is required.")

			return
		}

		badRequest(c, err.Error())

		return
	}

	existing, err := s.repository.FindParentCompanyByName(c.Request.Context(), company.Name)
	if err != nil && !errors.Is(err, repository.ErrParentCompanyNotFound) {
		internalError(c, "Error adding Parent Company.")

		return
	}

	if existing != nil {
		s.logger.Warn("attempted to add duplicate parent company", zap.String("name", company.Name))
		badRequest(c, "Parent Company already exists.")

		return
	}

	created, err := s.repository.AddParentCompany(c.Request.Context(), *company)
	if err != nil {
		// The unique index is the authority; the pre-check above only exists
		// for a friendlier error on the common path.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			badRequest(c, "Parent Company already exists.")

			return
		}

		s.logger.Error("error adding parent company", zap.Error(err))
		internalError(c, "Error adding Parent Company.")

		return
	}

	s.logger.Info("parent company added", zap.String("name", created.Name), zap.Uint("id", created.ID))
	c.JSON(http.StatusCreated, gin.H{
		"success":             true,
		"parent_company_id":   created.ID,
		"parent_company_name": created.Name,
	})
}

func (s *InventoryServer) ListParentCompanies(c *gin.Context) {
	companies, err := s.repository.ListParentCompanies(c.Request.Context())
	if err != nil {
		s.logger.Error("error listing parent companies", zap.Error(err))
		internalError(c, "Error listing Parent Companies.")

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "results": parentCompaniesFromModel(companies)})
}
