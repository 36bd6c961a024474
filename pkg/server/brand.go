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

func (s *InventoryServer) AddBrand(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		badRequest(c, "Invalid form payload.")

		return
	}

	brand, err := forms.ParseBrand(c.Request.PostForm)
	if err != nil {
		if errors.Is(err, forms.ErrMissingField) {
			s.logger.Warn("brand name or distillery id is missing")
			badRequest(c, "Brand Name and Distillery are required.")

			return
		}

		badRequest(c, err.Error())

		return
	}

	if _, err = s.repository.GetDistilleryByDSP(c.Request.Context(), brand.DistilleryDSP); err != nil {
		if errors.Is(err, repository.ErrDistilleryNotFound) {
			badRequest(c, "Distillery not found.")

			return
		}

		internalError(c, "Error adding Brand.")

		return
	}

	existing, err := s.repository.FindBrandByNameAndDistillery(c.Request.Context(), brand.Name, brand.DistilleryDSP)
	if err != nil && !errors.Is(err, repository.ErrBrandNotFound) {
		internalError(c, "Error adding Brand.")

		return
	}

	if existing != nil {
		s.logger.Warn("attempted to add duplicate brand",
			zap.String("name", brand.Name), zap.String("dsp", brand.DistilleryDSP))
		badRequest(c, "That Brand already exists.")

		return
	}

	created, err := s.repository.AddBrand(c.Request.Context(), *brand)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			badRequest(c, "That Brand already exists.")

			return
		}

		s.logger.Error("error adding brand", zap.Error(err))
		internalError(c, "Error adding Brand.")

		return
	}

	s.logger.Info("brand added", zap.String("name", created.Name), zap.Uint("id", created.ID))
	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"brand_id":   created.ID,
		"brand_name": created.Name,
	})
}

func (s *InventoryServer) ListBrands(c *gin.Context) {
	brands, err := s.repository.ListBrands(c.Request.Context())
	if err != nil {
		s.logger.Error("error listing brands", zap.Error(err))
		internalError(c, "Error listing Brands.")

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "results": brandsFromModel(brands)})
}
