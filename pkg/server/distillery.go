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

func (s *InventoryServer) AddDistillery(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		badRequest(c, "Invalid form payload.")

		return
	}

	distillery, err := forms.ParseDistillery(c.Request.PostForm)
	if err != nil {
		if errors.Is(err, forms.ErrMissingField) {
			s.logger.Warn("dsp, distillery name, or parent company id is missing")
			badRequest(c, "DSP, Distillery Name, and Parent Company are required.")

			return
		}

		badRequest(c, err.Error())

		return
	}

	if _, err = s.repository.GetParentCompanyByID(c.Request.Context(), distillery.ParentCompanyID); err != nil {
		if errors.Is(err, repository.ErrParentCompanyNotFound) {
			badRequest(c, "Parent Company not found.")

			return
		}

		internalError(c, "Error adding Distillery.")

		return
	}

	existing, err := s.repository.GetDistilleryByDSP(c.Request.Context(), distillery.DSP)
	if err != nil && !errors.Is(err, repository.ErrDistilleryNotFound) {
		internalError(c, "Error adding Distillery.")

		return
	}

	if existing != nil {
		s.logger.Warn("attempted to add duplicate distillery", zap.String("dsp", distillery.DSP))
		badRequest(c, "That Distillery already exists.")

		return
	}

	created, err := s.repository.AddDistillery(c.Request.Context(), *distillery)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			badRequest(c, "That Distillery already exists.")

			return
		}

		s.logger.Error("error adding distillery", zap.Error(err))
		internalError(c, "Error adding Distillery.")

		return
	}

	s.logger.Info("distillery added", zap.String("name", created.Name), zap.String("dsp", created.DSP))
	c.JSON(http.StatusCreated, gin.H{
		"success":         true,
		"dsp":             created.DSP,
		"distillery_name": created.Name,
	})
}

func (s *InventoryServer) ListDistilleries(c *gin.Context) {
	distilleries, err := s.repository.ListDistilleries(c.Request.Context())
	if err != nil {
		s.logger.Error("error listing distilleries", zap.Error(err))
		internalError(c, "Error listing Distilleries.")

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "results": distilleriesFromModel(distilleries)})
}
