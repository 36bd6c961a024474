package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mortlach.dev/Rickhouse/pkg/integrations"
	"mortlach.dev/Rickhouse/pkg/model"
)

// FindBottle queries the configured external whiskey databases for bottle
// details, for pre-filling the add-bottle form.
func (s *InventoryServer) FindBottle(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		badRequest(c, "Bottle name is required.")

		return
	}

	var results []*model.Bottle

	for _, integrationName := range s.config.Integrations.Whiskey {
		integration := integrations.GetIntegration(integrationName, s.logger)
		if integration == nil {
			s.logger.Warn("unknown whiskey integration", zap.String("name", integrationName))

			continue
		}

		found, err := integration.FindBottle(name)
		if err != nil {
			s.logger.Error("integration lookup failed",
				zap.String("integration", integrationName), zap.Error(err))

			continue
		}

		for i := range found {
			results = append(results, &found[i])
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "results": bottlesFromModel(results)})
}
