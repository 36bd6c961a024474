package server

import (
	"errors"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mortlach.dev/Rickhouse/pkg/forms"
	"mortlach.dev/Rickhouse/pkg/model"
	"mortlach.dev/Rickhouse/pkg/repository"
)

const flightSize = 4

func (s *InventoryServer) AddBottle(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		badRequest(c, "Invalid form payload.")

		return
	}

	bottle, err := forms.ParseBottle(c.Request.PostForm)
	if err != nil {
		if errors.Is(err, forms.ErrMissingField) {
			s.logger.Warn("brand id is missing")
			badRequest(c, "Brand is required.")

			return
		}

		badRequest(c, err.Error())

		return
	}

	if _, err = s.repository.GetBrandByID(c.Request.Context(), bottle.BrandID); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			badRequest(c, "Brand not found.")

			return
		}

		internalError(c, "Error adding Bottle.")

		return
	}

	created, err := s.repository.AddBottle(c.Request.Context(), *bottle)
	if err != nil {
		s.logger.Error("error adding bottle", zap.Error(err))
		internalError(c, "Error adding Bottle.")

		return
	}

	s.logger.Info("bottle added", zap.String("expression", created.Expression), zap.Uint("id", created.ID))
	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"bottle_id":  created.ID,
		"expression": created.Expression,
	})
}

// AnalyzeInventory reports the totals and per-brand breakdowns the chart
// pages consume: one dataset over every bottle, one over available bottles.
func (s *InventoryServer) AnalyzeInventory(c *gin.Context) {
	report, err := s.repository.GetInventoryReport(c.Request.Context())
	if err != nil {
		s.logger.Error("error building inventory report", zap.Error(err))
		internalError(c, "Error analyzing inventory.")

		return
	}

	chart1Labels, chart1Values := splitCounts(report.AllByBrand)
	chart2Labels, chart2Values := splitCounts(report.AvailableByBrand)

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"total_bottles":     report.TotalBottles,
		"total_not_emptied": report.AvailableBottles,
		"chart1_labels":     chart1Labels,
		"chart1_values":     chart1Values,
		"chart2_labels":     chart2Labels,
		"chart2_values":     chart2Values,
	})
}

// RandomFlight picks up to four available bottles at random. An empty
// inventory is not an error, the response just flags that nothing was
// available.
func (s *InventoryServer) RandomFlight(c *gin.Context) {
	available, err := s.repository.GetAvailableBottles(c.Request.Context())
	if err != nil {
		s.logger.Error("error fetching available bottles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "An error occurred while fetching bottles.",
		})

		return
	}

	if len(available) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "No bottles available without a date_emptied.",
		})

		return
	}

	rand.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	selected := available
	if len(selected) > flightSize {
		selected = selected[:flightSize]
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bottles": bottlesFromModel(selected)})
}

func splitCounts(counts []model.BrandCount) ([]string, []int64) {
	labels := make([]string, 0, len(counts))
	values := make([]int64, 0, len(counts))

	for _, count := range counts {
		labels = append(labels, count.BrandName)
		values = append(values, count.Count)
	}

	return labels, values
}
