package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires the Gin engine with the inventory and task routes plus the
// operational endpoints.
func NewRouter(inventory *InventoryServer, tasks *TaskServer, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(zapLoggerMiddleware(logger))
	router.Use(metricsMiddleware())

	router.POST("/add_parent_company", inventory.AddParentCompany)
	router.POST("/add_distillery", inventory.AddDistillery)
	router.POST("/add_brand", inventory.AddBrand)
	router.POST("/add_bottle", inventory.AddBottle)
	router.POST("/search_records", inventory.SearchRecords)
	router.GET("/analyze_inventory", inventory.AnalyzeInventory)

	api := router.Group("/api")
	api.GET("/random_flight", inventory.RandomFlight)
	api.GET("/parent_companies", inventory.ListParentCompanies)
	api.GET("/distilleries", inventory.ListDistilleries)
	api.GET("/brands", inventory.ListBrands)
	api.GET("/find_bottle", inventory.FindBottle)

	router.GET("/assignment", tasks.ListTasks)
	router.POST("/assignment", tasks.AddTask)
	router.POST("/assignment/update/:id", tasks.UpdateTask)
	router.POST("/assignment/delete/:id", tasks.DeleteTask)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Not found."})
	})

	logger.Info("router initialized")

	return router
}
