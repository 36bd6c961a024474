// Package server exposes the inventory over a form-encoded HTTP surface:
// create endpoints for each entity, a cross-entity search endpoint, the
// inventory report, and the random flight picker.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mortlach.dev/Rickhouse/configs"
	"mortlach.dev/Rickhouse/pkg/repository"
)

type InventoryServer struct {
	logger     *zap.Logger
	repository repository.InventoryRepository
	config     *configs.Config
}

func NewInventoryServer(repo repository.InventoryRepository, logger *zap.Logger, conf *configs.Config) *InventoryServer {
	return &InventoryServer{repository: repo, logger: logger, config: conf}
}

type TaskServer struct {
	logger     *zap.Logger
	repository repository.TaskRepository
}

func NewTaskServer(repo repository.TaskRepository, logger *zap.Logger) *TaskServer {
	return &TaskServer{repository: repo, logger: logger}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

func internalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": message})
}
