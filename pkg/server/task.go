package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mortlach.dev/Rickhouse/pkg/forms"
	"mortlach.dev/Rickhouse/pkg/repository"
)

func (s *TaskServer) AddTask(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		badRequest(c, "Invalid form payload.")

		return
	}

	task, err := forms.ParseTask(c.Request.PostForm)
	if err != nil {
		badRequest(c, "Content is required.")

		return
	}

	created, err := s.repository.AddTask(c.Request.Context(), *task)
	if err != nil {
		s.logger.Error("error adding task", zap.Error(err))
		internalError(c, "Error adding task.")

		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "task": taskFromModel(created)})
}

func (s *TaskServer) ListTasks(c *gin.Context) {
	tasks, err := s.repository.GetTasks(c.Request.Context())
	if err != nil {
		s.logger.Error("error listing tasks", zap.Error(err))
		internalError(c, "Error listing tasks.")

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tasks": tasksFromModel(tasks)})
}

func (s *TaskServer) UpdateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		badRequest(c, "Invalid form payload.")

		return
	}

	updated, err := forms.ParseTask(c.Request.PostForm)
	if err != nil {
		badRequest(c, "Content is required.")

		return
	}

	task, err := s.repository.GetTaskByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Task not found."})

			return
		}

		internalError(c, "Error updating task.")

		return
	}

	task.Content = updated.Content

	saved, err := s.repository.UpdateTask(c.Request.Context(), task)
	if err != nil {
		s.logger.Error("error updating task", zap.Error(err), zap.Uint("id", id))
		internalError(c, "Error updating task.")

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "task": taskFromModel(saved)})
}

func (s *TaskServer) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if _, err := s.repository.GetTaskByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Task not found."})

			return
		}

		internalError(c, "Error deleting task.")

		return
	}

	if err := s.repository.DeleteTask(c.Request.Context(), id); err != nil {
		s.logger.Error("error deleting task", zap.Error(err), zap.Uint("id", id))
		badRequest(c, "Error deleting task.")

		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		badRequest(c, "Invalid task id.")

		return 0, false
	}

	return uint(id), true
}
