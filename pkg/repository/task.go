package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mortlach.dev/Rickhouse/pkg/model"
)

var ErrTaskNotFound = errors.New("task not found")

func (r *Repository) AddTask(ctx context.Context, task model.Task) (*model.Task, error) {
	if result := r.DB.WithContext(ctx).Create(&task); result.Error != nil {
		return nil, result.Error
	}

	return &task, nil
}

func (r *Repository) GetTasks(ctx context.Context) ([]*model.Task, error) {
	var tasks []*model.Task

	if result := r.DB.WithContext(ctx).Order("created_at").Find(&tasks); result.Error != nil {
		return nil, result.Error
	}

	return tasks, nil
}

func (r *Repository) GetTaskByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task

	result := r.DB.WithContext(ctx).First(&task, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}

		return nil, result.Error
	}

	return &task, nil
}

func (r *Repository) UpdateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	if result := r.DB.WithContext(ctx).Save(task); result.Error != nil {
		return nil, result.Error
	}

	return task, nil
}

func (r *Repository) DeleteTask(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Task{}, id)

	return result.Error
}
