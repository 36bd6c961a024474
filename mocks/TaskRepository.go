package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"mortlach.dev/Rickhouse/pkg/model"
)

type TaskRepository struct {
	mock.Mock
}

func NewTaskRepository(t *testing.T) *TaskRepository {
	t.Helper()

	m := &TaskRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *TaskRepository) AddTask(ctx context.Context, task model.Task) (*model.Task, error) {
	args := m.Called(ctx, task)

	return taskResult(args)
}

func (m *TaskRepository) GetTasks(ctx context.Context) ([]*model.Task, error) {
	args := m.Called(ctx)

	var tasks []*model.Task
	if args.Get(0) != nil {
		tasks = args.Get(0).([]*model.Task)
	}

	return tasks, args.Error(1)
}

func (m *TaskRepository) GetTaskByID(ctx context.Context, id uint) (*model.Task, error) {
	args := m.Called(ctx, id)

	return taskResult(args)
}

func (m *TaskRepository) UpdateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	args := m.Called(ctx, task)

	return taskResult(args)
}

func (m *TaskRepository) DeleteTask(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func taskResult(args mock.Arguments) (*model.Task, error) {
	var task *model.Task
	if args.Get(0) != nil {
		task = args.Get(0).(*model.Task)
	}

	return task, args.Error(1)
}
