package repository

import (
	"context"

	"otbasy/internal/models"
	"otbasy/internal/storage"
)

// TaskRepository persists the task collection.
type TaskRepository struct {
	kv storage.Store
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(kv storage.Store) *TaskRepository {
	return &TaskRepository{kv: kv}
}

// Load returns all tasks; absent or unreadable storage yields an empty
// collection.
func (r *TaskRepository) Load(ctx context.Context) []models.Task {
	return loadCollection[models.Task](ctx, r.kv, storage.KeyTasks)
}

// Save persists the whole task collection.
func (r *TaskRepository) Save(ctx context.Context, tasks []models.Task) error {
	return saveCollection(ctx, r.kv, storage.KeyTasks, tasks)
}

// Add appends one task and persists the collection.
func (r *TaskRepository) Add(ctx context.Context, task models.Task) error {
	tasks := r.Load(ctx)
	tasks = append(tasks, task)
	return r.Save(ctx, tasks)
}

// Update applies a mutation to the task with the given id and persists the
// collection. Updating an unknown id is a no-op.
func (r *TaskRepository) Update(ctx context.Context, taskID string, apply func(*models.Task)) error {
	tasks := r.Load(ctx)
	for i := range tasks {
		if tasks[i].ID == taskID {
			apply(&tasks[i])
			return r.Save(ctx, tasks)
		}
	}
	return nil
}

// Delete removes the task with the given id and persists the collection.
func (r *TaskRepository) Delete(ctx context.Context, taskID string) error {
	tasks := r.Load(ctx)
	filtered := tasks[:0]
	for _, task := range tasks {
		if task.ID != taskID {
			filtered = append(filtered, task)
		}
	}
	return r.Save(ctx, filtered)
}
