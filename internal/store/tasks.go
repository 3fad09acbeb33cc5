package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"otbasy/internal/models"
)

var ErrTaskNotFound = errors.New("task not found")

// AddTask creates a task with a fresh id and creation timestamp. New tasks
// always start incomplete.
func (s *Store) AddTask(ctx context.Context, task models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.currentUser()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	task.ID = s.newID()
	task.CreatedAt = s.now()
	task.Completed = false
	if task.CreatedBy == "" {
		task.CreatedBy = user.ID
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	prev := s.tasks
	s.tasks = append(slices.Clone(s.tasks), task)

	if err := s.taskRepo.Save(ctx, s.tasks); err != nil {
		s.tasks = prev
		return nil, fmt.Errorf("persisting tasks: %w", err)
	}
	return &task, nil
}

// UpdateTask applies a partial update to one task. The id, creation
// timestamp and creator are preserved regardless of what apply does.
func (s *Store) UpdateTask(ctx context.Context, taskID string, apply func(*models.Task)) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.tasks
	tasks := slices.Clone(s.tasks)
	index := -1
	for i := range tasks {
		if tasks[i].ID == taskID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrTaskNotFound
	}

	id, createdAt, createdBy := tasks[index].ID, tasks[index].CreatedAt, tasks[index].CreatedBy
	apply(&tasks[index])
	tasks[index].ID = id
	tasks[index].CreatedAt = createdAt
	tasks[index].CreatedBy = createdBy
	if err := tasks[index].Validate(); err != nil {
		return nil, err
	}
	s.tasks = tasks

	if err := s.taskRepo.Save(ctx, s.tasks); err != nil {
		s.tasks = prev
		return nil, fmt.Errorf("persisting tasks: %w", err)
	}
	updated := tasks[index]
	return &updated, nil
}

// ToggleTaskComplete inverts the completion flag of one task.
func (s *Store) ToggleTaskComplete(ctx context.Context, taskID string) (*models.Task, error) {
	return s.UpdateTask(ctx, taskID, func(task *models.Task) {
		task.Completed = !task.Completed
	})
}

// DeleteTask removes one task. Deleting an unknown id is an error.
func (s *Store) DeleteTask(ctx context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.tasks
	tasks := slices.Clone(s.tasks)
	filtered := tasks[:0]
	for _, task := range tasks {
		if task.ID != taskID {
			filtered = append(filtered, task)
		}
	}
	if len(filtered) == len(tasks) {
		return ErrTaskNotFound
	}
	s.tasks = slices.Clone(filtered)

	if err := s.taskRepo.Save(ctx, s.tasks); err != nil {
		s.tasks = prev
		return fmt.Errorf("persisting tasks: %w", err)
	}
	return nil
}
