package repository

import (
	"context"
	"testing"
	"time"

	"otbasy/internal/models"
	"otbasy/internal/storage"
)

func TestTaskRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(storage.NewMemoryStore())

	due := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)
	created := time.Date(2025, 6, 28, 9, 30, 0, 0, time.UTC)
	tasks := []models.Task{
		{
			ID:          "1751102000000",
			Title:       "Уборка дома",
			Description: "Генеральная уборка в выходные",
			Priority:    models.PriorityMedium,
			FamilyID:    "1",
			FamilyName:  "Семья Касымовых",
			CreatedBy:   "1",
			CreatedAt:   created,
			DueDate:     &due,
		},
		{
			ID:        "1751102000001",
			Title:     "Покупка продуктов",
			Completed: true,
			Priority:  models.PriorityHigh,
			FamilyID:  "1",
			CreatedBy: "1",
			CreatedAt: created,
		},
	}

	if err := repo.Save(ctx, tasks); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := repo.Load(ctx)
	if len(loaded) != len(tasks) {
		t.Fatalf("Load() returned %d tasks, want %d", len(loaded), len(tasks))
	}
	if !loaded[0].CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", loaded[0].CreatedAt, created)
	}
	if loaded[0].DueDate == nil || !loaded[0].DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", loaded[0].DueDate, due)
	}
	if loaded[1].DueDate != nil {
		t.Errorf("DueDate = %v, want nil", loaded[1].DueDate)
	}
	if loaded[0].Title != tasks[0].Title || loaded[1].Completed != tasks[1].Completed {
		t.Error("loaded tasks do not match saved tasks")
	}
}

func TestFamilyRoundTripKeepsNestedFields(t *testing.T) {
	ctx := context.Background()
	repo := NewFamilyRepository(storage.NewMemoryStore())

	created := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	last := models.Message{
		ID:        "m1",
		Text:      "Привет семья!",
		SenderID:  "3",
		Timestamp: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		FamilyID:  "1",
	}
	families := []models.Family{
		{
			ID:   "1",
			Name: "Семья Касымовых",
			Code: "KAS2024",
			Members: []models.FamilyMember{
				{ID: "1", Name: "Айгуль", BirthDate: "1985-03-15", Relationship: "Я"},
				{ID: "2", Name: "Нурлан", BirthDate: "1982-07-22", Relationship: "Супруг"},
			},
			LastMessage: &last,
			UnreadCount: 3,
			CreatedAt:   created,
		},
	}

	if err := repo.Save(ctx, families); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := repo.Load(ctx)
	if len(loaded) != 1 {
		t.Fatalf("Load() returned %d families, want 1", len(loaded))
	}
	family := loaded[0]
	if len(family.Members) != 2 || family.Members[1].BirthDate != "1982-07-22" {
		t.Error("members not reconstructed")
	}
	if family.LastMessage == nil || !family.LastMessage.Timestamp.Equal(last.Timestamp) {
		t.Error("last message timestamp not reconstructed")
	}
	if !family.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", family.CreatedAt, created)
	}
}

func TestLoadToleratesCorruptSlot(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	if err := kv.Set(ctx, storage.KeyTasks, "{not json"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := kv.Set(ctx, storage.KeyUser, "also not json"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if tasks := NewTaskRepository(kv).Load(ctx); len(tasks) != 0 {
		t.Errorf("Load() on corrupt slot returned %d tasks, want 0", len(tasks))
	}
	if user := NewUserRepository(kv).Load(ctx); user != nil {
		t.Errorf("Load() on corrupt user slot = %+v, want nil", user)
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(storage.NewMemoryStore())

	if user := repo.Load(ctx); user != nil {
		t.Fatalf("Load() on empty storage = %+v, want nil", user)
	}

	saved := &models.User{ID: "1", Name: "Айгүл Назарбаева", Email: "aigul@example.com"}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded := repo.Load(ctx)
	if loaded == nil || *loaded != *saved {
		t.Errorf("Load() = %+v, want %+v", loaded, saved)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if user := repo.Load(ctx); user != nil {
		t.Errorf("Load() after Clear() = %+v, want nil", user)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Errorf("Clear() on absent user error = %v, want nil", err)
	}
}

func TestTaskUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(storage.NewMemoryStore())

	seed := []models.Task{
		{ID: "1", Title: "first", Priority: models.PriorityLow},
		{ID: "2", Title: "second", Priority: models.PriorityHigh},
	}
	if err := repo.Save(ctx, seed); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := repo.Update(ctx, "2", func(task *models.Task) {
		task.Completed = true
	}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	tasks := repo.Load(ctx)
	if !tasks[1].Completed {
		t.Error("Update() did not persist the mutation")
	}

	// Unknown id is a no-op, not an error.
	if err := repo.Update(ctx, "999", func(task *models.Task) {
		task.Title = "ghost"
	}); err != nil {
		t.Errorf("Update() on unknown id error = %v, want nil", err)
	}

	if err := repo.Delete(ctx, "1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	tasks = repo.Load(ctx)
	if len(tasks) != 1 || tasks[0].ID != "2" {
		t.Errorf("Delete() left %+v, want only task 2", tasks)
	}
}

func TestSaveNilCollectionStoresEmptyArray(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	repo := NewMessageRepository(kv)

	if err := repo.Save(ctx, nil); err != nil {
		t.Fatalf("Save(nil) error = %v", err)
	}
	raw, ok := kv.Get(ctx, storage.KeyMessages)
	if !ok || raw != "[]" {
		t.Errorf("stored value = %q, want empty JSON array", raw)
	}
}

func TestAIMessageClear(t *testing.T) {
	ctx := context.Background()
	repo := NewAIMessageRepository(storage.NewMemoryStore())

	if err := repo.Add(ctx, models.AIMessage{ID: "1", Text: "hi", IsUser: true, Timestamp: time.Now()}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if messages := repo.Load(ctx); len(messages) != 0 {
		t.Errorf("Load() after Clear() returned %d messages, want 0", len(messages))
	}
}
