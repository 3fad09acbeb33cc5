package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"otbasy/internal/models"
)

type fakeDeliverer struct {
	capsules  []models.TimeCapsule
	delivered []string
	failOn    string
}

func (f *fakeDeliverer) DueCapsules(now time.Time) []models.TimeCapsule {
	var due []models.TimeCapsule
	for _, c := range f.capsules {
		if c.IsDue(now) {
			due = append(due, c)
		}
	}
	return due
}

func (f *fakeDeliverer) DeliverTimeCapsule(_ context.Context, capsuleID string) error {
	if capsuleID == f.failOn {
		return errors.New("persist failed")
	}
	f.delivered = append(f.delivered, capsuleID)
	for i := range f.capsules {
		if f.capsules[i].ID == capsuleID {
			f.capsules[i].IsDelivered = true
		}
	}
	return nil
}

func TestDeliverDue(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	fake := &fakeDeliverer{capsules: []models.TimeCapsule{
		{ID: "past", DeliveryDate: now.Add(-time.Hour)},
		{ID: "future", DeliveryDate: now.Add(time.Hour)},
		{ID: "done", DeliveryDate: now.Add(-time.Hour), IsDelivered: true},
	}}
	svc := NewDeliveryService(fake, time.Minute)

	delivered, err := svc.DeliverDue(context.Background(), now)
	if err != nil {
		t.Fatalf("DeliverDue: %v", err)
	}
	if delivered != 1 {
		t.Errorf("delivered = %d, want 1", delivered)
	}
	if len(fake.delivered) != 1 || fake.delivered[0] != "past" {
		t.Errorf("delivered ids = %v, want [past]", fake.delivered)
	}
}

func TestDeliverDueStopsOnError(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	fake := &fakeDeliverer{
		capsules: []models.TimeCapsule{
			{ID: "a", DeliveryDate: now.Add(-2 * time.Hour)},
			{ID: "b", DeliveryDate: now.Add(-time.Hour)},
		},
		failOn: "a",
	}
	svc := NewDeliveryService(fake, time.Minute)

	delivered, err := svc.DeliverDue(context.Background(), now)
	if err == nil {
		t.Fatal("expected sweep to surface the delivery error")
	}
	if delivered != 0 {
		t.Errorf("delivered = %d, want 0", delivered)
	}
}

func TestDeliverDueIsIdempotent(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	fake := &fakeDeliverer{capsules: []models.TimeCapsule{
		{ID: "past", DeliveryDate: now.Add(-time.Hour)},
	}}
	svc := NewDeliveryService(fake, time.Minute)

	if _, err := svc.DeliverDue(context.Background(), now); err != nil {
		t.Fatalf("first sweep: %v", err)
	}
	delivered, err := svc.DeliverDue(context.Background(), now)
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if delivered != 0 {
		t.Errorf("second sweep delivered = %d, want 0", delivered)
	}
}
