package service

import (
	"context"
	"log"
	"time"

	"otbasy/internal/models"
)

// CapsuleDeliverer is the slice of the state store the scheduler needs.
type CapsuleDeliverer interface {
	DueCapsules(now time.Time) []models.TimeCapsule
	DeliverTimeCapsule(ctx context.Context, capsuleID string) error
}

// DeliveryService periodically posts due time capsules into their family
// chats.
type DeliveryService struct {
	store    CapsuleDeliverer
	interval time.Duration
	now      func() time.Time
}

// NewDeliveryService creates the capsule delivery scheduler.
func NewDeliveryService(store CapsuleDeliverer, interval time.Duration) *DeliveryService {
	return &DeliveryService{
		store:    store,
		interval: interval,
		now:      time.Now,
	}
}

// Start runs the delivery loop until ctx is cancelled. One sweep runs
// immediately on start.
func (s *DeliveryService) Start(ctx context.Context) {
	go func() {
		s.sweep(ctx)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *DeliveryService) sweep(ctx context.Context) {
	delivered, err := s.DeliverDue(ctx, s.now())
	if err != nil {
		log.Printf("Capsule delivery sweep failed: %v", err)
	}
	if delivered > 0 {
		log.Printf("Delivered %d time capsule(s)", delivered)
	}
}

// DeliverDue delivers every capsule due as of the given instant and returns
// how many were delivered. The first delivery error aborts the sweep; the
// remaining capsules are picked up on the next one.
func (s *DeliveryService) DeliverDue(ctx context.Context, now time.Time) (int, error) {
	delivered := 0
	for _, capsule := range s.store.DueCapsules(now) {
		if err := s.store.DeliverTimeCapsule(ctx, capsule.ID); err != nil {
			return delivered, err
		}
		delivered++
	}
	return delivered, nil
}
