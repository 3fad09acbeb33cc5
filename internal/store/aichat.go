package store

import (
	"context"
	"fmt"
	"log"
	"slices"

	"otbasy/internal/models"
)

// SendAIMessage appends the user's question to the assistant log and
// schedules the assistant's answer after the configured delay. The answer
// is generated and persisted on its own goroutine; a persistence failure
// there is logged and the reply dropped.
func (s *Store) SendAIMessage(ctx context.Context, familyID, text string) (*models.AIMessage, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	question := models.AIMessage{
		ID:        s.newID(),
		Text:      text,
		IsUser:    true,
		Timestamp: s.now(),
		FamilyID:  familyID,
	}

	prev := s.aiMessages
	s.aiMessages = append(slices.Clone(s.aiMessages), question)

	if err := s.aiRepo.Save(ctx, s.aiMessages); err != nil {
		s.aiMessages = prev
		s.mu.Unlock()
		return nil, fmt.Errorf("persisting assistant log: %w", err)
	}

	// Reply selection stays under the lock to serialize the responder's
	// rand source. Scheduling happens outside it because the timer callback
	// relocks the store.
	reply := s.responder.Reply(text)
	s.mu.Unlock()

	s.schedule(s.replyDelay, func() {
		s.appendAIReply(context.Background(), familyID, reply)
	})
	return &question, nil
}

// appendAIReply records the assistant's answer once its delay has elapsed.
func (s *Store) appendAIReply(ctx context.Context, familyID, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	answer := models.AIMessage{
		ID:        s.newID(),
		Text:      reply,
		IsUser:    false,
		Timestamp: s.now(),
		FamilyID:  familyID,
	}

	prev := s.aiMessages
	s.aiMessages = append(slices.Clone(s.aiMessages), answer)

	if err := s.aiRepo.Save(ctx, s.aiMessages); err != nil {
		s.aiMessages = prev
		log.Printf("store: failed to persist assistant reply: %v", err)
	}
}

// ClearAIHistory drops the assistant conversation from memory and storage.
func (s *Store) ClearAIHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.aiMessages
	s.aiMessages = nil

	if err := s.aiRepo.Clear(ctx); err != nil {
		s.aiMessages = prev
		return err
	}
	return nil
}
