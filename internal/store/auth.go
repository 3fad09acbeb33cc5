package store

import (
	"context"
	"log"

	"otbasy/internal/models"
)

// Login establishes a session for the given credentials. Any non-empty
// email and password pair is accepted; the session user keeps the fixed
// demonstration identity with the submitted email. Returns false when a
// credential is empty or the user cannot be persisted.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	if email == "" || password == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := demoUser()
	user.Email = email

	prevUser, prevAuth := s.user, s.authenticated
	s.user = user
	s.authenticated = true

	if err := s.users.Save(ctx, user); err != nil {
		log.Printf("store: login persist failed: %v", err)
		s.user, s.authenticated = prevUser, prevAuth
		return false
	}
	return true
}

// Logout clears the session user from memory and storage.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevUser, prevAuth := s.user, s.authenticated
	s.user = nil
	s.authenticated = false

	if err := s.users.Clear(ctx); err != nil {
		s.user, s.authenticated = prevUser, prevAuth
		return err
	}
	return nil
}

// currentUser returns the session user without copying. Callers must hold
// s.mu.
func (s *Store) currentUser() (*models.User, bool) {
	if s.user == nil {
		return nil, false
	}
	return s.user, true
}
