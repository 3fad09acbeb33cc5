package store

import (
	"context"
	"fmt"
	"slices"

	"otbasy/internal/models"
)

// GenerateFamilyCode returns a fresh six-character join code drawn from the
// uppercase alphanumeric alphabet. Codes are not checked for collisions;
// the space is large enough for the data volumes involved.
func (s *Store) GenerateFamilyCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generateCodeLocked()
}

func (s *Store) generateCodeLocked() string {
	code := make([]byte, models.CodeLength)
	for i := range code {
		code[i] = models.CodeAlphabet[s.rng.Intn(len(models.CodeAlphabet))]
	}
	return string(code)
}

// AddFamily creates a family with a fresh id, creation timestamp and join
// code. The session user is prepended as the first member when the member
// list is empty.
func (s *Store) AddFamily(ctx context.Context, family models.Family) (*models.Family, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.currentUser()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	family.ID = s.newID()
	family.CreatedAt = s.now()
	if family.Code == "" {
		family.Code = s.generateCodeLocked()
	}
	if len(family.Members) == 0 {
		family.Members = []models.FamilyMember{{
			ID:           user.ID,
			Name:         user.Name,
			Relationship: "Я",
			Avatar:       user.Avatar,
		}}
	}
	if err := family.Validate(); err != nil {
		return nil, err
	}

	prev := s.families
	s.families = append(slices.Clone(s.families), family)

	if err := s.familyRepo.Save(ctx, s.families); err != nil {
		s.families = prev
		return nil, fmt.Errorf("persisting families: %w", err)
	}
	return &family, nil
}

// AddFamilyMember appends a member with a fresh id to the given family.
func (s *Store) AddFamilyMember(ctx context.Context, familyID string, member models.FamilyMember) (*models.FamilyMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member.ID = s.newID()
	if err := member.Validate(); err != nil {
		return nil, err
	}

	prev := s.families
	families := slices.Clone(s.families)
	found := false
	for i := range families {
		if families[i].ID == familyID {
			families[i].Members = append(slices.Clone(families[i].Members), member)
			found = true
			break
		}
	}
	if !found {
		return nil, ErrFamilyNotFound
	}
	s.families = families

	if err := s.familyRepo.Save(ctx, s.families); err != nil {
		s.families = prev
		return nil, fmt.Errorf("persisting families: %w", err)
	}
	return &member, nil
}

// FamilyByID returns a copy of one family.
func (s *Store) FamilyByID(familyID string) (*models.Family, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, family := range s.families {
		if family.ID == familyID {
			found := family
			return &found, true
		}
	}
	return nil, false
}
