// Package store holds the canonical in-memory copy of every entity
// collection and keeps it in sync with slot storage. Every mutation applies
// to memory first, then persists the full updated collection; if persistence
// fails the in-memory change is rolled back to the pre-mutation snapshot.
package store

import (
	"context"
	"log"
	"math/rand"
	"slices"
	"strconv"
	"sync"
	"time"

	"otbasy/internal/assistant"
	"otbasy/internal/models"
	"otbasy/internal/repository"
	"otbasy/internal/storage"
)

// MessageListener is notified of every chat message appended to a family,
// including delivered time capsules. Used by the websocket hub.
type MessageListener func(models.Message)

// Store is the single source of truth for application state. It is an
// explicitly constructed object: create one with New, initialize it with
// Init, and hand it to every consumer.
type Store struct {
	mu            sync.Mutex
	user          *models.User
	families      []models.Family
	messages      []models.Message
	tasks         []models.Task
	aiMessages    []models.AIMessage
	events        []models.Event
	capsules      []models.TimeCapsule
	authenticated bool
	ready         bool
	seq           uint64

	users       *repository.UserRepository
	familyRepo  *repository.FamilyRepository
	messageRepo *repository.MessageRepository
	taskRepo    *repository.TaskRepository
	aiRepo      *repository.AIMessageRepository
	eventRepo   *repository.EventRepository
	capsuleRepo *repository.CapsuleRepository

	kv         storage.Store
	responder  *assistant.Responder
	replyDelay time.Duration
	onMessage  MessageListener

	// Injectable for tests.
	now       func() time.Time
	afterFunc func(time.Duration, func()) *time.Timer
	rng       *rand.Rand

	timerMu sync.Mutex
	timers  []*time.Timer
	closed  bool
}

// New creates a store over the given slot storage. The store owns its
// repositories; replyDelay is how long the assistant waits before answering.
func New(kv storage.Store, responder *assistant.Responder, replyDelay time.Duration) *Store {
	return &Store{
		users:       repository.NewUserRepository(kv),
		familyRepo:  repository.NewFamilyRepository(kv),
		messageRepo: repository.NewMessageRepository(kv),
		taskRepo:    repository.NewTaskRepository(kv),
		aiRepo:      repository.NewAIMessageRepository(kv),
		eventRepo:   repository.NewEventRepository(kv),
		capsuleRepo: repository.NewCapsuleRepository(kv),
		kv:          kv,
		responder:   responder,
		replyDelay:  replyDelay,
		now:         time.Now,
		afterFunc:   time.AfterFunc,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetMessageListener registers the callback invoked for every appended chat
// message. Must be called before Init.
func (s *Store) SetMessageListener(fn MessageListener) {
	s.onMessage = fn
}

// Init loads every collection from storage, seeding empty ones with the
// fixed demonstration dataset and persisting the seed immediately. After
// Init returns, readers may use the store.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure a default user exists.
	s.user = s.users.Load(ctx)
	if s.user == nil {
		s.user = demoUser()
		if err := s.users.Save(ctx, s.user); err != nil {
			log.Printf("store: failed to persist default user: %v", err)
		}
	}
	s.authenticated = true

	s.families = s.familyRepo.Load(ctx)
	if len(s.families) == 0 {
		s.families = seedFamilies()
		if err := s.familyRepo.Save(ctx, s.families); err != nil {
			log.Printf("store: failed to persist seed families: %v", err)
		}
	}

	s.messages = s.messageRepo.Load(ctx)
	if len(s.messages) == 0 {
		s.messages = seedMessages(s.now())
		if err := s.messageRepo.Save(ctx, s.messages); err != nil {
			log.Printf("store: failed to persist seed messages: %v", err)
		}
	}

	s.tasks = s.taskRepo.Load(ctx)
	if len(s.tasks) == 0 {
		s.tasks = seedTasks(s.now())
		if err := s.taskRepo.Save(ctx, s.tasks); err != nil {
			log.Printf("store: failed to persist seed tasks: %v", err)
		}
	}

	s.aiMessages = s.aiRepo.Load(ctx)
	if len(s.aiMessages) == 0 {
		s.aiMessages = seedAIMessages(s.now())
		if err := s.aiRepo.Save(ctx, s.aiMessages); err != nil {
			log.Printf("store: failed to persist seed assistant log: %v", err)
		}
	}

	s.events = s.eventRepo.Load(ctx)
	if len(s.events) == 0 {
		s.events = seedEvents()
		if err := s.eventRepo.Save(ctx, s.events); err != nil {
			log.Printf("store: failed to persist seed events: %v", err)
		}
	}

	s.capsules = s.capsuleRepo.Load(ctx)
	if len(s.capsules) == 0 {
		s.capsules = seedCapsules(s.now())
		if err := s.capsuleRepo.Save(ctx, s.capsules); err != nil {
			log.Printf("store: failed to persist seed capsules: %v", err)
		}
	}

	s.ready = true
	return nil
}

// Ready reports whether Init has completed.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Close stops timers still pending (undelivered assistant replies).
func (s *Store) Close() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	s.closed = true
	for _, timer := range s.timers {
		timer.Stop()
	}
	s.timers = nil
}

// Reset wipes every slot and all in-memory state. The next Init reseeds the
// demonstration dataset.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.RemoveMany(ctx, storage.AllKeys()); err != nil {
		return err
	}
	s.user = nil
	s.families = nil
	s.messages = nil
	s.tasks = nil
	s.aiMessages = nil
	s.events = nil
	s.capsules = nil
	s.authenticated = false
	s.ready = false
	return nil
}

// newID derives an id from the creation timestamp plus a store-scoped
// monotonic suffix, so two mutations in the same millisecond stay distinct.
// Callers must hold s.mu.
func (s *Store) newID() string {
	s.seq++
	return strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + strconv.FormatUint(s.seq, 10)
}

// schedule runs fn after the given delay, tracking the timer so Close can
// drop it.
func (s *Store) schedule(delay time.Duration, fn func()) {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	if s.closed {
		return
	}
	s.timers = append(s.timers, s.afterFunc(delay, fn))
}

// User returns the current session user, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// IsAuthenticated reports whether a session user is set.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Families returns a copy of the family collection.
func (s *Store) Families() []models.Family {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.families)
}

// Messages returns a copy of the full chat log.
func (s *Store) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}

// MessagesForFamily returns the chat log of one family, oldest first.
func (s *Store) MessagesForFamily(familyID string) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []models.Message
	for _, message := range s.messages {
		if message.FamilyID == familyID {
			result = append(result, message)
		}
	}
	return result
}

// Tasks returns a copy of the task collection.
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tasks)
}

// AIMessages returns a copy of the assistant conversation log.
func (s *Store) AIMessages() []models.AIMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.aiMessages)
}

// Events returns a copy of the calendar event collection.
func (s *Store) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.events)
}

// TimeCapsules returns a copy of the capsule collection.
func (s *Store) TimeCapsules() []models.TimeCapsule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.capsules)
}

// notifyMessage invokes the message listener outside the store lock.
func (s *Store) notifyMessage(message models.Message) {
	if s.onMessage != nil {
		s.onMessage(message)
	}
}
