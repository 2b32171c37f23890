package service

import (
	"sync"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService holds extracted-but-unconfirmed transaction lists, keyed by
// owner and session. State is in-memory only and has no persisted identity;
// a session ends when it is cleared by its owner or the process restarts.
type ReviewService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]map[uuid.UUID]*models.ReviewList
	logger   *zap.Logger
}

func NewReviewService(logger *zap.Logger) *ReviewService {
	return &ReviewService{
		sessions: make(map[uuid.UUID]map[uuid.UUID]*models.ReviewList),
		logger:   logger,
	}
}

// Create stages a transaction list for review and returns its session ID.
func (s *ReviewService) Create(userID uuid.UUID, transactions []models.StagedTransaction) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions[userID] == nil {
		s.sessions[userID] = make(map[uuid.UUID]*models.ReviewList)
	}

	id := uuid.New()
	s.sessions[userID][id] = models.NewReviewList(transactions)
	return id
}

// Get returns the owner's review list, or ErrReviewNotFound on a miss.
// Lookups never cross owner scope.
func (s *ReviewService) Get(userID, id uuid.UUID) (*models.ReviewList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(userID, id)
}

func (s *ReviewService) ToggleSelect(userID, id uuid.UUID, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.get(userID, id)
	if err != nil {
		return err
	}
	return list.ToggleSelect(index)
}

func (s *ReviewService) ToggleSelectAll(userID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.get(userID, id)
	if err != nil {
		return err
	}
	list.ToggleSelectAll()
	return nil
}

func (s *ReviewService) Edit(userID, id uuid.UUID, index int, tx models.StagedTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.get(userID, id)
	if err != nil {
		return err
	}
	return list.Edit(index, tx)
}

// Clear discards the session wholesale. Clearing an unknown session is a
// no-op.
func (s *ReviewService) Clear(userID, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions[userID], id)
}

func (s *ReviewService) get(userID, id uuid.UUID) (*models.ReviewList, error) {
	list, ok := s.sessions[userID][id]
	if !ok {
		return nil, ErrReviewNotFound
	}
	return list, nil
}
