package repository

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/themizzi/jupitertoys/internal/models"
)

// ErrFeedbackNotFound is returned for an unknown feedback ID
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository keeps submitted feedback in memory for the lifetime of the server
type FeedbackRepository struct {
	mu       sync.RWMutex
	feedback map[string]*models.Feedback
}

// NewFeedbackRepository creates an empty feedback repository
func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{
		feedback: make(map[string]*models.Feedback),
	}
}

// CreateFeedback stores a feedback entry
func (r *FeedbackRepository) CreateFeedback(feedback *models.Feedback) error {
	if feedback == nil || feedback.ID == "" {
		return fmt.Errorf("failed to create feedback: missing ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.feedback[feedback.ID]; exists {
		return fmt.Errorf("failed to create feedback: duplicate ID %s", feedback.ID)
	}
	stored := *feedback
	r.feedback[feedback.ID] = &stored
	return nil
}

// GetFeedbackByID retrieves a feedback entry by its ID
func (r *FeedbackRepository) GetFeedbackByID(id string) (*models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	feedback, ok := r.feedback[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFeedbackNotFound, id)
	}
	found := *feedback
	return &found, nil
}

// ListFeedback returns every entry, oldest first
func (r *FeedbackRepository) ListFeedback() ([]*models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*models.Feedback, 0, len(r.feedback))
	for _, feedback := range r.feedback {
		entry := *feedback
		list = append(list, &entry)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}
