package services

import (
	"fmt"

	"github.com/themizzi/jupitertoys/internal/models"
)

// FeedbackRepository defines the interface for feedback persistence
type FeedbackRepository interface {
	CreateFeedback(feedback *models.Feedback) error
	GetFeedbackByID(id string) (*models.Feedback, error)
	ListFeedback() ([]*models.Feedback, error)
}

// FeedbackInput is the contact form as posted by the shop
type FeedbackInput struct {
	Forename  string `json:"forename"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Message   string `json:"message"`
}

// FeedbackService handles feedback business logic
type FeedbackService interface {
	SubmitFeedback(input FeedbackInput) (*models.Feedback, error)
	GetFeedback(id string) (*models.Feedback, error)
	ListFeedback() ([]*models.Feedback, error)
}

// FeedbackServiceImpl implements FeedbackService
type FeedbackServiceImpl struct {
	feedbackRepo FeedbackRepository
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(feedbackRepo FeedbackRepository) FeedbackService {
	return &FeedbackServiceImpl{
		feedbackRepo: feedbackRepo,
	}
}

// SubmitFeedback validates and stores a contact form submission
func (s *FeedbackServiceImpl) SubmitFeedback(input FeedbackInput) (*models.Feedback, error) {
	feedback, err := models.NewFeedback(input.Forename, input.Surname, input.Email, input.Telephone, input.Message)
	if err != nil {
		return nil, fmt.Errorf("invalid feedback: %w", err)
	}

	if err := s.feedbackRepo.CreateFeedback(feedback); err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}

	return feedback, nil
}

// GetFeedback retrieves a submission by its ID
func (s *FeedbackServiceImpl) GetFeedback(id string) (*models.Feedback, error) {
	feedback, err := s.feedbackRepo.GetFeedbackByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return feedback, nil
}

// ListFeedback returns every submission, oldest first
func (s *FeedbackServiceImpl) ListFeedback() ([]*models.Feedback, error) {
	list, err := s.feedbackRepo.ListFeedback()
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return list, nil
}
