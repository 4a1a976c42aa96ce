package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/themizzi/jupitertoys/internal/models"
	"github.com/themizzi/jupitertoys/internal/services"
)

// maxFeedbackBody caps the size of a posted contact form
const maxFeedbackBody = 64 << 10

// FeedbackHandler stores contact form submissions and lists them
type FeedbackHandler struct {
	feedbackService services.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// FeedbackResponse is returned for an accepted submission
type FeedbackResponse struct {
	ID       string `json:"id"`
	Greeting string `json:"greeting"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ServeHTTP handles POST (submit) and GET (list) on /api/feedback
func (h *FeedbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.submit(w, r)
	case http.MethodGet:
		h.list(w)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *FeedbackHandler) submit(w http.ResponseWriter, r *http.Request) {
	var input services.FeedbackInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFeedbackBody)).Decode(&input); err != nil {
		sendErrorResponse(w, "Invalid feedback payload", http.StatusBadRequest)
		return
	}

	feedback, err := h.feedbackService.SubmitFeedback(input)
	if err != nil {
		if isValidationError(err) {
			sendErrorResponse(w, validationMessage(err), http.StatusBadRequest)
			return
		}
		log.Printf("Error storing feedback: %v", err)
		sendErrorResponse(w, "Failed to store feedback", http.StatusInternalServerError)
		return
	}

	log.Printf("Feedback received - ID: %s, From: %s", feedback.ID, feedback.Email)

	writeJSON(w, http.StatusCreated, FeedbackResponse{
		ID:       feedback.ID,
		Greeting: feedback.Greeting(),
	})
}

func (h *FeedbackHandler) list(w http.ResponseWriter) {
	list, err := h.feedbackService.ListFeedback()
	if err != nil {
		log.Printf("Error listing feedback: %v", err)
		sendErrorResponse(w, "Failed to list feedback", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Feedback{}
	}
	writeJSON(w, http.StatusOK, list)
}

var validationErrors = []error{
	models.ErrForenameRequired,
	models.ErrEmailRequired,
	models.ErrInvalidEmail,
	models.ErrMessageRequired,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// validationMessage returns the first failing field's message
func validationMessage(err error) string {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

// writeJSON sends v as a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
