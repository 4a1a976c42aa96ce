package models

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Feedback is a message submitted through the contact form
type Feedback struct {
	ID        string    `json:"id"`
	Forename  string    `json:"forename"`
	Surname   string    `json:"surname,omitempty"`
	Email     string    `json:"email"`
	Telephone string    `json:"telephone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validation errors. The messages are the ones the contact form shows.
var (
	ErrForenameRequired = errors.New("Forename is required")
	ErrEmailRequired    = errors.New("Email is required")
	ErrInvalidEmail     = errors.New("Please enter a valid email")
	ErrMessageRequired  = errors.New("Message is required")
)

// NewFeedback creates a feedback entry with validation.
// Every failing field is reported, joined in form order.
func NewFeedback(forename, surname, email, telephone, message string) (*Feedback, error) {
	forename = strings.TrimSpace(forename)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if err := validateFeedbackInput(forename, email, message); err != nil {
		return nil, err
	}

	return &Feedback{
		ID:        uuid.New().String(),
		Forename:  forename,
		Surname:   strings.TrimSpace(surname),
		Email:     email,
		Telephone: strings.TrimSpace(telephone),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// validateFeedbackInput checks the mandatory fields
func validateFeedbackInput(forename, email, message string) error {
	var errs []error
	if forename == "" {
		errs = append(errs, ErrForenameRequired)
	}
	switch {
	case email == "":
		errs = append(errs, ErrEmailRequired)
	case !validEmail(email):
		errs = append(errs, ErrInvalidEmail)
	}
	if message == "" {
		errs = append(errs, ErrMessageRequired)
	}
	return errors.Join(errs...)
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// Greeting is the confirmation shown once the feedback is stored
func (f *Feedback) Greeting() string {
	return "Thanks " + f.Forename
}
