package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/themizzi/jupitertoys/internal/driver"
	"github.com/themizzi/jupitertoys/internal/urls"
)

// Wait budgets on the contact page
const (
	ErrorMessageTimeout = 5 * time.Second
	SendingModalTimeout = 20 * time.Second
)

// SuccessMessagePrefix starts every feedback confirmation
const SuccessMessagePrefix = "Thanks"

// ContactForm holds the contact form values; empty fields are left untouched
type ContactForm struct {
	Forename  string
	Surname   string
	Email     string
	Telephone string
	Message   string
}

// ErrorMessages are the validation messages of the mandatory fields
type ErrorMessages struct {
	ForenameError string
	EmailError    string
	MessageError  string
}

// ContactPage is the feedback form
type ContactPage struct {
	*BasePage
}

// NewContactPage creates the contact page object
func NewContactPage(base *BasePage) *ContactPage {
	return &ContactPage{BasePage: base}
}

// OpenURL navigates to the contact page and verifies it loaded
func (p *ContactPage) OpenURL() error {
	return p.openPage(urls.Contact, p.ContactPageButton, "Contact")
}

func (p *ContactPage) ContactPageButton() driver.Element {
	return p.driver.Find(activeNavButton("contact"))
}

func (p *ContactPage) ForenameField() driver.Element  { return p.driver.Find(`#forename`) }
func (p *ContactPage) SurnameField() driver.Element   { return p.driver.Find(`#surname`) }
func (p *ContactPage) EmailField() driver.Element     { return p.driver.Find(`#email`) }
func (p *ContactPage) TelephoneField() driver.Element { return p.driver.Find(`#telephone`) }
func (p *ContactPage) MessageField() driver.Element   { return p.driver.Find(`#message`) }

func (p *ContactPage) SubmitButton() driver.Element {
	return p.driver.Find(`//a[text()="Submit"]`)
}

func (p *ContactPage) ForenameError() driver.Element { return p.driver.Find(`#forename-err`) }
func (p *ContactPage) EmailError() driver.Element    { return p.driver.Find(`#email-err`) }
func (p *ContactPage) MessageError() driver.Element  { return p.driver.Find(`#message-err`) }

func (p *ContactPage) SendingModal() driver.Element {
	return p.driver.Find(`.popup.modal`)
}

func (p *ContactPage) SubmittedMessage() driver.Element {
	return p.driver.Find(`div.alert.alert-success strong.ng-binding`)
}

func (p *ContactPage) BackButton() driver.Element {
	return p.driver.Find(`//a[text()="« Back"]`)
}

// SubmitForm clicks Submit once it is clickable
func (p *ContactPage) SubmitForm() error {
	p.log.Infof("Submitting the feedback form...")
	if err := p.ClickWhenClickable(p.SubmitButton(), "Submit button"); err != nil {
		p.log.Errorf("Error submitting the feedback form: %v", err)
		return err
	}
	return nil
}

// FillForm types the non-empty fields of form into the page
func (p *ContactPage) FillForm(form ContactForm) error {
	fields := []struct {
		name  string
		value string
		field func() driver.Element
	}{
		{"forename", form.Forename, p.ForenameField},
		{"surname", form.Surname, p.SurnameField},
		{"email", form.Email, p.EmailField},
		{"telephone", form.Telephone, p.TelephoneField},
		{"message", form.Message, p.MessageField},
	}

	for _, f := range fields {
		if f.value == "" {
			continue
		}
		p.log.Infof("Setting %s: %s", f.name, f.value)
		if err := f.field().SetValue(f.value); err != nil {
			p.log.Errorf("Error filling up the form: %v", err)
			return fmt.Errorf("setting %s: %w", f.name, err)
		}
	}
	return nil
}

// ClickBackButton returns from the confirmation to the form
func (p *ContactPage) ClickBackButton() error {
	if err := p.ClickWhenClickable(p.BackButton(), "Back button"); err != nil {
		p.log.Errorf("Error to click Back Button: %v", err)
		return err
	}
	return nil
}

// CheckForenameError reads the forename validation message
func (p *ContactPage) CheckForenameError() (string, error) {
	return p.readError(p.ForenameError(), "Forename")
}

// CheckEmailError reads the email validation message
func (p *ContactPage) CheckEmailError() (string, error) {
	return p.readError(p.EmailError(), "Email")
}

// CheckMessageError reads the message validation message
func (p *ContactPage) CheckMessageError() (string, error) {
	return p.readError(p.MessageError(), "Message")
}

// CheckAllErrors waits for the three mandatory-field errors and returns their text
func (p *ContactPage) CheckAllErrors() (ErrorMessages, error) {
	p.log.Infof("Validating errors messages for empty mandatory fields.")

	var messages ErrorMessages
	targets := []struct {
		element func() driver.Element
		out     *string
		name    string
	}{
		{p.ForenameError, &messages.ForenameError, "Forename"},
		{p.EmailError, &messages.EmailError, "Email"},
		{p.MessageError, &messages.MessageError, "Message"},
	}

	for _, target := range targets {
		element := target.element()
		if err := element.WaitForDisplayed(driver.WaitOptions{Timeout: ErrorMessageTimeout}); err != nil {
			p.log.Errorf("Error checking all Errors on mandatory fields: %v", err)
			return ErrorMessages{}, fmt.Errorf("%s error: %w", target.name, err)
		}
		text, err := p.readError(element, target.name)
		if err != nil {
			return ErrorMessages{}, err
		}
		*target.out = text
	}

	return messages, nil
}

// CheckAllErrorsAreGone waits for the three mandatory-field errors to disappear
func (p *ContactPage) CheckAllErrorsAreGone() error {
	p.log.Infof("Checking if error messages are gone after completing mandatory fields.")

	for _, element := range []driver.Element{p.ForenameError(), p.EmailError(), p.MessageError()} {
		if err := element.WaitForDisplayed(driver.WaitOptions{Timeout: ErrorMessageTimeout, Reverse: true}); err != nil {
			p.log.Errorf("Error checking for the absence of errors after completing mandatory fields: %v", err)
			return err
		}
	}
	return nil
}

// ValidateSubmittedMessage waits for the sending modal to close and the success banner to
// appear, checks the banner and the Back button, and returns the banner text
func (p *ContactPage) ValidateSubmittedMessage() (string, error) {
	p.log.Infof("Waiting for the pop up message to disappear...")
	if err := p.SendingModal().WaitForDisplayed(driver.WaitOptions{Timeout: SendingModalTimeout, Reverse: true}); err != nil {
		p.log.Errorf("Error validating submitted message: %v", err)
		return "", fmt.Errorf("sending modal: %w", err)
	}

	p.log.Infof("Waiting for the success message to be displayed...")
	banner := p.SubmittedMessage()
	if err := banner.WaitForDisplayed(driver.WaitOptions{}); err != nil {
		p.log.Errorf("Error validating submitted message: %v", err)
		return "", fmt.Errorf("success message: %w", err)
	}

	text, err := banner.Text()
	if err != nil {
		p.log.Errorf("Error validating submitted message: %v", err)
		return "", fmt.Errorf("success message: %w", err)
	}
	p.log.Infof("Success message text: %s", text)

	if !strings.Contains(text, SuccessMessagePrefix) {
		err := &MismatchError{Subject: "success message", Expected: SuccessMessagePrefix, Actual: text, Contains: true}
		p.log.Errorf("Error validating submitted message: %v", err)
		return text, err
	}
	p.log.Infof("Submitted success message validated: %s", text)

	visible, err := p.BackButton().IsDisplayed()
	if err != nil {
		p.log.Errorf("Error validating submitted message: %v", err)
		return text, fmt.Errorf("back button: %w", err)
	}
	if !visible {
		err := &MismatchError{Subject: "back button visible", Expected: "true", Actual: "false"}
		p.log.Errorf("Error validating submitted message: %v", err)
		return text, err
	}

	return text, nil
}

func (p *ContactPage) readError(element driver.Element, field string) (string, error) {
	text, err := element.Text()
	if err != nil {
		p.log.Errorf("Error retrieving %s error: %v", strings.ToLower(field), err)
		return "", fmt.Errorf("%s error: %w", field, err)
	}
	p.log.Infof("%s error: %s", field, text)
	return text, nil
}
