package contact

import (
	"errors"
	"net/http"
	"portfolio/pkg/metrics"
	"portfolio/pkg/models"
	"portfolio/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-hclog"
)

// Error codes the contact page understands in its ?error= query parameter.
const (
	ErrMissingFields    = "missing_fields"
	ErrPasswordMismatch = "password_mismatch"
	ErrPasswordTooShort = "password_too_short"
)

type ContactService interface {
	Submit(form models.ContactForm) *utils.GenericError
}

type contactService struct {
	validate *validator.Validate
	metrics  *metrics.Metrics
	logger   hclog.Logger
}

func NewContactService(logger hclog.Logger, m *metrics.Metrics) ContactService {
	return &contactService{
		validate: validator.New(),
		metrics:  m,
		logger:   logger.Named("contact-service"),
	}
}

// Submit validates a contact form. The returned error's Message is one of the Err* codes.
func (service *contactService) Submit(form models.ContactForm) *utils.GenericError {
	if err := service.validate.Struct(form); err != nil {
		code := errorCode(err)
		service.record(code)
		service.logger.Debug("rejected contact submission", "reason", code)
		return utils.HTTPGenericError(http.StatusBadRequest, code)
	}

	service.record("ok")
	service.logger.Info("contact submission received",
		"firstName", form.FirstName,
		"lastName", form.LastName,
		"email", form.Email,
		"messageLength", len(form.Message),
	)
	return nil
}

func (service *contactService) record(outcome string) {
	if service.metrics != nil {
		service.metrics.ContactSubmission(outcome)
	}
}

// errorCode reports the first broken rule in the order the contact page checks them:
// presence, then confirmation, then length.
func errorCode(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrMissingFields
	}

	mismatch, tooShort := false, false
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			return ErrMissingFields
		case "eqfield":
			mismatch = true
		case "min":
			tooShort = true
		}
	}

	if mismatch {
		return ErrPasswordMismatch
	}
	if tooShort {
		return ErrPasswordTooShort
	}
	return ErrMissingFields
}
