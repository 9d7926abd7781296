package controllers

import (
	"net/http"
	"net/url"
	"portfolio/pkg/models"
	"portfolio/pkg/service/contact"

	"github.com/hashicorp/go-hclog"
)

type ContactHTTPController interface {
	SubmitContact(w http.ResponseWriter, r *http.Request)
}

type contactController struct {
	contactService contact.ContactService
	logger         hclog.Logger
}

func NewContactController(logger hclog.Logger, contactService contact.ContactService) ContactHTTPController {
	return &contactController{
		contactService: contactService,
		logger:         logger.Named("contact-controller"),
	}
}

// SubmitContact sends the visitor to the thank you page, or back to the contact page with an error code
func (controller *contactController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		controller.logger.Debug("unreadable contact form", "error", err)
		http.Redirect(w, r, contactErrorPath(contact.ErrMissingFields), http.StatusSeeOther)
		return
	}

	form := models.ContactForm{
		FirstName:       r.PostFormValue("firstName"),
		LastName:        r.PostFormValue("lastName"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
		Message:         r.PostFormValue("message"),
	}

	if submitErr := controller.contactService.Submit(form); submitErr != nil {
		http.Redirect(w, r, contactErrorPath(submitErr.Message), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/thankyou", http.StatusSeeOther)
}

func contactErrorPath(code string) string {
	return "/contact?" + url.Values{"error": {code}}.Encode()
}
