package models

// ContactForm is what the contact page posts to /submit_contact.
type ContactForm struct {
	FirstName       string `form:"firstName" validate:"required"`
	LastName        string `form:"lastName" validate:"required"`
	Email           string `form:"email" validate:"required"`
	Password        string `form:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
	Message         string `form:"message"`
}
