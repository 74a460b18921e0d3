package main

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	submitLabel = "Send Message"
	sentLabel   = "Message Sent!"
)

// ContactForm is the four-field message form. Every field must hold
// something other than whitespace.
type ContactForm struct {
	Name    string `form:"name" json:"name" binding:"notblank,max=100"`
	Email   string `form:"email" json:"email" binding:"notblank,email,max=254"`
	Subject string `form:"subject" json:"subject" binding:"notblank,max=200"`
	Message string `form:"message" json:"message" binding:"notblank,max=5000"`
}

// ContactFormView is the template model for the form in either state.
type ContactFormView struct {
	Form             ContactForm
	Errors           map[string]string
	Sent             bool
	SubmissionID     string
	ResetAfterMillis int64
	Static           bool
}

func newContactFormView(form ContactForm, ui UISettings) ContactFormView {
	return ContactFormView{Form: form, ResetAfterMillis: ui.FormResetMillis}
}

func (v ContactFormView) SubmitLabel() string {
	if v.Sent {
		return sentLabel
	}
	return submitLabel
}

func (v ContactFormView) SubmitIcon() string {
	if v.Sent {
		return "check_circle"
	}
	return "send"
}

var registerOnce sync.Once

// registerFormValidators adds the validations gin's default validator lacks.
// It must run before the first bind.
func registerFormValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		err = v.RegisterValidation("notblank", validators.NotBlank)
	})
	return err
}

// fieldErrors turns a bind error into one message per form field.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": "Please check the form and try again."}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		if _, ok := out[field]; ok {
			continue
		}
		switch fe.Tag() {
		case "notblank":
			out[field] = "This field is required."
		case "email":
			out[field] = "Enter a valid email address."
		case "max":
			out[field] = fmt.Sprintf("Must be at most %s characters.", fe.Param())
		default:
			out[field] = "This value is not valid."
		}
	}
	return out
}

func isFragmentRequest(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// contactForm handles GET /contact-form: the empty form the client swaps
// back in once the reset delay has passed.
func (s *server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form", newContactFormView(ContactForm{}, s.ui))
}

// submitContact handles POST /contact. Nothing is forwarded anywhere; the
// submission is logged and the form switches to its sent state.
func (s *server) submitContact(c *gin.Context) {
	var form ContactForm
	if err := c.ShouldBind(&form); err != nil {
		view := newContactFormView(form, s.ui)
		view.Errors = fieldErrors(err)
		s.logger.Debug("contact form rejected", zap.Any("errors", view.Errors))
		s.renderContact(c, http.StatusUnprocessableEntity, view)
		return
	}

	id := uuid.NewString()
	s.logger.Info("contact form submitted",
		zap.String("submission_id", id),
		zap.String("name", form.Name),
		zap.String("email", form.Email),
		zap.String("subject", form.Subject),
		zap.String("message", form.Message),
	)

	view := newContactFormView(form, s.ui)
	view.Sent = true
	view.SubmissionID = id
	s.renderContact(c, http.StatusOK, view)
}

// renderContact answers script-driven posts with the form fragment and plain
// posts with the whole page, refreshing back to the empty form when sent.
func (s *server) renderContact(c *gin.Context, status int, view ContactFormView) {
	if isFragmentRequest(c) {
		c.HTML(status, "contact-form", view)
		return
	}

	page := s.page()
	page.Form = view
	if view.Sent {
		seconds := int(math.Ceil(float64(view.ResetAfterMillis) / 1000))
		page.Refresh = fmt.Sprintf("%d;url=/#contact", seconds)
	}
	c.HTML(status, "index", page)
}
