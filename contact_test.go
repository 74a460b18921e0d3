package main

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactValues(name, email, subject, message string) url.Values {
	return url.Values{
		"name":    {name},
		"email":   {email},
		"subject": {subject},
		"message": {message},
	}
}

func postContact(t *testing.T, r http.Handler, values url.Values, fragment bool) (int, string) {
	t.Helper()
	headers := map[string]string{"Content-Type": "application/x-www-form-urlencoded"}
	if fragment {
		headers["HX-Request"] = "true"
	}
	w := doRequest(r, http.MethodPost, "/contact", strings.NewReader(values.Encode()), headers)
	return w.Code, w.Body.String()
}

func TestContactForm_Empty(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/contact-form", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, `id="contact-form"`)
	assert.Contains(t, body, `data-state="idle"`)
	assert.Contains(t, body, `data-reset-after="3000"`)
	assert.Contains(t, body, `name="name" value=""`)
	assert.Contains(t, body, "Send Message")
	assert.NotContains(t, body, "Message Sent!")
	assert.NotContains(t, body, "disabled")
	assert.NotContains(t, body, "<!DOCTYPE html>")
}

func TestSubmitContact_FragmentSuccess(t *testing.T) {
	r, _, logs := newTestRouter(t)

	status, body := postContact(t, r, contactValues("Ada Lovelace", "ada@example.com", "Hello", "Notes on the engine."), true)
	require.Equal(t, http.StatusOK, status)

	assert.Contains(t, body, "Message Sent!")
	assert.Contains(t, body, "check_circle")
	assert.Contains(t, body, `data-state="sent"`)
	assert.Contains(t, body, `data-reset-after="3000"`)
	assert.Contains(t, body, " disabled")
	assert.Contains(t, body, " readonly")
	assert.Contains(t, body, `value="Ada Lovelace"`)
	assert.NotContains(t, body, "<!DOCTYPE html>")

	submitted := logs.FilterMessage("contact form submitted").All()
	require.Len(t, submitted, 1)
	fields := submitted[0].ContextMap()
	assert.Equal(t, "Ada Lovelace", fields["name"])
	assert.Equal(t, "ada@example.com", fields["email"])
	assert.Equal(t, "Hello", fields["subject"])
	assert.Equal(t, "Notes on the engine.", fields["message"])

	id, ok := fields["submission_id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, id)
	assert.Contains(t, body, `data-submission-id="`+id+`"`)
}

func TestSubmitContact_FullPageSuccess(t *testing.T) {
	r, _, logs := newTestRouter(t)

	status, body := postContact(t, r, contactValues("Ada", "ada@example.com", "Hi", "Hello there"), false)
	require.Equal(t, http.StatusOK, status)

	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `http-equiv="refresh"`)
	assert.Contains(t, body, `<section id="home"`)
	assert.Contains(t, body, "Message Sent!")
	assert.Equal(t, 1, logs.FilterMessage("contact form submitted").Len())
}

func TestSubmitContact_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		values    url.Values
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing subject",
			values:    contactValues("Ada", "ada@example.com", "", "Hello"),
			wantField: "subject",
			wantMsg:   "This field is required.",
		},
		{
			name:      "whitespace name",
			values:    contactValues("   ", "ada@example.com", "Hi", "Hello"),
			wantField: "name",
			wantMsg:   "This field is required.",
		},
		{
			name:      "whitespace message",
			values:    contactValues("Ada", "ada@example.com", "Hi", " \n\t "),
			wantField: "message",
			wantMsg:   "This field is required.",
		},
		{
			name:      "invalid email",
			values:    contactValues("Ada", "not-an-email", "Hi", "Hello"),
			wantField: "email",
			wantMsg:   "Enter a valid email address.",
		},
		{
			name:      "message too long",
			values:    contactValues("Ada", "ada@example.com", "Hi", strings.Repeat("x", 5001)),
			wantField: "message",
			wantMsg:   "Must be at most 5000 characters.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, logs := newTestRouter(t)

			status, body := postContact(t, r, tt.values, true)
			assert.Equal(t, http.StatusUnprocessableEntity, status)
			assert.Contains(t, body, tt.wantMsg)
			assert.Contains(t, body, `data-state="idle"`)
			assert.Contains(t, body, "Send Message")
			assert.NotContains(t, body, "Message Sent!")

			assert.Zero(t, logs.FilterMessage("contact form submitted").Len())
			rejected := logs.FilterMessage("contact form rejected").All()
			require.Len(t, rejected, 1)
		})
	}
}

func TestSubmitContact_RejectedKeepsValues(t *testing.T) {
	r, _, _ := newTestRouter(t)

	status, body := postContact(t, r, contactValues("Ada", "bad", "Engines", "Hello"), false)
	require.Equal(t, http.StatusUnprocessableEntity, status)

	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `value="Ada"`)
	assert.Contains(t, body, `value="Engines"`)
	assert.NotContains(t, body, `http-equiv="refresh"`)
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	errs := fieldErrors(errors.New("boom"))
	assert.Equal(t, map[string]string{"form": "Please check the form and try again."}, errs)
}

func TestContactFormView_Labels(t *testing.T) {
	view := newContactFormView(ContactForm{}, testUI)
	assert.Equal(t, "Send Message", view.SubmitLabel())
	assert.Equal(t, "send", view.SubmitIcon())

	view.Sent = true
	assert.Equal(t, "Message Sent!", view.SubmitLabel())
	assert.Equal(t, "check_circle", view.SubmitIcon())
}
