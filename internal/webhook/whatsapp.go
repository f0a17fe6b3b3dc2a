// Package webhook receives inbound chat messages from Twilio and answers
// each one with a single TwiML message.
package webhook

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/twilio/twilio-go/client"
	"github.com/twilio/twilio-go/twiml"
)

const maxFormBytes = 65536

// Responder produces the reply text for a user's message.
type Responder interface {
	Handle(ctx context.Context, userID, text string) (string, error)
}

// Handler serves the Twilio messaging webhook.
type Handler struct {
	bot       Responder
	validate  func(url string, params map[string]string, signature string) bool
	publicURL string
}

// Option configures a Handler.
type Option func(*Handler)

// WithSignatureValidation rejects requests whose X-Twilio-Signature does not
// match authToken. publicURL is the externally visible base URL Twilio signs;
// when empty it is derived from the request.
func WithSignatureValidation(authToken, publicURL string) Option {
	return func(h *Handler) {
		if authToken == "" {
			return
		}
		validator := client.NewRequestValidator(authToken)
		h.validate = validator.Validate
		h.publicURL = strings.TrimSuffix(publicURL, "/")
	}
}

// NewHandler creates a webhook handler that forwards messages to bot.
func NewHandler(bot Responder, opts ...Option) *Handler {
	h := &Handler{bot: bot}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// UserID derives the user identifier from a sender address such as
// "whatsapp:+919812345678": the transport prefix and any '+' are removed.
func UserID(from string) string {
	if i := strings.Index(from, ":"); i >= 0 {
		from = from[i+1:]
	}
	return strings.TrimSpace(strings.ReplaceAll(from, "+", ""))
}

// ServeHTTP handles one inbound message.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	if h.validate != nil {
		if !h.validate(h.requestURL(r), formParams(r), r.Header.Get("X-Twilio-Signature")) {
			log.Printf("[Webhook] Signature verification failed for %s", r.URL.Path)
			http.Error(w, "invalid signature", http.StatusForbidden)
			return
		}
	}

	userID := UserID(r.FormValue("From"))
	if userID == "" {
		http.Error(w, "missing sender", http.StatusBadRequest)
		return
	}
	text := strings.TrimSpace(r.FormValue("Body"))

	reply, err := h.bot.Handle(r.Context(), userID, text)
	if err != nil {
		// No reply: Twilio retries the delivery on a 5xx.
		log.Printf("[Webhook] Failed to handle message from %s: %v", userID, err)
		http.Error(w, "failed to handle message", http.StatusInternalServerError)
		return
	}

	body, err := twiml.Messages([]twiml.Element{&twiml.MessagingMessage{Body: reply}})
	if err != nil {
		log.Printf("[Webhook] Failed to render TwiML for %s: %v", userID, err)
		http.Error(w, "failed to render reply", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, body)
}

// requestURL rebuilds the URL Twilio used when signing the request.
func (h *Handler) requestURL(r *http.Request) string {
	base := h.publicURL
	if base == "" {
		scheme := "https"
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		} else if r.TLS == nil {
			scheme = "http"
		}
		base = scheme + "://" + r.Host
	}
	return base + r.URL.RequestURI()
}

func formParams(r *http.Request) map[string]string {
	params := make(map[string]string, len(r.PostForm))
	for k, v := range r.PostForm {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}
