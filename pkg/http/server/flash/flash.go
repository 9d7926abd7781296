package flash

import (
	"net/http"
	"portfolio/pkg/constants"

	"github.com/gorilla/sessions"
)

const (
	KindSuccess = "success"
	KindError   = "error"
)

// Message is a one-shot notice shown on the next rendered page.
type Message struct {
	Kind string
	Text string
}

type Flasher interface {
	Add(w http.ResponseWriter, r *http.Request, kind, text string) error
	// Pop returns and clears every pending message. It must run before the response body is written.
	Pop(w http.ResponseWriter, r *http.Request) ([]Message, error)
}

type cookieFlasher struct {
	store *sessions.CookieStore
}

func NewCookieFlasher(secret string) Flasher {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &cookieFlasher{store: store}
}

func (f *cookieFlasher) Add(w http.ResponseWriter, r *http.Request, kind, text string) error {
	session, err := f.store.Get(r, constants.FlashSessionName)
	if err != nil && session == nil {
		return err
	}

	session.AddFlash(text, kind)
	return session.Save(r, w)
}

func (f *cookieFlasher) Pop(w http.ResponseWriter, r *http.Request) ([]Message, error) {
	session, err := f.store.Get(r, constants.FlashSessionName)
	if err != nil && session == nil {
		return nil, err
	}

	var messages []Message
	for _, kind := range []string{KindSuccess, KindError} {
		for _, flash := range session.Flashes(kind) {
			if text, ok := flash.(string); ok {
				messages = append(messages, Message{Kind: kind, Text: text})
			}
		}
	}

	if len(messages) == 0 {
		return nil, nil
	}
	return messages, session.Save(r, w)
}
