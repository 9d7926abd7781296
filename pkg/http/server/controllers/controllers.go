package controllers

import (
	"net/http"
	"portfolio/pkg/http/server/flash"

	"github.com/hashicorp/go-hclog"
)

// seeOther stores an optional flash message and redirects to target with 303 See Other.
func seeOther(w http.ResponseWriter, r *http.Request, flasher flash.Flasher, logger hclog.Logger, kind, text, target string) {
	if flasher != nil && text != "" {
		if err := flasher.Add(w, r, kind, text); err != nil {
			logger.Warn("failed to store flash message", "error", err)
		}
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func popFlashes(w http.ResponseWriter, r *http.Request, flasher flash.Flasher, logger hclog.Logger) []flash.Message {
	messages, err := flasher.Pop(w, r)
	if err != nil {
		logger.Warn("failed to read flash messages", "error", err)
	}
	return messages
}
