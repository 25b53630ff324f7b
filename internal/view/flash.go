package view

import (
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// FlashSessionName is the session the login page reads its notices from.
const FlashSessionName = "flash-session"

const (
	FlashNotice = "notice"
	FlashError  = "error"
)

// SetFlash queues a one-time message for the next page the visitor sees.
// Without a session on the request the message is dropped.
func SetFlash(c echo.Context, kind, message string) {
	sess, err := session.Get(FlashSessionName, c)
	if err != nil {
		slog.Debug("flash dropped, no session", "kind", kind, "error", err)
		return
	}
	sess.AddFlash(message, kind)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Warn("failed to save flash", "error", err)
	}
}

// Flashes retrieves and clears the queued messages of one kind.
func Flashes(c echo.Context, kind string) []string {
	sess, err := session.Get(FlashSessionName, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes(kind)
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(c.Request(), c.Response())

	messages := make([]string, 0, len(raw))
	for _, m := range raw {
		if s, ok := m.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
