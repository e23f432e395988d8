// File: controllers/flash.go
package controllers

import (
	"club-events/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const flashKey = "flash"

// setFlash stores a one-time message shown on the next page.
func setFlash(c *gin.Context, msg string) {
	session := sessions.Default(c)
	session.AddFlash(msg, flashKey)
	if err := session.Save(); err != nil {
		logger.Warn.Printf("setFlash: could not save session: %v", err)
	}
}

// popFlash returns and clears the pending flash messages.
func popFlash(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		logger.Warn.Printf("popFlash: could not save session: %v", err)
	}

	msgs := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}
