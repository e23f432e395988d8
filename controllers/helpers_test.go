// file: controllers/helpers_test.go
package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"club-events/logger"
	"club-events/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const testSessionName = "testsession"

// setupTestRouter creates a new Gin engine with the error handler, session
// middleware and fake HTML templates.
func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Discard()
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions(testSessionName, store))

	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}
	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes minimal templates that print the data the handlers pass.
func createDummyTemplates(dir string) error {
	templates := map[string]string{
		"index.html":        `{{range .events}}[{{.Title}}]{{end}}{{range .flash}} flash:{{.}}{{end}}`,
		"events.html":       `{{range .events}}[{{.Title}}]{{end}} clubs:{{range .clubs}}{{.}};{{end}} selected:{{.selectedClub}}{{range .flash}} flash:{{.}}{{end}}`,
		"create_event.html": `<form>create event</form>`,
		"register.html":     `register {{.eventID}}{{with .event}} for {{.Title}}{{end}}`,
		"dashboard.html":    `{{range .users}}{{.Name}} attended={{.Attended}};{{end}} count={{.attendedCount}}`,
	}

	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// doGet performs a GET request against the router, optionally carrying cookies.
func doGet(router *gin.Engine, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doPostForm submits a url-encoded form to the router.
func doPostForm(router *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// sessionCookie extracts the test session cookie from a response.
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == testSessionName {
			return c
		}
	}
	return nil
}
