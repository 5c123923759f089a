package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"trendyshop/internal/config"
	"trendyshop/internal/http/handlers"
	applog "trendyshop/internal/log"
	"trendyshop/internal/repos"
)

type testApp struct {
	app  *fiber.App
	db   *sqlx.DB
	deps *handlers.Deps
	cfg  config.Config
}

func newTestApp(t *testing.T) testApp {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Config{
		JWTSecret:       "test-secret",
		UploadDir:       t.TempDir(),
		PublicBaseURL:   "http://localhost:4000",
		PasswordHashing: "plain",
	}
	deps, err := handlers.NewDeps(db, cfg)
	if err != nil {
		t.Fatalf("deps: %v", err)
	}
	return testApp{app: handlers.NewApp(cfg, deps), db: db, deps: deps, cfg: cfg}
}

// do sends a JSON request; token is put in the auth-token header when set.
func (a testApp) do(t *testing.T, method, path, token string, body any) (*http.Response, string) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(handlers.TokenHeader, token)
	}
	resp, err := a.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	out, _ := io.ReadAll(resp.Body)
	return resp, string(out)
}

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		t.Fatalf("decode %q: %v", body, err)
	}
	return v
}

type authResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Errors  string `json:"errors"`
	Error   string `json:"error"`
}

func (a testApp) signup(t *testing.T, name, email, password string) string {
	t.Helper()
	resp, body := a.do(t, "POST", "/signup", "", map[string]string{"username": name, "email": email, "password": password})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signup status %d: %s", resp.StatusCode, body)
	}
	r := decode[authResponse](t, body)
	if !r.Success || r.Token == "" {
		t.Fatalf("signup response: %s", body)
	}
	return r.Token
}

func (a testApp) cart(t *testing.T, token string) map[string]int {
	t.Helper()
	resp, body := a.do(t, "POST", "/getcart", token, map[string]any{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("getcart status %d: %s", resp.StatusCode, body)
	}
	return decode[map[string]int](t, body)
}

type logEntry struct {
	Level  string         `json:"level"`
	Kind   string         `json:"kind"`
	Action string         `json:"action"`
	Err    string         `json:"err"`
	Fields map[string]any `json:"fields"`
}

// captureLogs points the app log at a buffer for the duration of fn.
// Build the app inside fn so the access logger shares the buffer.
func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	var buf bytes.Buffer
	var mu sync.Mutex
	applog.Init(&lockedWriter{w: &buf, mu: &mu}, "debug")
	defer applog.Init(os.Stdout, "info")

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

type lockedWriter struct {
	w  *bytes.Buffer
	mu *sync.Mutex
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

func findAction(entries []logEntry, action string) (logEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return logEntry{}, false
}
