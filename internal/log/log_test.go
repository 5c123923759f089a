package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l == "" {
			continue
		}
		m := map[string]any{}
		if err := json.Unmarshal([]byte(l), &m); err != nil {
			t.Fatalf("not json: %q", l)
		}
		out = append(out, m)
	}
	return out
}

func TestLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, "info")
	defer Init(os.Stdout, "info")

	Audit(nil, "auth.login.success", map[string]any{"email": "a@x.com"})
	Security(nil, "auth.token.invalid", nil)
	Error(nil, "server.error", errors.New("boom"), nil)

	got := lines(t, &buf)
	if len(got) != 3 {
		t.Fatalf("want 3 lines, got %d: %s", len(got), buf.String())
	}
	if got[0]["level"] != "info" || got[0]["kind"] != "audit" || got[0]["action"] != "auth.login.success" {
		t.Fatalf("audit line = %v", got[0])
	}
	if f, _ := got[0]["fields"].(map[string]any); f["email"] != "a@x.com" {
		t.Fatalf("fields = %v", got[0]["fields"])
	}
	if got[1]["level"] != "warn" {
		t.Fatalf("security line = %v", got[1])
	}
	if got[2]["level"] != "error" || got[2]["err"] != "boom" {
		t.Fatalf("error line = %v", got[2])
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, "error")
	defer Init(os.Stdout, "info")

	Info(nil, "noise", nil)
	Security(nil, "noise", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below error, got %s", buf.String())
	}
	if Writer() != &buf {
		t.Fatal("writer not shared")
	}
}
