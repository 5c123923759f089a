package handlers_test

import (
	"testing"
)

func TestAuthAndCartEventsLogged(t *testing.T) {
	entries := captureLogs(t, func() {
		a := newTestApp(t)
		tok := a.signup(t, "a", "a@x.com", "p")
		a.do(t, "POST", "/signup", "", map[string]string{"username": "a", "email": "a@x.com", "password": "p"})
		a.do(t, "POST", "/login", "", map[string]string{"email": "a@x.com", "password": "bad"})
		a.do(t, "POST", "/login", "", map[string]string{"email": "a@x.com", "password": "p"})
		a.do(t, "POST", "/addtocart", "", map[string]any{"itemId": 1})
		a.do(t, "POST", "/addtocart", "junk", map[string]any{"itemId": 1})
		a.do(t, "POST", "/addtocart", tok, map[string]any{"itemId": 1})
	})

	if e, ok := findAction(entries, "auth.signup.success"); !ok || e.Kind != "audit" {
		t.Fatalf("signup audit missing: %+v", entries)
	}
	if e, ok := findAction(entries, "auth.signup.duplicate"); !ok || e.Level != "warn" {
		t.Fatal("duplicate signup not logged")
	}
	e, ok := findAction(entries, "auth.login.fail")
	if !ok || e.Level != "warn" || e.Fields["reason"] != "Wrong Password" {
		t.Fatalf("login failure not logged: %+v", e)
	}
	if _, ok := findAction(entries, "auth.login.success"); !ok {
		t.Fatal("login success not logged")
	}
	if _, ok := findAction(entries, "auth.token.missing"); !ok {
		t.Fatal("missing token not logged")
	}
	if _, ok := findAction(entries, "auth.token.invalid"); !ok {
		t.Fatal("invalid token not logged")
	}
	if _, ok := findAction(entries, "http.access"); !ok {
		t.Fatal("access log missing")
	}
	for _, e := range entries {
		if e.Fields["password"] != nil {
			t.Fatalf("password leaked into logs: %+v", e)
		}
	}
}

func TestServerFaultLogged(t *testing.T) {
	entries := captureLogs(t, func() {
		a := newTestApp(t)
		tok, err := a.deps.Tokens.Issue("ghost")
		if err != nil {
			t.Fatal(err)
		}
		a.do(t, "POST", "/getcart", tok, map[string]any{})
	})
	e, ok := findAction(entries, "request.fail")
	if !ok || e.Level != "error" || e.Err != "user not found" {
		t.Fatalf("request.fail missing: %+v", entries)
	}
}
