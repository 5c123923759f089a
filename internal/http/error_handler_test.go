package handlers_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"trendyshop/internal/http/handlers"
)

func TestErrorHandlerJSONShape(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Get("/err", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "db timeout")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("kaboom")
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	cases := []struct {
		path string
		code int
		msg  string
	}{
		{"/err", 500, "db timeout"},
		{"/panic", 500, "kaboom"},
		{"/teapot", 418, "short and stout"},
	}
	for _, c := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", c.path, nil))
		if err != nil {
			t.Fatalf("%s: %v", c.path, err)
		}
		if resp.StatusCode != c.code {
			t.Fatalf("%s: expected %d, got %d", c.path, c.code, resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		s := string(body)
		if !strings.Contains(s, `"success":false`) || !strings.Contains(s, c.msg) {
			t.Fatalf("%s: body=%s", c.path, s)
		}
	}
}

func TestUnknownRouteIs404JSON(t *testing.T) {
	a := newTestApp(t)
	resp, body := a.do(t, "GET", "/nope", "", nil)
	if resp.StatusCode != 404 || !strings.Contains(body, `"success":false`) {
		t.Fatalf("404: %d %s", resp.StatusCode, body)
	}
	resp, body = a.do(t, "GET", "/healthz", "", nil)
	if resp.StatusCode != 200 || !strings.Contains(body, `"ok":true`) {
		t.Fatalf("healthz: %d %s", resp.StatusCode, body)
	}
}
