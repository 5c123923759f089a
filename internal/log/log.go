package log

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	out    io.Writer = os.Stdout
	logger           = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// Init points the application log at w with the given minimum level
// (debug, info, warn, error). Unknown levels fall back to info.
func Init(w io.Writer, level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	mu.Lock()
	defer mu.Unlock()
	out = w
	logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Writer returns the current sink so other loggers (fiber's access log) share it.
func Writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
}

func write(ev func(zerolog.Logger) *zerolog.Event, c *fiber.Ctx, action string, err error, fields map[string]any) {
	mu.RLock()
	l := logger
	mu.RUnlock()

	e := ev(l)
	if e == nil {
		return
	}
	e = e.Str("action", action)
	if c != nil {
		e = e.Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode())
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e = e.Str("req_id", rid)
		}
		if uid, ok := c.Locals("userID").(string); ok && uid != "" {
			e = e.Str("user_id", uid)
		}
	}
	if err != nil {
		e = e.Str("err", err.Error())
	}
	if len(fields) > 0 {
		e = e.Interface("fields", fields)
	}
	e.Send()
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	write(func(l zerolog.Logger) *zerolog.Event { return l.Info() }, c, action, nil, fields)
}

func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(func(l zerolog.Logger) *zerolog.Event { return l.Info().Str("kind", "audit") }, c, action, nil, fields)
}

func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(func(l zerolog.Logger) *zerolog.Event { return l.Warn() }, c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(func(l zerolog.Logger) *zerolog.Event { return l.Error() }, c, action, err, fields)
}
