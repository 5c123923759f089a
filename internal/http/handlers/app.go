package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"trendyshop/internal/config"
	applog "trendyshop/internal/log"
	"trendyshop/internal/metrics"
)

const bodyLimit = 10 << 20 // product images go through /upload

// NewApp wires middleware and every route onto a fresh fiber app.
func NewApp(cfg config.Config, d *Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
		BodyLimit:    bodyLimit,
	})

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Output: applog.Writer(),
		Format: `{"level":"info","action":"http.access","time":"${time}","req_id":"${locals:requestid}",` +
			`"method":"${method}","path":"${path}","status":${status},"latency":"${latency}"}` + "\n",
		TimeFormat: time.RFC3339,
	}))
	origins := "*"
	if len(cfg.AllowedOrigins) > 0 {
		origins = strings.Join(cfg.AllowedOrigins, ",")
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, " + TokenHeader,
	}))
	app.Use(metrics.Middleware())

	// ---------- Static images ----------
	app.Static("/images", cfg.UploadDir)

	// ---------- Public ----------
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("App is Running") })
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", metrics.Handler())

	authLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.auth.hit", nil)
			return reject(c, fiber.StatusTooManyRequests, "Too many attempts. Please try again later.")
		},
	})
	app.Post("/signup", authLimiter, d.AuthHandler.Signup)
	app.Post("/login", authLimiter, d.AuthHandler.Login)

	// ---------- Catalog ----------
	app.Get("/allproducts", d.ProductHandler.All)
	app.Post("/addproduct", d.ProductHandler.Add)
	app.Post("/removeproduct", d.ProductHandler.Remove)
	app.Get("/newcollections", d.ProductHandler.NewCollections)
	app.Get("/popularinwomen", d.ProductHandler.PopularInWomen)
	app.Get("/categories", d.CategoryHandler.List)
	app.Get("/category/:name", d.CategoryHandler.Products)
	app.Post("/upload", d.UploadHandler.Upload)

	// ---------- Cart (token required) ----------
	gate := RequireToken(d.Tokens)
	app.Post("/addtocart", gate, d.CartHandler.Add)
	app.Post("/removefromcart", gate, d.CartHandler.Remove)
	app.Post("/getcart", gate, d.CartHandler.Get)

	app.Use(func(c *fiber.Ctx) error {
		return reject(c, fiber.StatusNotFound, "Not found")
	})
	return app
}
