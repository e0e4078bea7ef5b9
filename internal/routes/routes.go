// Package routes mounts the HTTP and websocket surface onto a fiber app.
package routes

import (
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/fathima-sithara/campus-connect/internal/auth"
	"github.com/fathima-sithara/campus-connect/internal/handlers"
	"github.com/fathima-sithara/campus-connect/internal/middleware"
	"github.com/fathima-sithara/campus-connect/internal/ws"
)

// Deps is everything the router mounts. Validator and Limiter are optional;
// when nil the corresponding middleware is skipped.
type Deps struct {
	Students    *handlers.StudentHandler
	Matches     *handlers.MatchHandler
	ChatRooms   *handlers.ChatRoomHandler
	Messages    *handlers.MessageHandler
	Events      *handlers.EventHandler
	StudyGroups *handlers.StudyGroupHandler
	News        *handlers.NewsHandler
	Meetups     *handlers.MeetupHandler
	WS          *ws.Server

	Validator *auth.Validator
	Limiter   *middleware.RateLimiter
}

func Setup(app *fiber.App, d Deps) {
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Websocket upgrade. Registered before the api group so the handshake
	// skips the bearer-token middleware (browsers cannot set headers on an
	// upgrade request). Everything after the handshake runs in the
	// transport's read/write pumps.
	app.Use("/api/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/api/ws", websocket.New(d.WS.Handler()))

	api := app.Group("/api")
	if d.Validator != nil {
		api.Use(middleware.JWTAuth(d.Validator))
	}
	if d.Limiter != nil {
		api.Use(d.Limiter.ByKey(func(c *fiber.Ctx) string {
			if id, ok := c.Locals("user_id").(string); ok && id != "" {
				return id
			}
			return c.IP()
		}))
	}

	students := api.Group("/students")
	students.Get("/", d.Students.GetAll)
	students.Get("/:id", d.Students.GetByID)
	students.Post("/", d.Students.Create)
	students.Put("/:id", d.Students.Update)
	students.Patch("/:id", d.Students.Update)
	students.Delete("/:id", d.Students.Delete)

	matches := api.Group("/matches")
	matches.Post("/calculate", d.Matches.Calculate)
	matches.Post("/", d.Matches.CreateConnection)
	matches.Get("/:studentId", d.Matches.GetConnections)
	matches.Delete("/:id", d.Matches.DeleteConnection)

	rooms := api.Group("/chat-rooms")
	rooms.Get("/", d.ChatRooms.GetAll)
	rooms.Post("/", d.ChatRooms.Create)
	rooms.Post("/direct", d.ChatRooms.Direct)
	rooms.Get("/:id", d.ChatRooms.GetByID)
	rooms.Get("/:id/members", d.ChatRooms.Members)
	rooms.Delete("/:id", d.ChatRooms.Delete)

	messages := api.Group("/messages")
	messages.Get("/:roomId", d.Messages.GetByRoom)
	messages.Post("/", d.Messages.Create)

	events := api.Group("/events")
	events.Get("/", d.Events.GetAll)
	events.Get("/:id", d.Events.GetByID)
	events.Post("/", d.Events.Create)
	events.Put("/:id", d.Events.Update)
	events.Delete("/:id", d.Events.Delete)
	events.Post("/:id/rsvp", d.Events.RSVP)
	events.Delete("/:id/rsvp", d.Events.CancelRSVP)

	groups := api.Group("/study-groups")
	groups.Get("/", d.StudyGroups.GetAll)
	groups.Get("/:id", d.StudyGroups.GetByID)
	groups.Post("/", d.StudyGroups.Create)
	groups.Put("/:id", d.StudyGroups.Update)
	groups.Delete("/:id", d.StudyGroups.Delete)
	groups.Post("/:id/join", d.StudyGroups.Join)
	groups.Post("/:id/leave", d.StudyGroups.Leave)

	news := api.Group("/news")
	news.Get("/", d.News.GetAll)
	news.Get("/:id", d.News.GetByID)
	news.Post("/", d.News.Create)
	news.Put("/:id", d.News.Update)
	news.Delete("/:id", d.News.Delete)

	meetups := api.Group("/meetup-locations")
	meetups.Get("/", d.Meetups.GetAll)
	meetups.Get("/:id", d.Meetups.GetByID)
	meetups.Post("/", d.Meetups.Create)
	meetups.Delete("/:id", d.Meetups.Delete)
}
