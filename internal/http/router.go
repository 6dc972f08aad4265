// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripdesk/internal/http/handlers"
	"tripdesk/internal/http/middleware"
)

// RouterDeps carries the collaborators the routes need.
type RouterDeps struct {
	Assistant handlers.MessageProcessor
	Quota     handlers.QuotaService
	Turns     handlers.TurnSaver
	Log       *zap.Logger
}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	assistantHandler := handlers.NewAssistantHandler(deps.Assistant, deps.Quota, deps.Turns, deps.Log)
	r.POST("/api/assistant/chat", assistantHandler.Chat)

	itineraryHandler := handlers.NewItineraryHandler()
	r.POST("/api/assistant/itinerary/export", itineraryHandler.Export)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
