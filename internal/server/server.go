package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medtime/internal/auth"
	apperrors "medtime/internal/errors"
	"medtime/internal/ledger"
	"medtime/internal/validation"
)

// Server assembles the HTTP API over the ledger and the auth service.
type Server struct {
	engine *gin.Engine
	ledger *ledger.Store
	auth   *auth.Service
	log    *zap.Logger
}

// New builds the server and registers all routes.
func New(ledgerStore *ledger.Store, authService *auth.Service, log *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(log))

	s := &Server{
		engine: engine,
		ledger: ledgerStore,
		auth:   authService,
		log:    log,
	}
	s.registerRoutes()
	return s
}

// Engine exposes the underlying gin engine, used as an http.Handler.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.engine.Group("/api/v1")

	v1.POST("/auth/login", s.handleLogin)
	v1.POST("/auth/signup", s.handleSignup)

	authed := v1.Group("")
	authed.Use(Authentication(s.auth))

	authed.GET("/entries", s.handleListEntries)
	authed.POST("/entries", s.handleAddEntry)
	authed.PATCH("/entries/:id", s.handleUpdateEntry)
	authed.DELETE("/entries/:id", s.handleDeleteEntry)
	authed.DELETE("/entries", s.handleDeleteAllEntries)

	authed.GET("/timer", s.handleGetTimer)
	authed.POST("/timer/start", s.handleStartTimer)
	authed.POST("/timer/stop", s.handleStopTimer)

	authed.GET("/schedule", s.handleGetSchedule)
	authed.PUT("/schedule", s.handleUpdateSchedule)

	authed.GET("/stats/week", s.handleWeekStats)
	authed.GET("/stats/summary", s.handleSummaryStats)

	authed.GET("/reports/:period", s.handleDownloadReport)

	authed.POST("/groups", s.handleCreateGroup)
	authed.POST("/groups/:id/join", s.handleJoinGroup)
	authed.POST("/groups/:id/leave", s.handleLeaveGroup)
	authed.DELETE("/groups/:id", s.handleDeleteGroup)

	authed.PUT("/profile", s.handleUpdateProfile)
}

// respondError maps an application error onto the HTTP error envelope.
func (s *Server) respondError(c *gin.Context, err error) {
	if apperrors.ShouldLogError(err) {
		s.log.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}

	message := apperrors.GetUserMessage(err)
	if ve, ok := err.(*validation.ValidationError); ok {
		message = ve.GetUserFriendlyMessage()
	}
	c.JSON(statusForError(err), NewErrorResponse(message))
}
