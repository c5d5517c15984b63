package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"learnit-service/internal/application/common"
	"learnit-service/internal/application/interfaces"
)

const maxBodySize = "1M"

type Server struct {
	Echo *echo.Echo

	users    interfaces.UserService
	posts    interfaces.PostService
	verifier TokenVerifier
	log      logrus.FieldLogger
}

func NewServer(
	users interfaces.UserService,
	posts interfaces.PostService,
	verifier TokenVerifier,
	log logrus.FieldLogger,
) *Server {
	s := &Server{
		Echo:     echo.New(),
		users:    users,
		posts:    posts,
		verifier: verifier,
		log:      log,
	}

	e := s.Echo
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(log)

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(accessLog(log))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxBodySize))

	s.routes()
	return s
}

func (s *Server) routes() {
	requireAuth := RequireAuth(s.verifier, s.log)

	s.Echo.GET("/healthz", func(c echo.Context) error {
		return sendJSONResponse(c, echo.Map{})
	})

	api := s.Echo.Group("/api")

	auth := api.Group("/auth")
	auth.GET("", s.handleCurrentUser, requireAuth)
	auth.POST("/register", s.handleRegister)
	auth.POST("/login", s.handleLogin)

	posts := api.Group("/posts", requireAuth)
	posts.GET("", s.handleListPosts)
	posts.GET("/:id", s.handleGetPost)
	posts.POST("", s.handleCreatePost)
	posts.PUT("/:id", s.handleUpdatePost)
	posts.DELETE("/:id", s.handleDeletePost)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.Echo.ServeHTTP(w, r) }

// Start blocks until the server stops. A clean shutdown returns nil.
func (s *Server) Start(addr string) error {
	s.log.WithField("addr", addr).Info("http server listening")
	if err := s.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}

// bindBody decodes the JSON body only; path and query never feed commands.
func bindBody(c echo.Context, dst interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return &common.Error{Kind: common.KindValidation, Message: "Invalid request body", Err: err}
	}
	return nil
}

func accessLog(log logrus.FieldLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("request")
			return nil
		},
	})
}
