// Package server exposes the bulletin board over HTTP. It stores and serves
// opaque blobs, enforces the room state machine, and authenticates the
// chair; everything cryptographic stays on the clients.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cryptosanta/cryptosanta/pkg/room"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	router *gin.Engine
	addr   string
	log    zerolog.Logger
}

// New wires the routes onto a gin engine.
func New(addr string, store *room.Store, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	router.GET("/health", healthHandler())
	router.POST("/room", createRoomHandler(store))
	router.GET("/room/:id", getRoomHandler(store))
	router.POST("/room/:id/register", registerHandler(store))
	router.GET("/room/:id/participants", participantsHandler(store))
	router.POST("/room/:id/sort", sortHandler(store))
	router.POST("/room/:id/message", messageHandler(store))
	router.GET("/room/:id/messages", messagesHandler(store))

	return &Server{router: router, addr: addr, log: log}
}

// Router returns the underlying engine, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.router}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info().Str("addr", s.addr).Msg("bulletin board listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	}
}
