package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type MonitorHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewMonitorHttpServer(router *Router, muxRouter *mux.Router, addr string) *MonitorHttpServer {
	return &MonitorHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
	}
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *MonitorHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[MonitorHttpServer] Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-stop
	log.Println("[MonitorHttpServer] Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[MonitorHttpServer] Server exiting")
}
