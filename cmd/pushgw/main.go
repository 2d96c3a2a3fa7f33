package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"meetpay/internal/app/handler"
	"meetpay/internal/app/logger"
	mw "meetpay/internal/app/middleware"
	"meetpay/pkg/push"
)

// dev stand-in for the push gateway: accepts every message and logs it
func main() {
	// setting up signal capturing
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		osCall := <-stop
		log.Printf("System call: %+v", osCall)
		cancel()
	}()

	l := logger.New(true, true)

	if err := runServer(ctx, "127.0.0.1:8090", l); err != nil {
		l.Fatal().Err(err).Msg("Server run failed")
	}
}

func runServer(ctx context.Context, listenAddr string, l logger.Logger) (err error) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(mw.Log(l))
	r.Post("/api/messages", SendMessage)

	srv := &http.Server{
		Addr:    listenAddr,
		Handler: r,
	}

	go func() {
		log.Printf("Listening on %s", listenAddr)
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("")
		}
	}()

	log.Printf("Server started")
	<-ctx.Done()
	log.Printf("Server stopped")

	return srv.Shutdown(context.Background())
}

func SendMessage(w http.ResponseWriter, r *http.Request) {
	in := &push.SendRequest{}
	if err := json.NewDecoder(r.Body).Decode(in); err != nil {
		handler.WriteError(w, err, http.StatusBadRequest)
		return
	}

	log.Info().
		Str("token", in.Token).
		Str("title", in.Title).
		Str("body", in.Body).
		Msg("Message accepted")

	handler.WriteResponse(w, &push.SendResponse{ID: xid.New().String()}, http.StatusOK)
}
