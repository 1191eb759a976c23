package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	auth "github.com/erlynorbel/chemical-process-simulator/internal/auth"
	batch "github.com/erlynorbel/chemical-process-simulator/internal/calc/batch"
	export "github.com/erlynorbel/chemical-process-simulator/internal/calc/export"
	importer "github.com/erlynorbel/chemical-process-simulator/internal/calc/importer"
	process "github.com/erlynorbel/chemical-process-simulator/internal/calc/process"
	report "github.com/erlynorbel/chemical-process-simulator/internal/calc/report"
	sweep "github.com/erlynorbel/chemical-process-simulator/internal/calc/sweep"
	config "github.com/erlynorbel/chemical-process-simulator/internal/config"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if origin != "*" {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %v", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

func HandleList(router *mux.Router, cfg config.Config, authEnv *auth.Authenv) {
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/logout", authEnv.LogoutHandler).Methods("POST")

	processH := &process.Handler{}
	batchH := &batch.Handler{}
	api.HandleFunc("/process/calc", processH.Calc).Methods("POST")
	api.HandleFunc("/process/batch", batchH.Calc).Methods("POST")

	secure := func(h http.HandlerFunc) http.Handler {
		return authEnv.AuthMiddleware(h)
	}

	sweepH := &sweep.Handler{}
	reportH := &report.Handler{}
	exportH := &export.Handler{}
	importH := &importer.Handler{}

	api.Handle("/process/sweep", secure(sweepH.Calc)).Methods("POST")
	api.Handle("/process/report/pdf", secure(reportH.Generate)).Methods("POST")
	api.Handle("/process/export/xlsx", secure(exportH.Process)).Methods("POST")
	api.Handle("/process/export/sweep-xlsx", secure(exportH.Sweep)).Methods("POST")
	api.Handle("/process/import/xlsx", secure(importH.Feeds)).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}
	authEnv := &auth.Authenv{
		JWTkey:       []byte(cfg.TokenKey),
		Login:        cfg.AdminLogin,
		PasswordHash: []byte(cfg.AdminPasswordHash),
		Secure:       cfg.TLS(),
	}

	router := mux.NewRouter()
	HandleList(router, cfg, authEnv)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           CORS(cfg.CORSOrigin, logging(router)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Starting server on %s", cfg.Addr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
