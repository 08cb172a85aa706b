package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"altquery/internal/auth"
	intconfig "altquery/internal/config"
	router "altquery/internal/http"
	"altquery/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	if env.SecretToken == "" {
		log.Fatal("SECRET_TOKEN is not set")
	}

	ctx := context.Background()

	// Fail fast when the store is unreachable instead of serving against a
	// broken dependency.
	st, err := store.Connect(ctx, env.MongoURI)
	if err != nil {
		log.Fatalf("store connection failed: %v", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			log.Printf("store close failed: %v", err)
		}
	}()

	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatalf("index bootstrap failed: %v", err)
	}

	jwtm := auth.NewJWTManager(env.SecretToken, auth.TokenTTL)

	r := router.NewRouter(router.Deps{
		Env:             env,
		JWT:             jwtm,
		Queries:         store.NewQueriesStore(st.QueriesCollection()),
		Recommendations: store.NewRecommendationsStore(st.RecommendationCollection()),
		Help:            store.NewHelpStore(st.HelpCollection()),
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
