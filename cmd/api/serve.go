package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	handlerHttp "github.com/mikiasgoitom/PetLikes/internal/handler/http"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/validator"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer app.Close()
	cfg, log := app.cfg, app.log

	if cfg.NATSURL != "" {
		nc, err := external_services.ConnectNATS(cfg.NATSURL)
		if err != nil {
			return err
		}
		defer nc.Drain()
		app.likes.SetLikeCountPublisher(external_services.NewNATSCountPublisher(nc))
	}

	if cfg.GetWebhookURL() == "" {
		log.Warnf("WEBHOOK_NOTIFICATIONS_URL not set, like notifications are skipped")
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	identity := jwt.NewIdentityProvider(jwt.NewJWTManager(cfg.JWTSecret))
	handlerHttp.NewRouter(app.likes, identity, cfg).SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server running on port %s (storage=%s, policy=%s)", cfg.Port, cfg.StorageDriver, cfg.NotificationPolicy)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
