// Package main Translation Review API
// @title Translation Review API
// @version 1.0
// @description Rate and comment English/Spanish translation samples and their matched curriculum standards
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/translation-review/docs"
	"github.com/DjordjeVuckovic/translation-review/internal/app"
	"github.com/DjordjeVuckovic/translation-review/internal/router"
	"github.com/DjordjeVuckovic/translation-review/internal/server"
	pkgserver "github.com/DjordjeVuckovic/translation-review/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	app.ConfigureLogging()

	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	health := pkgserver.NewNamedHealthChecker()

	s := server.New(cfg.Server, health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Translation Review API is running")
	})

	a, err := app.New(s.Context(), cfg.App)
	if err != nil {
		slog.Error("Failed to build review application", "error", err)
		os.Exit(1)
		return
	}
	health.Add("blob_store", a.Blobs)

	a.Session.Start(s.Context())

	reviewRouter := router.NewReviewRouter(s.Echo, a.Session, a.Gate)
	reviewRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	a.Close()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
