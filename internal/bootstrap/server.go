package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"flightbooking/api"
	"flightbooking/config"
	"flightbooking/internal/middleware"
	"flightbooking/internal/service/airports"
	"flightbooking/internal/service/booking"
	"flightbooking/internal/service/flights"
	"flightbooking/internal/web"
	"flightbooking/pkg/logger"
	"flightbooking/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Airports airports.AirportUseCase
	Flights  flights.FlightUseCase
	Bookings booking.BookingUseCase
	Logger   logger.Logger
	Metrics  *metrics.Metrics
}

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, deps Deps) error {
	router := newRouter(cfg, deps)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.Metrics(deps.Metrics))
	router.Use(middleware.CORS())

	apiGroup := router.Group("/api")
	api.NewAirportHandler(deps.Airports, deps.Logger).Register(apiGroup.Group("/airports"))
	api.NewFlightHandler(deps.Flights, deps.Logger).Register(apiGroup.Group("/flights"))
	api.NewBookingHandler(deps.Bookings, deps.Logger, deps.Metrics).Register(apiGroup.Group("/bookings"))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs", func(c *gin.Context) {
			renderSwaggerUI(c.Writer, "/swagger/openapi.json")
		})
	}

	templatesGlob := cfg.HTTP.TemplatesGlob
	if templatesGlob == "" {
		templatesGlob = "internal/web/templates/*.tmpl"
	}
	router.SetFuncMap(web.TemplateFuncs())
	router.LoadHTMLGlob(templatesGlob)
	web.NewHandler(deps.Airports, deps.Flights, deps.Bookings, deps.Logger).Register(router)

	return router
}

func renderSwaggerUI(w http.ResponseWriter, jsonURL string) {
	html := fmt.Sprintf(`<!DOCTYPE html>
    <html>
    <head>
        <title>API Docs</title>
        <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@latest/swagger-ui.css">
    </head>
    <body>
        <div id="swagger-ui"></div>
        <script src="https://unpkg.com/swagger-ui-dist@latest/swagger-ui-bundle.js"></script>
        <script>
            window.onload = function() {
                window.ui = SwaggerUIBundle({
                    url: "%s",
                    dom_id: '#swagger-ui'
                });
            };
        </script>
    </body>
    </html>`, jsonURL)

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}
