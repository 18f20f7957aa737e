package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/markusressel/plant2go/internal/events"
	"github.com/markusressel/plant2go/internal/state"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	EndpointPathAlive = "/alive/"
	metricsSubsystem  = "api"
)

// Server serves the latest published plant state and the event log.
// All endpoints are read-only.
type Server struct {
	store *state.Store
	log   *events.Log
}

func NewServer(store *state.Store, log *events.Log) *Server {
	return &Server{
		store: store,
		log:   log,
	}
}

// CreateRestService builds the echo instance with all endpoints registered.
// If registerer is not nil, request metrics are exported with it.
func (s *Server) CreateRestService(registerer prometheus.Registerer) (*echo.Echo, error) {
	echoRest := echo.New()
	echoRest.HideBanner = true
	echoRest.HidePort = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())
	echoRest.Use(middleware.Recover())

	if registerer != nil {
		metrics, err := echoprometheus.MiddlewareConfig{
			Namespace:  "plant2go",
			Subsystem:  metricsSubsystem,
			Registerer: registerer,
			Skipper: func(c echo.Context) bool {
				return c.Path() == EndpointPathAlive
			},
		}.ToMiddleware()
		if err != nil {
			return nil, fmt.Errorf("unable to create metrics middleware: %w", err)
		}
		echoRest.Use(metrics)
	}

	echoRest.GET(EndpointPathAlive, isAlive)

	s.registerSensorEndpoints(echoRest)
	s.registerActuatorEndpoints(echoRest)
	s.registerEventEndpoints(echoRest)

	return echoRest, nil
}
