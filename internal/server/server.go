package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ecritures-dev/ecritures/internal/accounts"
	"github.com/ecritures-dev/ecritures/internal/journal"
)

// maxUploadSize caps order-export uploads.
const maxUploadSize = "10M"

// Server serves the upload/download form. One upload triggers one
// transformation and one download; no state is kept between requests.
type Server struct {
	echo  *echo.Echo
	chart *accounts.Chart
	opts  journal.Options
}

// New creates a Server with routes and middleware registered.
func New(chart *accounts.Chart, opts journal.Options) *Server {
	s := &Server{chart: chart, opts: opts}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxUploadSize))

	e.GET("/", s.index)
	e.POST("/convert", s.convert)
	e.GET("/healthz", s.health)

	s.echo = e
	return s
}

// Start listens on addr until the process is stopped.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Handler exposes the underlying HTTP handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
