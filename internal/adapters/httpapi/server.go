// Package httpapi exposes the application over HTTP for the browser
// frontend: scraping, calendar generation, PDF export, email delivery and
// stored menu retrieval.
package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/lunchcal/internal/core/ports"
)

// Application is the slice of the app layer the HTTP surface needs.
type Application interface {
	ScrapeToday(ctx context.Context, url string) (*domain.MenuItem, error)
	GenerateCalendar(ctx context.Context, menu domain.WeekMenu, weekID domain.WeekID) (string, error)
	ExportPDF(ctx context.Context, menu domain.WeekMenu, weekID domain.WeekID) (string, error)
	SendEmail(recipient, calendarURL, pdfURL string, weekID domain.WeekID) error
	GetMenu(weekID domain.WeekID) (*domain.MenuDocument, error)
}

// Server wires the gin router to the application.
type Server struct {
	app    Application
	logger ports.Logger
	router *gin.Engine
}

// NewServer creates the HTTP surface.
func NewServer(app Application, logger ports.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		app:    app,
		logger: logger,
		router: gin.New(),
	}

	s.router.Use(gin.Recovery(), CORS())

	s.router.POST("/scrape", s.handleScrape)
	s.router.POST("/calendar", s.handleCalendar)
	s.router.POST("/pdf", s.handlePDF)
	s.router.POST("/email", s.handleEmail)
	s.router.GET("/menus/:week", s.handleGetMenu)
	s.router.GET("/healthz", s.handleHealth)
	// Preflight must reach the CORS middleware for every route.
	s.router.OPTIONS("/*path", func(*gin.Context) {})

	return s
}

// Handler returns the router as a plain http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// errorStatus maps an application error onto an HTTP status. zerr chains
// embed their cause messages, so matching is by sentinel text.
func errorStatus(err error) int {
	switch {
	case matches(err, domain.ErrMissingURL),
		matches(err, domain.ErrMissingMenuData),
		matches(err, domain.ErrMissingRecipient),
		matches(err, domain.ErrInvalidWeekID),
		matches(err, domain.ErrEmptyMenu):
		return http.StatusBadRequest
	case matches(err, domain.ErrScrapeFailed):
		return http.StatusBadGateway
	case matches(err, domain.ErrDayNotFound),
		matches(err, domain.ErrMenuNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func matches(err error, sentinel error) bool {
	return strings.Contains(err.Error(), sentinel.Error())
}

func (s *Server) fail(c *gin.Context, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
