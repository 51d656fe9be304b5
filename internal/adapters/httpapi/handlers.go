package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.trai.ch/lunchcal/internal/core/domain"
)

type scrapeRequest struct {
	URL string `json:"url"`
}

type calendarRequest struct {
	MenuData domain.WeekMenu `json:"menu_data"`
	WeekID   string          `json:"week_id"`
}

type emailRequest struct {
	Recipient   string `json:"recipient"`
	CalendarURL string `json:"calendar_url"`
	PDFURL      string `json:"pdf_url"`
	WeekID      string `json:"week_id"`
}

func (s *Server) handleScrape(c *gin.Context) {
	var req scrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		s.fail(c, domain.ErrMissingURL)
		return
	}

	item, err := s.app.ScrapeToday(c.Request.Context(), req.URL)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"menu_item": item.Name,
		"day":       item.Day,
		"date":      item.Date,
	})
}

func (s *Server) handleCalendar(c *gin.Context) {
	var req calendarRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.MenuData) == 0 || req.WeekID == "" {
		s.fail(c, domain.ErrMissingMenuData)
		return
	}

	weekID, err := domain.ParseWeekID(req.WeekID)
	if err != nil {
		s.fail(c, err)
		return
	}

	url, err := s.app.GenerateCalendar(c.Request.Context(), req.MenuData, weekID)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"calendar_url": url,
		"pdf_url":      nil,
	})
}

func (s *Server) handlePDF(c *gin.Context) {
	var req calendarRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.MenuData) == 0 || req.WeekID == "" {
		s.fail(c, domain.ErrMissingMenuData)
		return
	}

	weekID, err := domain.ParseWeekID(req.WeekID)
	if err != nil {
		s.fail(c, err)
		return
	}

	url, err := s.app.ExportPDF(c.Request.Context(), req.MenuData, weekID)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pdf_url": url})
}

func (s *Server) handleEmail(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Recipient == "" || req.CalendarURL == "" {
		s.fail(c, domain.ErrMissingRecipient)
		return
	}

	// The week id only feeds the subject line, so it is not validated here.
	weekID := domain.WeekID(req.WeekID)

	if err := s.app.SendEmail(req.Recipient, req.CalendarURL, req.PDFURL, weekID); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email sent successfully",
	})
}

func (s *Server) handleGetMenu(c *gin.Context) {
	weekID, err := domain.ParseWeekID(c.Param("week"))
	if err != nil {
		s.fail(c, err)
		return
	}

	doc, err := s.app.GetMenu(weekID)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
