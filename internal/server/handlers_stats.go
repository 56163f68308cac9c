package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medtime/internal/clock"
	"medtime/internal/report"
	"medtime/internal/stats"
)

// handleWeekStats returns the weekly progress and chart for the week
// containing ?date= (default today).
func (s *Server) handleWeekStats(c *gin.Context) {
	anchor := time.Now()
	if date := c.Query("date"); date != "" {
		parsed, err := time.Parse(clock.DateLayout, date)
		if err != nil {
			c.JSON(http.StatusBadRequest, NewErrorResponse("date must be YYYY-MM-DD"))
			return
		}
		anchor = parsed
	}

	entries := s.ledger.Entries()
	schedule := s.ledger.WorkSchedule()
	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{
		"progress": stats.ProgressForWeek(entries, schedule, anchor),
		"chart":    stats.ChartForWeek(entries, anchor),
	}))
}

// handleSummaryStats returns day/week/month/year totals plus days worked and
// monthly breakdown for the current year.
func (s *Server) handleSummaryStats(c *gin.Context) {
	now := time.Now()
	entries := s.ledger.Entries()
	yearEntries := stats.ForYear(entries, now)

	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{
		"todayMinutes": stats.TotalDuration(stats.ForDay(entries, now)),
		"weekMinutes":  stats.TotalDuration(stats.ForWeek(entries, now)),
		"monthMinutes": stats.TotalDuration(stats.ForMonth(entries, now)),
		"yearMinutes":  stats.TotalDuration(yearEntries),
		"daysWorked":   stats.DaysWorked(yearEntries),
		"monthly":      stats.MonthlyTotals(entries, now.Year()),
	}))
}

// handleDownloadReport renders the HTML report for :period and serves it as
// a download.
func (s *Server) handleDownloadReport(c *gin.Context) {
	period := c.Param("period")
	html, err := report.Build(s.ledger.Entries(), period)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(period)))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
