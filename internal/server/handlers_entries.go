package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medtime/internal/domain"
	apperrors "medtime/internal/errors"
)

type entryRequest struct {
	Date    string `json:"date" binding:"required"`
	TimeIn  string `json:"timeIn" binding:"required"`
	TimeOut string `json:"timeOut" binding:"required"`
	Notes   string `json:"notes"`
}

type entryPatchRequest struct {
	Date    *string `json:"date"`
	TimeIn  *string `json:"timeIn"`
	TimeOut *string `json:"timeOut"`
	Notes   *string `json:"notes"`
}

type stopTimerRequest struct {
	Notes *string `json:"notes"`
}

type schedulePatchRequest struct {
	RegularHoursPerWeek *float64 `json:"regularHoursPerWeek"`
	DefaultStartTime    *string  `json:"defaultStartTime"`
	DefaultEndTime      *string  `json:"defaultEndTime"`
}

func (s *Server) handleListEntries(c *gin.Context) {
	c.JSON(http.StatusOK, NewSuccessResponse(s.ledger.Entries()))
}

func (s *Server) handleAddEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(FormatBindingError(err)))
		return
	}

	entry, err := s.ledger.AddEntry(c.Request.Context(), domain.EntryFields{
		Date:    req.Date,
		TimeIn:  req.TimeIn,
		TimeOut: req.TimeOut,
		Notes:   req.Notes,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewSuccessResponse(entry))
}

func (s *Server) handleUpdateEntry(c *gin.Context) {
	var req entryPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(FormatBindingError(err)))
		return
	}

	id := c.Param("id")
	entry, found, err := s.ledger.UpdateEntry(c.Request.Context(), id, domain.EntryPatch{
		Date:    req.Date,
		TimeIn:  req.TimeIn,
		TimeOut: req.TimeOut,
		Notes:   req.Notes,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	if !found {
		s.respondError(c, apperrors.NewNotFoundError("time entry", id))
		return
	}
	c.JSON(http.StatusOK, NewSuccessResponse(entry))
}

func (s *Server) handleDeleteEntry(c *gin.Context) {
	if err := s.ledger.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteAllEntries(c *gin.Context) {
	if err := s.ledger.DeleteAllEntries(c.Request.Context()); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleGetTimer(c *gin.Context) {
	entry, active := s.ledger.ActiveEntry()
	data := gin.H{"active": active}
	if active {
		data["entry"] = entry
	}
	c.JSON(http.StatusOK, NewSuccessResponse(data))
}

func (s *Server) handleStartTimer(c *gin.Context) {
	entry, err := s.ledger.StartTimer(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewSuccessResponse(entry))
}

func (s *Server) handleStopTimer(c *gin.Context) {
	var req stopTimerRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, NewErrorResponse(FormatBindingError(err)))
			return
		}
	}

	entry, err := s.ledger.StopTimer(c.Request.Context(), req.Notes)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSuccessResponse(entry))
}

func (s *Server) handleGetSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, NewSuccessResponse(s.ledger.WorkSchedule()))
}

func (s *Server) handleUpdateSchedule(c *gin.Context) {
	var req schedulePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(FormatBindingError(err)))
		return
	}

	schedule, err := s.ledger.UpdateWorkSchedule(c.Request.Context(), domain.SchedulePatch{
		RegularHoursPerWeek: req.RegularHoursPerWeek,
		DefaultStartTime:    req.DefaultStartTime,
		DefaultEndTime:      req.DefaultEndTime,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSuccessResponse(schedule))
}
