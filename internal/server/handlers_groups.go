package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medtime/internal/auth"
)

type createGroupRequest struct {
	Name       string `json:"name" binding:"required"`
	Department string `json:"department"`
	Passcode   string `json:"passcode" binding:"required"`
}

type joinGroupRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

type profilePatchRequest struct {
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	Department   *string `json:"department"`
	ProfileImage *string `json:"profileImage"`
}

func (s *Server) handleCreateGroup(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("not authenticated"))
		return
	}

	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(FormatBindingError(err)))
		return
	}

	group, err := s.auth.CreateGroup(c.Request.Context(), user.ID, req.Name, req.Department, req.Passcode)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewSuccessResponse(group))
}

func (s *Server) handleJoinGroup(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("not authenticated"))
		return
	}

	var req joinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(FormatBindingError(err)))
		return
	}

	group, err := s.auth.JoinGroup(c.Request.Context(), user.ID, c.Param("id"), req.Passcode)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSuccessResponse(group))
}

func (s *Server) handleLeaveGroup(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("not authenticated"))
		return
	}

	if err := s.auth.LeaveGroup(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteGroup(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("not authenticated"))
		return
	}

	if err := s.auth.DeleteGroup(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("not authenticated"))
		return
	}

	var req profilePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(FormatBindingError(err)))
		return
	}

	updated, err := s.auth.UpdateProfile(c.Request.Context(), user.ID, auth.ProfilePatch{
		Name:         req.Name,
		Role:         req.Role,
		Department:   req.Department,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSuccessResponse(updated))
}
