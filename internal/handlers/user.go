package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/socialgraph/internal/handlers/dto"
	"github.com/thereayou/socialgraph/internal/middleware"
	"github.com/thereayou/socialgraph/internal/models"
	"github.com/thereayou/socialgraph/internal/services"
)

type UserHandler struct {
	svc *services.IdentityService
}

func NewUserHandler(svc *services.IdentityService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetUser returns a profile with its follow counts.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	profile, err := h.svc.GetUser(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		UserResponse:   dto.NewUserResponse(profile.User),
		FollowerCount:  profile.FollowerCount,
		FollowingCount: profile.FollowingCount,
	})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserList(users))
}

func (h *UserHandler) ListUsersByType(c *gin.Context) {
	userType := models.UserType(c.Param("type"))

	users, err := h.svc.ListUsersByType(c.Request.Context(), middleware.PrincipalFrom(c), userType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserList(users))
}

// SearchUsers matches ?query= against name or surname.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	users, err := h.svc.SearchUsers(c.Request.Context(), middleware.PrincipalFrom(c), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserList(users))
}

// UpdateUser applies the fields present in the body.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	dob, err := parseDate("dob", req.Dob)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.svc.UpdateUser(c.Request.Context(), middleware.PrincipalFrom(c), id, models.UserPatch{
		Name:           req.Name,
		Surname:        req.Surname,
		Email:          req.Email,
		Dob:            dob,
		Description:    req.Description,
		ProfilePhotoID: req.ProfilePhotoID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteUser(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
