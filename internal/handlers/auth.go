package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/socialgraph/internal/handlers/dto"
	"github.com/thereayou/socialgraph/internal/models"
	"github.com/thereayou/socialgraph/internal/services"
)

type AuthHandler struct {
	svc *services.IdentityService
}

func NewAuthHandler(svc *services.IdentityService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register creates an account and returns its profile.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	dob, err := parseDate("dob", req.Dob)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.svc.Register(c.Request.Context(), services.RegisterInput{
		Name:           req.Name,
		Surname:        req.Surname,
		Email:          req.Email,
		Dob:            dob,
		Description:    req.Description,
		ProfilePhotoID: req.ProfilePhotoID,
		Username:       req.Username,
		Password:       req.Password,
		UserType:       models.UserType(req.UserType),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Login issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      dto.NewUserResponse(res.User),
	})
}
