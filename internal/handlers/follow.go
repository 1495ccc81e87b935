package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/socialgraph/internal/handlers/dto"
	"github.com/thereayou/socialgraph/internal/middleware"
	"github.com/thereayou/socialgraph/internal/services"
)

type FollowHandler struct {
	svc *services.IdentityService
}

func NewFollowHandler(svc *services.IdentityService) *FollowHandler {
	return &FollowHandler{svc: svc}
}

// Follow makes :id follow :followeeId. The caller must be :id.
func (h *FollowHandler) Follow(c *gin.Context) {
	followerID, ok := paramID(c, "id")
	if !ok {
		return
	}
	followeeID, ok := paramID(c, "followeeId")
	if !ok {
		return
	}

	done, err := h.svc.Follow(c.Request.Context(), middleware.PrincipalFrom(c), followerID, followeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, done)
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	followerID, ok := paramID(c, "id")
	if !ok {
		return
	}
	followeeID, ok := paramID(c, "followeeId")
	if !ok {
		return
	}

	done, err := h.svc.Unfollow(c.Request.Context(), middleware.PrincipalFrom(c), followerID, followeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, done)
}

func (h *FollowHandler) Followers(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	users, err := h.svc.Followers(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserList(users))
}

func (h *FollowHandler) Followings(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	users, err := h.svc.Followings(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserList(users))
}

func (h *FollowHandler) FollowersCount(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	n, err := h.svc.FollowerCount(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: n})
}

func (h *FollowHandler) FollowingsCount(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	n, err := h.svc.FollowingCount(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: n})
}
