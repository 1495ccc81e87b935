package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/socialgraph/internal/handlers"
	"github.com/thereayou/socialgraph/internal/logging"
	"github.com/thereayou/socialgraph/internal/middleware"
	"github.com/thereayou/socialgraph/internal/services"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter builds the gin engine with every route of the service.
func NewRouter(svc *services.IdentityService, db pinger, log logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	APIEndpoints(r,
		handlers.NewAuthHandler(svc),
		handlers.NewUserHandler(svc),
		handlers.NewFollowHandler(svc),
		middleware.AuthMiddleware(svc),
	)

	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func APIEndpoints(r *gin.Engine, authH *handlers.AuthHandler, userH *handlers.UserHandler, followH *handlers.FollowHandler, authMW gin.HandlerFunc) {
	// Public endpoints
	r.POST("/api/users/register", authH.Register)
	r.POST("/api/auth/login", authH.Login)

	users := r.Group("/api/users", authMW)
	{
		users.GET("", userH.ListUsers)
		users.GET("/search", userH.SearchUsers)
		users.GET("/type/:type", userH.ListUsersByType)
		users.GET("/:id", userH.GetUser)
		users.PUT("/:id", userH.UpdateUser)
		users.DELETE("/:id", userH.DeleteUser)

		users.POST("/:id/follow/:followeeId", followH.Follow)
		users.POST("/:id/unfollow/:followeeId", followH.Unfollow)
		users.GET("/:id/followers", followH.Followers)
		users.GET("/:id/followings", followH.Followings)
		users.GET("/:id/followers-count", followH.FollowersCount)
		users.GET("/:id/followings-count", followH.FollowingsCount)
	}
}
