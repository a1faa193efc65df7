package controller

import (
	"truth_buddy_backend/internal/service"
	"truth_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController serves the current-user and profile endpoints.
type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetCurrentUser godoc
// @Summary Current user
// @Description Returns the active user, creating one on first visit.
// @Tags user
// @Produce json
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/user [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	user, stats := c.UserService.Current(ctx.Request.Context())
	if user == nil {
		util.InternalServerError(ctx)
		return
	}
	util.Success(ctx, gin.H{
		"user":  user,
		"stats": stats,
	})
}

// UpdateProfile godoc
// @Summary Save profile
// @Description Overwrites the editable profile fields. Nickname is required;
// @Description this is the one flow that reports failure instead of degrading silently.
// @Tags user
// @Accept json
// @Produce json
// @Param profile body service.ProfileUpdate true "profile fields"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var update service.ProfileUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, util.ErrNicknameRequired.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(ctx.Request.Context(), update)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// RefreshUser godoc
// @Summary Refresh current user
// @Description Re-reads the user from the backing store, bypassing the session cache.
// @Tags user
// @Produce json
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/user/refresh [post]
func (c *UserController) RefreshUser(ctx *gin.Context) {
	user := c.UserService.Refresh(ctx.Request.Context())
	if user == nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, user)
}
