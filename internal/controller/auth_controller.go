package controller

import (
	"truth_buddy_backend/internal/service"
	"truth_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthController handles the cosmetic login/logout flow. There is no identity
// enforcement anywhere in the API; login only decorates the user's profile.
type AuthController struct {
	UserService *service.UserService
}

func NewAuthController(userService *service.UserService) *AuthController {
	return &AuthController{UserService: userService}
}

type loginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// Login godoc
// @Summary Login
// @Description Decodes the posted identity credential (unverified) and merges
// @Description its profile claims into the current user.
// @Tags auth
// @Accept json
// @Produce json
// @Param credential body loginRequest true "identity token"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "credential is required")
		return
	}

	user, err := c.UserService.Login(ctx.Request.Context(), req.Credential)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, user)
}

// Logout godoc
// @Summary Logout
// @Description Clears the session; the user record itself is kept.
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.UserService.Logout(ctx.Request.Context())
	util.Success(ctx, nil)
}
