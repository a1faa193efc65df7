package controller

import (
	"errors"
	"net/http"

	"truth_buddy_backend/internal/service"
	"truth_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VerificationController struct {
	VerificationService *service.VerificationService
}

func NewVerificationController(verificationService *service.VerificationService) *VerificationController {
	return &VerificationController{VerificationService: verificationService}
}

// Verify godoc
// @Summary Verify content
// @Description Run a reliability check on submitted text and/or an uploaded file.
// @Tags verification
// @Accept multipart/form-data
// @Produce json
// @Param content_text formData string false "text to verify"
// @Param file formData file false "file to verify"
// @Success 201 {object} util.Response{data=model.VerificationRequest}
// @Failure 400 {object} util.Response
// @Router /api/verify [post]
func (c *VerificationController) Verify(ctx *gin.Context) {
	contentText := ctx.PostForm("content_text")

	var attachment *service.Attachment
	if fileHeader, err := ctx.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		defer file.Close()
		attachment = &service.Attachment{
			Name:        fileHeader.Filename,
			Reader:      file,
			Size:        fileHeader.Size,
			ContentType: fileHeader.Header.Get("Content-Type"),
		}
	}

	result, err := c.VerificationService.Verify(ctx.Request.Context(), contentText, attachment)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNothingToVerify):
			util.BadRequest(ctx, "provide text or a file to verify")
		case errors.Is(err, util.ErrUserNotFound):
			util.Error(ctx, http.StatusNotFound, "user not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, result)
}

// History godoc
// @Summary Verification history
// @Description Past verification requests of the current user, newest first.
// @Tags verification
// @Produce json
// @Success 200 {object} util.Response{data=[]model.VerificationRequest}
// @Router /api/verify/history [get]
func (c *VerificationController) History(ctx *gin.Context) {
	requests, err := c.VerificationService.History(ctx.Request.Context())
	if err != nil {
		util.Error(ctx, http.StatusNotFound, "user not found")
		return
	}
	util.Success(ctx, requests)
}
