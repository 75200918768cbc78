package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucasb/schoolhub/internal/app/models/dto"
	"github.com/lucasb/schoolhub/internal/app/services"
	"github.com/lucasb/schoolhub/internal/middleware"
)

// AvatarController handles avatar-related operations
type AvatarController struct {
	avatarService services.AvatarService
}

// NewAvatarController creates a new AvatarController
func NewAvatarController(avatarService services.AvatarService) *AvatarController {
	return &AvatarController{
		avatarService: avatarService,
	}
}

// CreateAvatar handles avatar creation
// @Summary Create an avatar
// @Description Creates the avatar for a student. Each student can have at most one avatar.
// @Tags avatars
// @Accept json
// @Produce json
// @Param request body dto.CreateAvatarRequest true "Avatar information"
// @Success 201 {object} dto.APIResponse{data=models.Avatar} "Avatar created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or student already has an avatar"
// @Failure 422 {object} dto.ErrorResponse "Referenced student does not exist"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /avatars [post]
func (c *AvatarController) CreateAvatar(ctx *gin.Context) {
	var req dto.CreateAvatarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid avatar data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	avatar, err := c.avatarService.Save(ctx, req.FantasyName, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      avatar,
		Timestamp: time.Now(),
	})
}

// GetAllAvatars retrieves all avatars
// @Summary Get all avatars
// @Description Retrieves a list of all avatars
// @Tags avatars
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Avatar} "Avatars retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /avatars [get]
func (c *AvatarController) GetAllAvatars(ctx *gin.Context) {
	avatars, err := c.avatarService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      avatars,
		Timestamp: time.Now(),
	})
}

// GetAvatarByStudent retrieves the avatar belonging to a student
// @Summary Get avatar by student
// @Description Retrieves the avatar owned by the given student, null when the student has none
// @Tags avatars
// @Accept json
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Avatar} "Avatar retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /avatars/student/{studentId} [get]
func (c *AvatarController) GetAvatarByStudent(ctx *gin.Context) {
	avatar, err := c.avatarService.GetByStudentID(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      avatar,
		Timestamp: time.Now(),
	})
}

// GetAvatarsWithStudents retrieves avatars together with their students
// @Summary Get avatars with students
// @Description Retrieves every avatar paired with the student that owns it
// @Tags avatars
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.AvatarWithStudent} "Avatars retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /avatars/with-students [get]
func (c *AvatarController) GetAvatarsWithStudents(ctx *gin.Context) {
	avatars, err := c.avatarService.ListWithStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      avatars,
		Timestamp: time.Now(),
	})
}
