package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucasb/schoolhub/internal/app/models/dto"
	"github.com/lucasb/schoolhub/internal/app/services"
	"github.com/lucasb/schoolhub/internal/middleware"
)

// SubjectController handles subject-related operations
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// CreateSubject handles subject creation
// @Summary Create a new subject
// @Description Creates a subject linked to one or more existing courses. The subject and its course links are written atomically.
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=models.Subject} "Subject created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 422 {object} dto.ErrorResponse "A referenced course does not exist"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid subject data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	subject, err := c.subjectService.Save(ctx, req.Code, req.Name, req.Program, req.CourseIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      subject,
		Timestamp: time.Now(),
	})
}

// GetAllSubjects retrieves all subjects
// @Summary Get all subjects
// @Description Retrieves a list of all subjects
// @Tags subjects
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [get]
func (c *SubjectController) GetAllSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subjects,
		Timestamp: time.Now(),
	})
}

// GetSubjectsByCourse retrieves the subjects taught in a course
// @Summary Get subjects by course
// @Description Retrieves the subjects linked to the given course
// @Tags subjects
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/course/{courseId} [get]
func (c *SubjectController) GetSubjectsByCourse(ctx *gin.Context) {
	subjects, err := c.subjectService.ListByCourseID(ctx, ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subjects,
		Timestamp: time.Now(),
	})
}

// GetSubjectsWithCourses retrieves subjects together with their courses
// @Summary Get subjects with courses
// @Description Retrieves every subject together with the full list of courses it is taught in
// @Tags subjects
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.SubjectWithCourses} "Subjects retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/with-courses [get]
func (c *SubjectController) GetSubjectsWithCourses(ctx *gin.Context) {
	subjects, err := c.subjectService.ListWithCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subjects,
		Timestamp: time.Now(),
	})
}
