package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucasb/schoolhub/internal/app/models"
	"github.com/lucasb/schoolhub/internal/app/models/dto"
	"github.com/lucasb/schoolhub/internal/app/services"
	"github.com/lucasb/schoolhub/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a new student enrolled in an existing course
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 422 {object} dto.ErrorResponse "Referenced course does not exist"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Save(ctx, req.FirstName, req.LastName, req.CourseID, req.Language, req.Email, req.OperationalSystems)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// UpdateStudent replaces an existing student's data
// @Summary Update a student
// @Description Replaces all mutable fields of an existing student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 422 {object} dto.ErrorResponse "Student or referenced course does not exist"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Edit(ctx, id, req.FirstName, req.LastName, req.CourseID, req.Language, req.Email, req.OperationalSystems)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetStudentByID retrieves a student by ID
// @Summary Get student
// @Description Retrieves a single student by its ID
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 422 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetAllStudents retrieves all students
// @Summary Get all students
// @Description Retrieves a list of all students in insertion order
// @Tags students
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Description Deletes a student together with its avatar, if any
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}

// GetStudentGroups returns students grouped by a dimension
// @Summary Group students
// @Description Groups students by course, language or operational system. A student using several operational systems appears in each matching group.
// @Tags students
// @Accept json
// @Produce json
// @Param by query string true "Grouping dimension" Enums(course, language, os)
// @Success 200 {object} dto.APIResponse{data=[]models.StudentGroup} "Groups retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown grouping dimension"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/groups [get]
func (c *StudentController) GetStudentGroups(ctx *gin.Context) {
	dimension := models.GroupDimension(ctx.Query("by"))

	groups, err := c.studentService.ListGroupedBy(ctx, dimension)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      groups,
		Timestamp: time.Now(),
	})
}

// GetStudentsWithAvatars returns every student with its avatar, if any
// @Summary Get students with avatars
// @Description Retrieves all students, each paired with its avatar or null
// @Tags students
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.StudentWithAvatar} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/with-avatars [get]
func (c *StudentController) GetStudentsWithAvatars(ctx *gin.Context) {
	students, err := c.studentService.ListWithAvatars(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// GetStudentsWithoutAvatar returns students that have no avatar yet
// @Summary Get students without an avatar
// @Description Retrieves the students that have not created an avatar
// @Tags students
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/without-avatar [get]
func (c *StudentController) GetStudentsWithoutAvatar(ctx *gin.Context) {
	students, err := c.studentService.ListWithoutAvatar(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// GetStudentDetail returns a student with its course and subjects
// @Summary Get student detail
// @Description Retrieves a student hydrated with its course and the subjects taught in that course
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.StudentDetail} "Student detail retrieved successfully"
// @Failure 422 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/detail [get]
func (c *StudentController) GetStudentDetail(ctx *gin.Context) {
	detail, err := c.studentService.GetDetail(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      detail,
		Timestamp: time.Now(),
	})
}
