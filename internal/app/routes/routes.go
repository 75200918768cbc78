package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lucasb/schoolhub/internal/app/controllers"
	"github.com/lucasb/schoolhub/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	subjectController *controllers.SubjectController,
	avatarController *controllers.AvatarController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		// Static paths are registered before /:id so gin does not
		// treat them as identifiers.
		students.GET("/groups", studentController.GetStudentGroups)
		students.GET("/with-avatars", studentController.GetStudentsWithAvatars)
		students.GET("/without-avatar", studentController.GetStudentsWithoutAvatar)

		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.GET("/:id/detail", studentController.GetStudentDetail)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	subjects := v1.Group("/subjects")
	{
		subjects.GET("/with-courses", subjectController.GetSubjectsWithCourses)
		subjects.GET("/course/:courseId", subjectController.GetSubjectsByCourse)

		subjects.POST("", subjectController.CreateSubject)
		subjects.GET("", subjectController.GetAllSubjects)
	}

	avatars := v1.Group("/avatars")
	{
		avatars.GET("/with-students", avatarController.GetAvatarsWithStudents)
		avatars.GET("/student/:studentId", avatarController.GetAvatarByStudent)

		avatars.POST("", avatarController.CreateAvatar)
		avatars.GET("", avatarController.GetAllAvatars)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
