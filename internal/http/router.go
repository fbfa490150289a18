package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/secretaria-online/secretaria-api/internal/config"
	"github.com/secretaria-online/secretaria-api/internal/http/middleware"
	"github.com/secretaria-online/secretaria-api/internal/model"
)

// NewRouter assembles the gin engine. The general limiter covers every route;
// login and password changes additionally go through the stricter one.
func NewRouter(h *Handler, authMW gin.HandlerFunc, cfg *config.Config) *gin.Engine {
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.HTTP.CORSOrigin != "" {
		corsConfig.AllowOrigins = []string{cfg.HTTP.CORSOrigin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	general := middleware.RateLimit(middleware.NewLimiter(cfg.RateLimit.General))
	sensitive := middleware.RateLimit(middleware.NewLimiter(cfg.RateLimit.Sensitive))
	router.Use(general)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	api.POST("/auth/login", sensitive, h.login)

	authed := api.Group("/")
	authed.Use(authMW)

	authed.GET("/auth/me", h.me)
	authed.PUT("/auth/password", sensitive, h.changePassword)

	staff := middleware.RequireRoles(model.RoleAdmin, model.RoleTeacher)
	admin := middleware.RequireRoles(model.RoleAdmin)

	// Students
	authed.POST("/students", admin, h.createStudent)
	authed.GET("/students", staff, h.listStudents)
	authed.GET("/students/:id", h.getStudent)
	authed.PUT("/students/:id", admin, h.updateStudent)
	authed.DELETE("/students/:id", admin, h.deleteStudent)

	// Student documents
	upload := middleware.Upload("file", cfg.Uploads.MaxDocumentSize)
	authed.POST("/students/:id/documents", admin, upload, h.uploadDocument)
	authed.GET("/students/:id/documents", h.listDocuments)
	authed.GET("/students/:id/enrollments", h.listStudentEnrollments)
	authed.GET("/documents/:id/download", h.downloadDocument)
	authed.DELETE("/documents/:id", admin, h.deleteDocument)

	// Teachers
	authed.POST("/teachers", admin, h.createTeacher)
	authed.GET("/teachers", staff, h.listTeachers)
	authed.GET("/teachers/:id", staff, h.getTeacher)
	authed.PUT("/teachers/:id", admin, h.updateTeacher)
	authed.DELETE("/teachers/:id", admin, h.deleteTeacher)

	// Catalog
	authed.POST("/courses", admin, h.createCourse)
	authed.GET("/courses", h.listCourses)
	authed.GET("/courses/:id", h.getCourse)
	authed.PUT("/courses/:id", admin, h.updateCourse)
	authed.DELETE("/courses/:id", admin, h.deleteCourse)

	authed.POST("/disciplines", admin, h.createDiscipline)
	authed.GET("/disciplines", h.listDisciplines)
	authed.GET("/disciplines/:id", h.getDiscipline)
	authed.PUT("/disciplines/:id", admin, h.updateDiscipline)
	authed.DELETE("/disciplines/:id", admin, h.deleteDiscipline)

	// Classes
	authed.POST("/classes", admin, h.createClass)
	authed.GET("/classes", h.listClasses)
	authed.GET("/classes/:id", h.getClass)
	authed.PUT("/classes/:id", admin, h.updateClass)
	authed.DELETE("/classes/:id", admin, h.deleteClass)
	authed.GET("/classes/:id/evaluations", h.listClassEvaluations)
	authed.GET("/classes/:id/grades/export", staff, h.exportClassGrades)

	// Evaluations and grades
	authed.POST("/evaluations", staff, h.createEvaluation)
	authed.GET("/evaluations/:id", h.getEvaluation)
	authed.PUT("/evaluations/:id", staff, h.updateEvaluation)
	authed.DELETE("/evaluations/:id", staff, h.deleteEvaluation)
	authed.GET("/evaluations/:id/grades", staff, h.listEvaluationGrades)
	authed.POST("/grades", staff, h.createGrade)
	authed.PUT("/grades/:id", staff, h.updateGrade)
	authed.DELETE("/grades/:id", staff, h.deleteGrade)

	// Enrollments
	authed.POST("/enrollments", admin, h.createEnrollment)
	authed.GET("/enrollments", staff, h.listEnrollments)
	authed.GET("/enrollments/:id", h.getEnrollment)
	authed.POST("/enrollments/:id/cancel", admin, h.cancelEnrollment)
	authed.POST("/enrollments/reenroll", admin, h.reenroll)
	authed.POST("/enrollments/:id/accept", middleware.RequireRoles(model.RoleStudent), h.acceptEnrollment)

	// Contracts
	authed.GET("/contracts/mine", h.listMyContracts)
	authed.GET("/contracts/:id", h.getContract)
	authed.GET("/contracts/:id/download", h.downloadContract)
	authed.POST("/contracts/:id/regenerate", admin, h.regenerateContract)
	authed.POST("/contracts/regenerate", admin, h.regenerateAllContracts)

	// Contract templates
	authed.POST("/contract-templates", admin, h.createTemplate)
	authed.GET("/contract-templates", admin, h.listTemplates)
	authed.GET("/contract-templates/:id", admin, h.getTemplate)
	authed.PUT("/contract-templates/:id", admin, h.updateTemplate)
	authed.POST("/contract-templates/:id/activate", admin, h.activateTemplate)
	authed.DELETE("/contract-templates/:id", admin, h.deleteTemplate)

	return router
}
