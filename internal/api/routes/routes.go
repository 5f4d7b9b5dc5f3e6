package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/jardam/internal/api/handlers"
	"github.com/yoockh/jardam/internal/api/middleware"
	"github.com/yoockh/jardam/internal/services"
)

type Deps struct {
	Auth        *handlers.AuthHandler
	Application *handlers.ApplicationHandler
	Vacancy     *handlers.VacancyHandler
	Profile     *handlers.ProfileHandler
	Admin       *handlers.AdminHandler

	Sessions    services.SessionService
	AdminKey    string
	CORSOrigins []string
	StaticDir   string
	Log         logrus.FieldLogger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	handlers.RegisterValidators()

	r.Use(
		middleware.RequestLogger(d.Log),
		middleware.Metrics(),
		middleware.CORS(d.CORSOrigins),
		middleware.SessionAuth(d.Sessions, d.Log),
		middleware.AdminKey(d.AdminKey),
	)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	session := middleware.RequireSession()

	auth := api.Group("/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.GET("/me", session, d.Auth.Me)

	apps := api.Group("/applications")
	apps.POST("", d.Application.Create)
	apps.GET("/public", d.Application.Public)
	apps.GET("/my", session, d.Application.Mine)
	apps.PUT("/:id", d.Application.Update)
	apps.DELETE("/:id", d.Application.Delete)

	vacancies := api.Group("/vacancies")
	vacancies.GET("", d.Vacancy.Search)
	vacancies.GET("/my", session, d.Vacancy.Mine)
	vacancies.GET("/:id", d.Vacancy.Get)
	vacancies.POST("", d.Vacancy.Create)
	vacancies.PUT("/:id", d.Vacancy.Update)
	vacancies.DELETE("/:id", d.Vacancy.Delete)

	profiles := api.Group("/profiles")
	profiles.GET("", d.Profile.Search)
	profiles.GET("/my", session, d.Profile.Mine)
	profiles.GET("/:id", d.Profile.Get)
	profiles.POST("", d.Profile.Create)
	profiles.PUT("/:id", d.Profile.Update)
	profiles.DELETE("/:id", d.Profile.Delete)

	admin := api.Group("/admin", middleware.RequireAdmin())
	admin.GET("/applications", d.Admin.Applications)
	admin.GET("/applications/:id", d.Admin.Application)
	admin.GET("/export", d.Admin.Export)

	if d.StaticDir != "" {
		fs := http.Dir(d.StaticDir)
		fileServer := http.FileServer(fs)
		r.NoRoute(func(c *gin.Context) {
			if c.Request.Method == http.MethodGet && staticExists(fs, c.Request.URL.Path) {
				fileServer.ServeHTTP(c.Writer, c.Request)
				return
			}
			notFound(c)
		})
		return
	}
	r.NoRoute(notFound)
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":  "Endpoint not found",
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	})
}

func staticExists(fs http.FileSystem, path string) bool {
	f, err := fs.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	_, err = f.Stat()
	return err == nil
}
