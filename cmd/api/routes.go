package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mradulpatle03/IDE/pkg/response"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	r.Use(app.CORSMiddleware())

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	v1 := r.Group("/api/v1")

	user := v1.Group("/user")
	{
		user.POST("/signUp", app.Handler.SignUp)
		user.POST("/login", app.Handler.Login)
		user.GET("/getUser", app.AuthMiddleware(), app.Handler.GetUser)
		user.GET("/logout", app.AuthMiddleware(), app.Handler.Logout)
		user.POST("/updateProfile", app.AuthMiddleware(), app.Handler.UpdateProfile)
	}

	v1.POST("/auth/checkToken", app.AuthMiddleware(), app.Handler.CheckToken)

	projects := v1.Group("/projects")
	projects.Use(app.AuthMiddleware())
	{
		projects.POST("/createProj", app.Handler.CreateProj)
		projects.POST("/saveProject", app.Handler.SaveProject)
		projects.POST("/getProjects", app.Handler.GetProjects)
		projects.POST("/getProject", app.Handler.GetProject)
		projects.POST("/deleteProject", app.Handler.DeleteProject)
		projects.POST("/editProject", app.Handler.EditProject)
	}

	session := v1.Group("/session")
	session.Use(app.AuthMiddleware())
	{
		session.POST("/createSession", app.Handler.CreateSession)
		session.GET("/getMySession", app.Handler.GetMySessions)
		session.GET("/getMySessionById/:id", app.Handler.GetSessionByID)
		session.DELETE("/deleteMySession/:id", app.Handler.DeleteSession)
	}

	question := v1.Group("/question")
	question.Use(app.AuthMiddleware())
	{
		question.POST("/addQuestion", app.Handler.AddQuestion)
		question.POST("/toggleQuestion/:id", app.Handler.TogglePinQuestion)
	}

	execute := v1.Group("/execute")
	execute.Use(app.AuthMiddleware())
	{
		execute.POST("/run", app.Handler.RunCode)
		execute.GET("/runtimes", app.Handler.GetRuntimes)
	}

	// open AI endpoints, rate limited
	limited := v1.Group("/")
	limited.Use(app.RateLimitMiddleware())
	{
		limited.POST("/roadmap/generate", app.Handler.GenerateRoadmap)
		limited.POST("/dsa/leetcode-questions", app.Handler.GetDSAQuestions)
		limited.POST("/chat/gen", app.Handler.Chat)
	}

	return r
}
