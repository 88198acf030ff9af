package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mradulpatle03/IDE/internal/repository"
	"github.com/mradulpatle03/IDE/pkg/model"
	"github.com/mradulpatle03/IDE/pkg/response"
)

// startupCode returns the boilerplate a fresh project starts with.
func startupCode(language string) string {
	switch strings.ToLower(language) {
	case "python":
		return `print("Hello World")`
	case "java":
		return `public class Main { public static void main(String[] args) { System.out.println("Hello World"); } }`
	case "javascript":
		return `console.log("Hello World");`
	case "cpp":
		return "#include <iostream>\n\nint main() {\n    std::cout << \"Hello World\" << std::endl;\n    return 0;\n}"
	case "c":
		return "#include <stdio.h>\n\nint main() {\n    printf(\"Hello World\\n\");\n    return 0;\n}"
	case "go":
		return "package main\n\nimport \"fmt\"\n\nfunc main() {\n    fmt.Println(\"Hello World\")\n}"
	case "bash":
		return `echo "Hello World"`
	default:
		return "Language not supported"
	}
}

// CreateProj creates a project seeded with language boilerplate.
func (app *Application) CreateProj(c *gin.Context) {
	var req model.CreateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	project := &model.Project{
		Name:         req.Name,
		ProjLanguage: req.ProjLanguage,
		Version:      req.Version,
		Code:         startupCode(req.ProjLanguage),
		CreatedBy:    UserIDFromContext(c),
	}

	if err := app.Projects.Create(c.Request.Context(), project); err != nil {
		app.Logger.Error("create_proj: insert failed", zap.Error(err))
		response.InternalError(c, "could not create project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"msg":       "Project created successfully",
		"projectId": project.ProjectID,
	})
}

// SaveProject overwrites the project's code. Last write wins.
func (app *Application) SaveProject(c *gin.Context) {
	var req model.SaveProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "projectId is required")
		return
	}

	err := app.Projects.SaveCode(c.Request.Context(), req.ProjectID, UserIDFromContext(c), req.Code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		app.Logger.Error("save_project: update failed", zap.Error(err))
		response.InternalError(c, "could not save project")
		return
	}

	response.OK(c, "Project saved successfully")
}

// GetProjects lists the caller's projects.
func (app *Application) GetProjects(c *gin.Context) {
	projects, err := app.Projects.ListByOwner(c.Request.Context(), UserIDFromContext(c))
	if err != nil {
		app.Logger.Error("get_projects: query failed", zap.Error(err))
		response.InternalError(c, "could not fetch projects")
		return
	}
	if projects == nil {
		projects = []model.Project{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"msg":      "Projects fetched successfully",
		"projects": projects,
	})
}

// GetProject fetches one project. Other users' projects are reported as not
// found, never returned.
func (app *Application) GetProject(c *gin.Context) {
	var req model.GetProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "projectId is required")
		return
	}

	project, err := app.Projects.GetByIDAndOwner(c.Request.Context(), req.ProjectID, UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		app.Logger.Error("get_project: query failed", zap.Error(err))
		response.InternalError(c, "could not fetch project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"msg":     "Project fetched successfully",
		"project": project,
	})
}

// EditProject renames a project.
func (app *Application) EditProject(c *gin.Context) {
	var req model.EditProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "projectId and name are required")
		return
	}

	err := app.Projects.Rename(c.Request.Context(), req.ProjectID, UserIDFromContext(c), req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		app.Logger.Error("edit_project: update failed", zap.Error(err))
		response.InternalError(c, "could not edit project")
		return
	}

	response.OK(c, "Project edited successfully")
}

// DeleteProject removes a project.
func (app *Application) DeleteProject(c *gin.Context) {
	var req model.DeleteProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "projectId is required")
		return
	}

	err := app.Projects.Delete(c.Request.Context(), req.ProjectID, UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		app.Logger.Error("delete_project: delete failed", zap.Error(err))
		response.InternalError(c, "could not delete project")
		return
	}

	response.OK(c, "Project deleted successfully")
}
