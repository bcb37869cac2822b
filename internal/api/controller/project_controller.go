package controller

import (
	"collaband/CollaBand/internal/api/middleware"
	"collaband/CollaBand/internal/api/models"
	"collaband/CollaBand/internal/api/response"
	"collaband/CollaBand/internal/api/service"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ProjectController handles the dashboard and workspace endpoints.
type ProjectController struct {
	projectService service.ProjectService
}

// NewProjectController creates a new ProjectController.
func NewProjectController(projectService service.ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// Dashboard multiplexes project CRUD on a single path by HTTP verb.
func (pc *ProjectController) Dashboard(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		pc.list(c)
	case http.MethodPost:
		pc.create(c)
	case http.MethodPut:
		pc.modify(c)
	case http.MethodDelete:
		pc.delete(c)
	default:
		response.Error(c, http.StatusMethodNotAllowed, "Invalid request method")
	}
}

// list returns the caller's projects.
func (pc *ProjectController) list(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	projects, err := pc.projectService.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"projects": projects})
}

// create inserts a new project owned by the caller.
func (pc *ProjectController) create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := pc.projectService.Create(c.Request.Context(), userID, req.ProjectName); err != nil {
		if errors.Is(err, service.ErrProjectNameRequired) {
			response.Error(c, http.StatusBadRequest, "Project name is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Message(c, http.StatusCreated, "New project created successfully")
}

// modify applies a partial update to one of the caller's projects.
func (pc *ProjectController) modify(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req models.ModifyProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := pc.projectService.Modify(c.Request.Context(), userID, &req); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Message(c, http.StatusOK, "Project modified successfully")
}

// delete removes one of the caller's projects.
func (pc *ProjectController) delete(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req models.ModifyProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := pc.projectService.Delete(c.Request.Context(), userID, req.ProjectID); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Message(c, http.StatusOK, "Project deleted successfully")
}

// Workspace is the digital audio workspace view: a read-only lookup of a
// single owned project.
func (pc *ProjectController) Workspace(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	projectID, err := strconv.ParseInt(c.Param("projectID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Project not found")
		return
	}

	project, err := pc.projectService.Get(c.Request.Context(), userID, projectID)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			response.Error(c, http.StatusNotFound, "Project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Project DAW for project ID %d", projectID),
		"project": project.Name,
	})
}
