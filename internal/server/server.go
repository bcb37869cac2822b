package server

import (
	"collaband/CollaBand/internal/api/controller"
	"collaband/CollaBand/internal/api/middleware"
	"collaband/CollaBand/internal/token"

	"github.com/gin-gonic/gin"
)

// Server wires the controllers into a gin engine.
type Server struct {
	engine *gin.Engine
}

// NewServer creates the gin engine and registers every route.
func NewServer(
	auth *controller.AuthController,
	projects *controller.ProjectController,
	chats *controller.ChatController,
	pages *controller.PageController,
	tokens token.Store,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.Observability())

	// Open endpoints.
	engine.GET("/home/", pages.Home)
	engine.GET("/Home/", pages.Home)
	engine.GET("/user-settings/", pages.Empty)
	engine.GET("/contact/", pages.Empty)
	engine.POST("/login/", auth.Login)
	engine.POST("/register/", auth.Register)

	// Token-protected endpoints.
	authed := engine.Group("/", middleware.TokenAuth(tokens))
	// The dashboard multiplexes CRUD by verb and answers 405 itself for
	// anything it does not handle; /projects/new/ is an alias for the
	// same view.
	authed.Any("/dashboard/", projects.Dashboard)
	authed.Any("/projects/new/", projects.Dashboard)
	authed.GET("/project-:projectID/", projects.Workspace)
	authed.GET("/all/", chats.GetChat)

	return &Server{engine: engine}
}

// Engine returns the underlying gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
