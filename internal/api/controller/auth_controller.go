package controller

import (
	"collaband/CollaBand/internal/api/models"
	"collaband/CollaBand/internal/api/response"
	"collaband/CollaBand/internal/api/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthController handles registration and login requests.
type AuthController struct {
	authService service.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles the user registration endpoint.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		ac.registerError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, user.Info())
}

// registerError maps registration failures onto field-keyed validation
// payloads where a field is identifiable, a plain error otherwise.
func (ac *AuthController) registerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		response.FieldErrors(c, http.StatusBadRequest, map[string][]string{
			"username": {service.ErrUsernameTaken.Error()},
		})
	case errors.Is(err, service.ErrEmailTaken):
		response.FieldErrors(c, http.StatusBadRequest, map[string][]string{
			"email": {service.ErrEmailTaken.Error()},
		})
	default:
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string][]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = append(fields[fe.Field()], fe.Error())
			}
			response.FieldErrors(c, http.StatusBadRequest, fields)
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
	}
}

// Login handles the token login endpoint. The credential value may be a
// username or an email address.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(c, http.StatusOK, result)
}
