package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"staylux-backend/middleware"
	"staylux-backend/models"
	"staylux-backend/services"
	"staylux-backend/utils"
)

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

type signupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// validate mirrors the original signup form checks.
func (r signupRequest) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = "Full name is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = "Email is required"
	} else if !strings.Contains(r.Email, "@") {
		fields["email"] = "Please enter a valid email"
	}
	if strings.TrimSpace(r.Password) == "" {
		fields["password"] = "Password is required"
	} else if len(r.Password) < 6 {
		fields["password"] = "Password must be at least 6 characters"
	}
	if r.ConfirmPassword != r.Password {
		fields["confirmPassword"] = "Passwords do not match"
	}
	return fields
}

// POST /api/auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		utils.JSONValidationError(c, http.StatusBadRequest, fields)
		return
	}
	user, err := ac.AuthSvc.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "an account with this email already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "signup failed")
		return
	}
	ac.respondWithToken(c, http.StatusCreated, user.Email, user.Name)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = "Email is required"
	} else if !strings.Contains(r.Email, "@") {
		fields["email"] = "Please enter a valid email"
	}
	if strings.TrimSpace(r.Password) == "" {
		fields["password"] = "Password is required"
	} else if len(r.Password) < 6 {
		fields["password"] = "Password must be at least 6 characters"
	}
	return fields
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		utils.JSONValidationError(c, http.StatusBadRequest, fields)
		return
	}
	user, err := ac.AuthSvc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid email or password")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}
	ac.respondWithToken(c, http.StatusOK, user.Email, user.Name)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing session")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

func (ac *AuthController) respondWithToken(c *gin.Context, code int, email, name string) {
	token, err := ac.AuthSvc.IssueToken(models.User{Name: name, Email: email})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue session token")
		return
	}
	utils.JSONSuccess(c, code, gin.H{
		"token": token,
		"user":  gin.H{"email": email, "name": name},
	})
}
