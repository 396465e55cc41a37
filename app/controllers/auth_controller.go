package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var form services.RegisterForm
	if !decode(w, r, &form) {
		return
	}

	ok, err := c.auth.Register(form.Email, form.FullName, form.Password)
	if err != nil {
		fail(w, r, "register", err)
		return
	}
	if !ok {
		response.Conflict(w, "Email already registered. Please login.")
		return
	}
	response.Created(w, map[string]string{"email": form.Email, "fullName": form.FullName})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var form services.LoginForm
	if !decode(w, r, &form) {
		return
	}

	ok, err := c.auth.Login(form.Email, form.Password)
	if err != nil {
		fail(w, r, "login", err)
		return
	}
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	c.Me(w, r)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.auth.Logout(); err != nil {
		fail(w, r, "logout", err)
		return
	}
	response.Message(w, "Logged out")
}

// Me returns the current user, or 401 when the session is absent or stale.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, ok, err := c.auth.CurrentUser()
	if err != nil {
		fail(w, r, "current user", err)
		return
	}
	if !ok {
		response.Unauthorized(w)
		return
	}
	response.Success(w, user)
}
