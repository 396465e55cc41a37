package services

import (
	"strings"

	"github.com/shashiranjanraj/storefront/pkg/validate"
)

// RegisterForm is the sign-up input collected by the CLI and HTTP adapters.
type RegisterForm struct {
	FullName        string `json:"fullName"        validate:"required,max=120"`
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,same=password"`
}

// Normalize trims the free-text fields. Passwords are kept verbatim.
func (f *RegisterForm) Normalize() {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
}

func (f RegisterForm) Validate() map[string]string { return validate.Struct(f) }

// LoginForm is the sign-in input.
type LoginForm struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (f *LoginForm) Normalize() { f.Email = strings.TrimSpace(f.Email) }

func (f LoginForm) Validate() map[string]string { return validate.Struct(f) }

// CheckoutForm is the shipping and contact input for placing an order.
type CheckoutForm struct {
	FullName       string `json:"fullName"       validate:"required,max=120"`
	Address        string `json:"address"        validate:"required,max=300"`
	Phone          string `json:"phone"          validate:"required,digits_dash,max=30"`
	Email          string `json:"email"          validate:"required,email"`
	PrivacyConsent bool   `json:"privacyConsent" validate:"accepted"`
}

func (f *CheckoutForm) Normalize() {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Address = strings.TrimSpace(f.Address)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.TrimSpace(f.Email)
}

func (f CheckoutForm) Validate() map[string]string { return validate.Struct(f) }

// StatusForm changes an order's status.
type StatusForm struct {
	Status string `json:"status" validate:"required,in=Pending,Shipped,Delivered"`
}

func (f StatusForm) Validate() map[string]string { return validate.Struct(f) }
