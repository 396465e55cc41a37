package services

import (
	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

// AuthService registers users and tracks the device session. Passwords are
// stored and compared as plain text.
type AuthService struct {
	users  *repositories.UserRepository
	events *event.Dispatcher
}

func NewAuthService(users *repositories.UserRepository, events *event.Dispatcher) *AuthService {
	return &AuthService{users: users, events: events}
}

// Register creates an account. It reports false, changing nothing, when the
// email is already registered.
func (s *AuthService) Register(email, fullName, password string) (bool, error) {
	user := models.User{Email: email, FullName: fullName, Password: password}
	ok, err := s.users.Create(user)
	if err != nil {
		return false, err
	}
	metrics.RecordAuth("register", ok)
	if !ok {
		logger.Info("registration rejected, email taken", "email", email)
		return false, nil
	}
	logger.Info("user registered", "email", email)
	s.events.Fire(EventUserRegistered, user)
	return true, nil
}

// Login starts a session when password matches exactly.
func (s *AuthService) Login(email, password string) (bool, error) {
	user, found, err := s.users.FindByEmail(email)
	if err != nil {
		return false, err
	}
	if !found || user.Password != password {
		metrics.RecordAuth("login", false)
		return false, nil
	}
	if err := s.users.SetSession(email); err != nil {
		return false, err
	}
	metrics.RecordAuth("login", true)
	logger.Info("user logged in", "email", email)
	s.events.Fire(EventUserLoggedIn, user)
	return true, nil
}

// Logout clears the session. Safe to call when nobody is logged in.
func (s *AuthService) Logout() error {
	return s.users.ClearSession()
}

// CurrentUser returns the logged-in user. A session pointing at an unknown
// email reports false and is left as is.
func (s *AuthService) CurrentUser() (models.User, bool, error) {
	return s.users.SessionUser()
}

// IsLoggedIn reports whether a session pointer is set, even a stale one.
func (s *AuthService) IsLoggedIn() (bool, error) {
	_, ok, err := s.users.SessionEmail()
	return ok, err
}
