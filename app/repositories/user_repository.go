package repositories

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/recordstore"
)

// UserRepository owns the "users" table and the "current_user" session
// pointer. Both share one lock.
type UserRepository struct {
	mu    sync.Mutex
	store recordstore.Store
}

func NewUserRepository(store recordstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create inserts user unless the email is already taken. It reports false
// without writing anything on a duplicate.
func (r *UserRepository) Create(user models.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return false, err
	}
	if _, exists := users[user.Email]; exists {
		return false, nil
	}
	users[user.Email] = userRecord{Email: user.Email, FullName: user.FullName, Password: user.Password}
	if err := writeJSON(r.store, KeyUsers, users); err != nil {
		return false, err
	}
	return true, nil
}

// FindByEmail looks up a user by exact email.
func (r *UserRepository) FindByEmail(email string) (models.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.find(email)
}

// SessionEmail returns the email stored as the current user, if any.
func (r *UserRepository) SessionEmail() (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session()
}

// SessionUser resolves the session pointer to a user. A pointer to an email
// with no matching user reports false and is left in place.
func (r *UserRepository) SessionUser() (models.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email, ok, err := r.session()
	if err != nil || !ok {
		return models.User{}, false, err
	}
	return r.find(email)
}

// SetSession points the session at email.
func (r *UserRepository) SetSession(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Put(KeyCurrentUser, email); err != nil {
		return fmt.Errorf("repositories: write %s: %w", KeyCurrentUser, err)
	}
	return nil
}

// ClearSession removes the session pointer. Clearing an absent session is
// not an error.
func (r *UserRepository) ClearSession() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Delete(KeyCurrentUser); err != nil {
		return fmt.Errorf("repositories: delete %s: %w", KeyCurrentUser, err)
	}
	return nil
}

func (r *UserRepository) find(email string) (models.User, bool, error) {
	users, err := r.load()
	if err != nil {
		return models.User{}, false, err
	}
	u, ok := users[email]
	if !ok {
		return models.User{}, false, nil
	}
	return models.User{Email: u.Email, FullName: u.FullName, Password: u.Password}, true, nil
}

func (r *UserRepository) session() (string, bool, error) {
	email, ok, err := r.store.Get(KeyCurrentUser)
	if err != nil {
		return "", false, fmt.Errorf("repositories: read %s: %w", KeyCurrentUser, err)
	}
	if !ok || email == "" {
		return "", false, nil
	}
	return email, true, nil
}

func (r *UserRepository) load() (map[string]userRecord, error) {
	users := map[string]userRecord{}
	ok, err := readJSON(r.store, KeyUsers, &users)
	if err != nil {
		return nil, err
	}
	if !ok || users == nil {
		return map[string]userRecord{}, nil
	}
	return users, nil
}
