package user

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role gates what a user can do. Admins manage everything, project managers
// mutate rosters on their projects, viewers only read.
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleProjectManager Role = "PROJECT_MANAGER"
	RoleViewer         Role = "VIEWER"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleViewer:
		return true
	}
	return false
}

// CanWrite reports whether the role may mutate roster data.
func (r Role) CanWrite() bool {
	return r == RoleAdmin || r == RoleProjectManager
}

type User struct {
	id           uint
	email        string
	passwordHash string
	fullName     string
	role         Role
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email, password, fullName string, role Role, bcryptCost int) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email format")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if role == "" {
		role = RoleViewer
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	return &User{
		email:        email,
		passwordHash: string(hash),
		fullName:     strings.TrimSpace(fullName),
		role:         role,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uint, email, passwordHash, fullName string, role string,
	active bool, createdAt, updatedAt time.Time) (*User, error) {

	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}

	userRole := Role(role)
	if !userRole.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		role:         userRole,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) FullName() string {
	return u.fullName
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// VerifyPassword checks a plaintext password against the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

// Deactivate soft-deletes the user; login is refused afterwards.
func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now()
}
