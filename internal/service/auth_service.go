package service

import (
	"context"
	"errors"
	"strings"

	"github.com/harsha/nutrition-dashboard/internal/config"
	"github.com/harsha/nutrition-dashboard/internal/domain"
	"github.com/harsha/nutrition-dashboard/internal/repository"
	"github.com/harsha/nutrition-dashboard/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps the bcrypt comparison running when the email matches no
// row, so unknown-email and wrong-password logins take similar time.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// bcrypt only keys on the first 72 bytes of input and rejects anything
// longer, while passwords validate up to 100 characters. Both hashing and
// comparison use the truncated form so the full range round-trips.
const maxBcryptBytes = 72

func bcryptInput(password string) []byte {
	b := []byte(password)
	if len(b) > maxBcryptBytes {
		b = b[:maxBcryptBytes]
	}
	return b
}

// Credentials exists only for the duration of a register or login call.
// It is never persisted or logged.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the uniform envelope returned by every authentication
// operation. Callers branch on Success; User is present only on success and
// never carries the password hash.
type AuthResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user,omitempty"`
}

type AuthService struct {
	users repository.UserRepository
	cfg   *config.Config
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Register validates the credentials, hashes the password and inserts the
// user. Validation and duplicate-email failures come back inside the
// AuthResult; a non-nil error means the store failed unexpectedly.
func (s *AuthService) Register(ctx context.Context, creds Credentials) (*AuthResult, error) {
	email := normalizeEmail(creds.Email)
	if err := validateCredentials(email, creds.Password); err != nil {
		return &AuthResult{Success: false, Message: "Invalid input: " + err.Error()}, nil
	}

	hash, err := bcrypt.GenerateFromPassword(bcryptInput(creds.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	// The insert is the single atomic step; the unique index on email
	// decides races between concurrent registrations.
	user := &domain.User{Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return &AuthResult{Success: false, Message: "Email already registered"}, nil
		}
		return nil, err
	}

	created, err := s.users.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Success: true,
		Message: "User registered successfully",
		User:    created.Sanitized(),
	}, nil
}

// Login authenticates the credentials against the store. Unknown email and
// wrong password return the same message so callers cannot probe which
// emails are registered.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	email := normalizeEmail(creds.Email)
	if err := validateCredentials(email, creds.Password); err != nil {
		return &AuthResult{Success: false, Message: "Invalid input: " + err.Error()}, nil
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash := dummyHash
	if err == nil {
		hash = user.PasswordHash
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(creds.Password))
	if err != nil || compareErr != nil {
		return &AuthResult{Success: false, Message: "Invalid credentials"}, nil
	}

	return &AuthResult{
		Success: true,
		Message: "Login successful",
		User:    user.Sanitized(),
	}, nil
}

// GetUserByID resolves an id from a session cookie to the stored user.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func validateCredentials(email, password string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}
	return validation.ValidatePassword(password)
}

// normalizeEmail lowercases the address so uniqueness and lookup are
// case-insensitive regardless of store collation.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
