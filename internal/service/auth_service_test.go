package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/harsha/nutrition-dashboard/internal/domain"
	repoSqlite "github.com/harsha/nutrition-dashboard/internal/repository/sqlite"
	"github.com/harsha/nutrition-dashboard/internal/service"
	"github.com/harsha/nutrition-dashboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*service.AuthService, *testutil.TestDB) {
	t.Helper()

	testDB := testutil.NewTestDB(t)
	repos := repoSqlite.NewRepositories(testDB.DB)
	return service.NewAuthService(repos.User, testutil.TestConfig()), testDB
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		creds       service.Credentials
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "successful registration",
			creds:       service.Credentials{Email: "a@x.com", Password: "secret1"},
			wantSuccess: true,
			wantMessage: "User registered successfully",
		},
		{
			name:        "invalid email",
			creds:       service.Credentials{Email: "not-an-email", Password: "secret1"},
			wantMessage: "Invalid input: Invalid email format",
		},
		{
			name:        "password too short",
			creds:       service.Credentials{Email: "a@x.com", Password: "five5"},
			wantMessage: "Invalid input: Password must be at least 6 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAuthService(t)

			result, err := svc.Register(ctx, tt.creds)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSuccess, result.Success)
			assert.Equal(t, tt.wantMessage, result.Message)

			if tt.wantSuccess {
				require.NotNil(t, result.User)
				assert.Equal(t, tt.creds.Email, result.User.Email)
				assert.Positive(t, result.User.ID)
				assert.Empty(t, result.User.PasswordHash)
			} else {
				assert.Nil(t, result.User)
			}
		})
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, testDB := newAuthService(t)
	creds := service.Credentials{Email: "a@x.com", Password: "secret1"}

	first, err := svc.Register(ctx, creds)
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := svc.Register(ctx, creds)
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, "Email already registered", second.Message)

	var count int64
	require.NoError(t, testDB.DB.Model(&domain.User{}).Where("email = ?", "a@x.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAuthService_RegisterNormalizesEmailCase(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	first, err := svc.Register(ctx, service.Credentials{Email: "User@X.com", Password: "secret1"})
	require.NoError(t, err)
	require.True(t, first.Success)
	assert.Equal(t, "user@x.com", first.User.Email)

	second, err := svc.Register(ctx, service.Credentials{Email: "user@x.COM", Password: "secret1"})
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, "Email already registered", second.Message)
}

func TestAuthService_LoginRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)
	creds := service.Credentials{Email: "a@x.com", Password: "secret1"}

	registered, err := svc.Register(ctx, creds)
	require.NoError(t, err)
	require.True(t, registered.Success)

	loggedIn, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	require.True(t, loggedIn.Success)
	assert.Equal(t, "Login successful", loggedIn.Message)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.Empty(t, loggedIn.User.PasswordHash)
}

func TestAuthService_MaximumLengthPasswordRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	// 100 characters is valid input but exceeds what bcrypt keys on.
	creds := service.Credentials{Email: "a@x.com", Password: strings.Repeat("p", 100)}

	registered, err := svc.Register(ctx, creds)
	require.NoError(t, err)
	require.True(t, registered.Success, "message: %s", registered.Message)

	loggedIn, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	assert.True(t, loggedIn.Success)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	wrong, err := svc.Login(ctx, service.Credentials{Email: "a@x.com", Password: strings.Repeat("q", 100)})
	require.NoError(t, err)
	assert.False(t, wrong.Success)
	assert.Equal(t, "Invalid credentials", wrong.Message)
}

func TestAuthService_LoginFailuresShareOneMessage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	registered, err := svc.Register(ctx, service.Credentials{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.True(t, registered.Success)

	wrongPassword, err := svc.Login(ctx, service.Credentials{Email: "a@x.com", Password: "wrong1"})
	require.NoError(t, err)
	assert.False(t, wrongPassword.Success)

	unknownEmail, err := svc.Login(ctx, service.Credentials{Email: "b@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.False(t, unknownEmail.Success)

	// Enumeration resistance: the two failures are indistinguishable.
	assert.Equal(t, "Invalid credentials", wrongPassword.Message)
	assert.Equal(t, wrongPassword.Message, unknownEmail.Message)
}

func TestAuthService_LoginValidatesInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	result, err := svc.Login(ctx, service.Credentials{Email: "nope", Password: "secret1"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid input: Invalid email format", result.Message)
}

func TestAuthService_GetUserByID(t *testing.T) {
	ctx := context.Background()
	svc, testDB := newAuthService(t)

	created, _ := testutil.NewUserBuilder().WithEmail("a@x.com").Build(t, testDB.DB)

	user, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.GetUserByID(ctx, created.ID+1000)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
