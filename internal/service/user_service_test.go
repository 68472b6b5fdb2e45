package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/muzahidswe/fs17-Backend-project/internal/apperror"
	"github.com/muzahidswe/fs17-Backend-project/internal/domain"
	"github.com/muzahidswe/fs17-Backend-project/internal/dto"
	"github.com/muzahidswe/fs17-Backend-project/internal/repository"
	"github.com/muzahidswe/fs17-Backend-project/internal/token"
)

type mockUserRepo struct {
	users  map[primitive.ObjectID]*domain.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (m *mockUserRepo) Insert(_ context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByResetToken(_ context.Context, resetToken string) (*domain.User, error) {
	for _, user := range m.users {
		if user.ResetToken != "" && user.ResetToken == resetToken {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindAllListings(_ context.Context) ([]domain.UserListing, error) {
	listings := make([]domain.UserListing, 0, len(m.users))
	for _, user := range m.users {
		listings = append(listings, domain.UserListing{
			ID:        user.NumericID,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Role:      user.Role,
			Status:    user.Status,
		})
	}
	return listings, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, id primitive.ObjectID, update repository.UserProfileUpdate) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) UpdateRole(_ context.Context, id primitive.ObjectID, role domain.Role) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	user.Role = role
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status domain.UserStatus) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	user.Status = status
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) SetPassword(_ context.Context, id primitive.ObjectID, hash string) error {
	user, ok := m.users[id]
	if !ok {
		return nil
	}
	user.Password = hash
	user.ResetToken = ""
	user.ResetTokenExpiresAt = nil
	return nil
}

func (m *mockUserRepo) SetResetToken(_ context.Context, id primitive.ObjectID, resetToken string, expiresAt time.Time) error {
	user, ok := m.users[id]
	if !ok {
		return nil
	}
	user.ResetToken = resetToken
	user.ResetTokenExpiresAt = &expiresAt
	return nil
}

func (m *mockUserRepo) DeleteByID(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

func (m *mockUserRepo) NextNumericID(_ context.Context) (int64, error) {
	m.nextID++
	return m.nextID, nil
}

type mockMailer struct {
	to        string
	resetLink string
}

func (m *mockMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	m.to = to
	m.resetLink = resetLink
	return nil
}

func newUserServiceFixture() (UserService, *mockUserRepo, *mockMailer, *token.Manager) {
	repo := newMockUserRepo()
	mailer := &mockMailer{}
	tokens := token.NewManager(token.Config{Secret: "test-secret"})
	svc := NewUserService(repo, tokens, mailer, &UserServiceConfig{
		BcryptCost: bcrypt.MinCost,
		BaseURL:    "http://localhost:8989",
	})
	return svc, repo, mailer, tokens
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:  "johndoe",
		Password:  "hunter22",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
	}
}

func TestRegisterHashesPasswordAndDefaults(t *testing.T) {
	svc, _, _, _ := newUserServiceFixture()

	user, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.Equal(t, domain.StatusActive, user.Status)
	assert.Equal(t, int64(1), user.NumericID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newUserServiceFixture()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest())
	require.Error(t, err)
	assert.Equal(t, 400, apperror.From(err).Status)
	assert.Equal(t, "Email already added in our database", apperror.From(err).Message)
}

func TestRegisterRejectsInvalidRole(t *testing.T) {
	svc, _, _, _ := newUserServiceFixture()

	req := registerRequest()
	req.Role = "SUPERUSER"
	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.From(err).Status)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, _, _, tokens := newUserServiceFixture()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), "john@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.Token, resp.RefreshToken)

	access, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", access.Email)

	refresh, err := tokens.Verify(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, refresh.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _, _ := newUserServiceFixture()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "john@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.From(err).Status)
	assert.Equal(t, "Wrong Password.", apperror.From(err).Message)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _, _ := newUserServiceFixture()

	_, err := svc.Login(context.Background(), "nobody@example.com", "hunter22")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.From(err).Status)
}

func TestForgotPasswordStoresTokenAndMailsLink(t *testing.T) {
	svc, repo, mailer, _ := newUserServiceFixture()

	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(context.Background(), "john@example.com"))

	stored := repo.users[registered.ID]
	require.NotEmpty(t, stored.ResetToken)
	require.NotNil(t, stored.ResetTokenExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *stored.ResetTokenExpiresAt, time.Minute)

	assert.Equal(t, "john@example.com", mailer.to)
	assert.True(t, strings.Contains(mailer.resetLink, stored.ResetToken))
}

func TestForgotPasswordRejectsMalformedEmail(t *testing.T) {
	svc, _, _, _ := newUserServiceFixture()

	err := svc.ForgotPassword(context.Background(), "not-an-email")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.From(err).Status)
}

func TestResetPasswordFlow(t *testing.T) {
	svc, repo, _, _ := newUserServiceFixture()

	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(context.Background(), "john@example.com"))

	resetToken := repo.users[registered.ID].ResetToken
	require.NoError(t, svc.ResetPassword(context.Background(), resetToken, "new-password"))

	// new password works, token is single use
	_, err = svc.Login(context.Background(), "john@example.com", "new-password")
	require.NoError(t, err)
	assert.Empty(t, repo.users[registered.ID].ResetToken)

	err = svc.ResetPassword(context.Background(), resetToken, "another-password")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.From(err).Status)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	svc, repo, _, _ := newUserServiceFixture()

	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	expired := time.Now().Add(-time.Minute)
	repo.users[registered.ID].ResetToken = "stale-token"
	repo.users[registered.ID].ResetTokenExpiresAt = &expired

	err = svc.ResetPassword(context.Background(), "stale-token", "new-password")
	require.Error(t, err)
	assert.Equal(t, "Invalid or expired reset token", apperror.From(err).Message)
}

func TestGoogleLoginAutoRegisters(t *testing.T) {
	svc, repo, _, _ := newUserServiceFixture()

	resp, err := svc.GoogleLogin(context.Background(), &GoogleProfile{
		Email:      "jane@example.com",
		Name:       "janedoe",
		GivenName:  "Jane",
		FamilyName: "Doe",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, domain.RoleCustomer, resp.User.Role)
	assert.Equal(t, domain.StatusActive, resp.User.Status)
	assert.Len(t, repo.users, 1)

	// second login reuses the account
	again, err := svc.GoogleLogin(context.Background(), &GoogleProfile{Email: "jane@example.com"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, again.User.ID)
	assert.Len(t, repo.users, 1)
}

func TestGoogleLoginExistingUserSkipsPasswordCheck(t *testing.T) {
	svc, _, _, _ := newUserServiceFixture()

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := svc.GoogleLogin(context.Background(), &GoogleProfile{Email: "john@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", resp.User.Email)
	require.NotEmpty(t, resp.Token)
}

func TestUpdatePasswordRequiresOldPassword(t *testing.T) {
	svc, _, _, _ := newUserServiceFixture()

	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.UpdatePassword(context.Background(), registered.ID.Hex(), "wrong", "new-password")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.From(err).Status)

	_, err = svc.UpdatePassword(context.Background(), registered.ID.Hex(), "hunter22", "new-password")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "john@example.com", "new-password")
	require.NoError(t, err)
}

func TestAssignRoleAndChangeStatus(t *testing.T) {
	svc, _, _, _ := newUserServiceFixture()

	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	promoted, err := svc.AssignRole(context.Background(), registered.ID.Hex(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, promoted.Role)

	_, err = svc.AssignRole(context.Background(), registered.ID.Hex(), "SUPERUSER")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.From(err).Status)

	banned, err := svc.ChangeStatus(context.Background(), registered.ID.Hex(), domain.StatusInactive)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInactive, banned.Status)
}

func TestDeleteUnknownUser(t *testing.T) {
	svc, _, _, _ := newUserServiceFixture()

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.From(err).Status)
}

func TestGetRejectsMalformedID(t *testing.T) {
	svc, _, _, _ := newUserServiceFixture()

	_, err := svc.Get(context.Background(), "not-a-hex-id")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.From(err).Status)
	assert.Equal(t, "Wrong format id", apperror.From(err).Message)
}
