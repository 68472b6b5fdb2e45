package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/muzahidswe/fs17-Backend-project/internal/apperror"
	"github.com/muzahidswe/fs17-Backend-project/internal/domain"
	"github.com/muzahidswe/fs17-Backend-project/internal/dto"
	"github.com/muzahidswe/fs17-Backend-project/internal/repository"
	"github.com/muzahidswe/fs17-Backend-project/internal/token"
)

const resetTokenTTL = time.Hour

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// GoogleProfile is the verified identity asserted by the external provider.
type GoogleProfile struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// ResetMailer delivers the password-reset link.
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}

// UserServiceConfig holds configuration for UserService.
type UserServiceConfig struct {
	BcryptCost int
	// BaseURL is the public origin used to build reset links.
	BaseURL string
}

// UserService covers accounts, sessions and the password-reset flow.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	// GoogleLogin synthesizes a local session for a provider-verified email,
	// auto-registering a CUSTOMER/ACTIVE account when none exists.
	GoogleLogin(ctx context.Context, profile *GoogleProfile) (*dto.LoginResponse, error)
	List(ctx context.Context) ([]domain.UserListing, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	AssignRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	ChangeStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error)
}

type userService struct {
	repo   repository.UserRepository
	tokens *token.Manager
	mailer ResetMailer
	config *UserServiceConfig
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, tokens *token.Manager, mailer ResetMailer, config *UserServiceConfig) UserService {
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	return &userService{
		repo:   repo,
		tokens: tokens,
		mailer: mailer,
		config: config,
	}
}

// Register creates a new account with a hashed password and the next
// numeric id from the sequence.
func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}
	if !role.Valid() {
		return nil, apperror.BadRequest("Invalid role")
	}
	if !status.Valid() {
		return nil, apperror.BadRequest("Invalid status")
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.BadRequest("Email already added in our database")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	numericID, err := s.repo.NextNumericID(ctx)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		NumericID: numericID,
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
		Status:    status,
	}
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the password and issues an access/refresh token pair.
func (s *userService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User Not Found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.BadRequest("Wrong Password.")
	}

	return s.issueTokens(user)
}

// GoogleLogin trusts the provider-verified email: a matching local account
// gets tokens without a password check, an unknown email is auto-registered
// with a random local password.
func (s *userService) GoogleLogin(ctx context.Context, profile *GoogleProfile) (*dto.LoginResponse, error) {
	if profile.Email == "" {
		return nil, apperror.BadRequest("Identity provider returned no email")
	}

	user, err := s.repo.FindByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		registered, err := s.Register(ctx, &dto.RegisterRequest{
			Username:  profile.Name,
			Password:  randomPassword(),
			FirstName: profile.GivenName,
			LastName:  profile.FamilyName,
			Email:     profile.Email,
		})
		if err != nil {
			return nil, err
		}
		user = registered
	}

	return s.issueTokens(user)
}

func (s *userService) issueTokens(user *domain.User) (*dto.LoginResponse, error) {
	access, err := s.tokens.IssueAccessToken(user.Email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:        access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}

func (s *userService) List(ctx context.Context) ([]domain.UserListing, error) {
	return s.repo.FindAllListings(ctx)
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User Not Found")
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*domain.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := repository.UserProfileUpdate{}
	if req.FirstName != "" {
		update.FirstName = &req.FirstName
	}
	if req.LastName != "" {
		update.LastName = &req.LastName
	}
	if req.Email != "" {
		update.Email = &req.Email
	}

	user, err := s.repo.UpdateProfile(ctx, oid, update)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

// UpdatePassword verifies the old password before storing a new hash.
func (s *userService) UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return nil, apperror.BadRequest("Wrong password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.config.BcryptCost)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetPassword(ctx, user.ID, string(hash)); err != nil {
		return nil, err
	}
	user.Password = string(hash)
	user.ResetToken = ""
	user.ResetTokenExpiresAt = nil
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	deleted, err := s.repo.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("User not found")
	}
	return nil
}

// ForgotPassword stores a fresh single-use token with a one-hour expiry on
// the account and mails the reset link.
func (s *userService) ForgotPassword(ctx context.Context, email string) error {
	if !emailPattern.MatchString(email) {
		return apperror.BadRequest("Invalid email address.")
	}

	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	resetToken := uuid.NewString()
	expiresAt := time.Now().Add(resetTokenTTL)
	if err := s.repo.SetResetToken(ctx, user.ID, resetToken, expiresAt); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.config.BaseURL, resetToken)
	return s.mailer.SendPasswordReset(ctx, email, resetLink)
}

// ResetPassword completes the reset flow. An expired token behaves exactly
// like an unknown one.
func (s *userService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if resetToken == "" || newPassword == "" {
		return apperror.BadRequest("Invalid or missing reset token")
	}

	user, err := s.repo.FindByResetToken(ctx, resetToken)
	if err != nil {
		return err
	}
	if user == nil || user.ResetTokenExpiresAt == nil || time.Now().After(*user.ResetTokenExpiresAt) {
		return apperror.BadRequest("Invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.config.BcryptCost)
	if err != nil {
		return err
	}
	return s.repo.SetPassword(ctx, user.ID, string(hash))
}

func (s *userService) AssignRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, apperror.BadRequest("Invalid role")
	}
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.UpdateRole(ctx, oid, role)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (s *userService) ChangeStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error) {
	if !status.Valid() {
		return nil, apperror.BadRequest("Invalid status")
	}
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.UpdateStatus(ctx, oid, status)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

// parseObjectID maps a malformed hex id to NotFound so the client sees the
// same response for "wrong format id" and "no such document".
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperror.NotFound("Wrong format id")
	}
	return oid, nil
}

func randomPassword() string {
	buf := make([]byte, 24)
	_, _ = rand.Read(buf)
	return base64.URLEncoding.EncodeToString(buf)
}
