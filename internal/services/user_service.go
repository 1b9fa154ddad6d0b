package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yukikurage/task-manager/internal/constants"
	apperrors "github.com/yukikurage/task-manager/internal/errors"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/policy"
	"github.com/yukikurage/task-manager/internal/repository"
	"github.com/yukikurage/task-manager/internal/secure"
)

// UserService handles user accounts
type UserService struct {
	userRepo  repository.UserRepository
	hasher    secure.Hasher
	integrity *IntegrityGuard
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, hasher secure.Hasher, integrity *IntegrityGuard) *UserService {
	return &UserService{
		userRepo:  userRepo,
		hasher:    hasher,
		integrity: integrity,
	}
}

// UserInput carries the account form. Password is optional on update.
type UserInput struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,min=6,max=127,email"`
	Password  string `json:"password"`
}

func (in *UserInput) normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

// ListUsers returns every user; the list is public
func (s *UserService) ListUsers(ctx context.Context, actor policy.Actor) ([]models.User, error) {
	if !policy.Can(actor, policy.View, policy.Users) {
		return nil, apperrors.ErrForbidden
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", notFound(err))
	}
	return user, nil
}

// GetUserForEdit loads a user only for the user themselves
func (s *UserService) GetUserForEdit(ctx context.Context, actor policy.Actor, id uint64) (*models.User, error) {
	if !policy.Can(actor, policy.Update, &models.User{ID: id}) {
		return nil, apperrors.ErrForbidden
	}
	return s.GetUser(ctx, id)
}

// CreateUser registers a new account
func (s *UserService) CreateUser(ctx context.Context, actor policy.Actor, input UserInput) (*models.User, error) {
	if !policy.Can(actor, policy.Create, policy.Users) {
		return nil, apperrors.ErrForbidden
	}

	input.normalize()
	verr := validateStruct(input)
	s.checkPassword(verr, input.Password, true)
	if err := uniqueCheck(verr, "email", func() (bool, error) {
		return s.userRepo.EmailTaken(ctx, input.Email, 0)
	}); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Digest(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PasswordDigest: digest,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", duplicateAsValidation(err, "email"))
	}

	return user, nil
}

// UpdateUser changes a user's own account. An empty password keeps the digest.
func (s *UserService) UpdateUser(ctx context.Context, actor policy.Actor, id uint64, input UserInput) (*models.User, error) {
	user, err := s.GetUserForEdit(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	input.normalize()
	verr := validateStruct(input)
	s.checkPassword(verr, input.Password, false)
	if err := uniqueCheck(verr, "email", func() (bool, error) {
		return s.userRepo.EmailTaken(ctx, input.Email, user.ID)
	}); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email
	if input.Password != "" {
		digest, err := s.hasher.Digest(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordDigest = digest
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", duplicateAsValidation(err, "email"))
	}

	return user, nil
}

// DeleteUser removes the actor's own account unless tasks still reference it
func (s *UserService) DeleteUser(ctx context.Context, actor policy.Actor, id uint64) error {
	if !policy.Can(actor, policy.Delete, &models.User{ID: id}) {
		return apperrors.ErrForbidden
	}

	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}

	if err := s.integrity.CheckUserDeletable(ctx, id); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func (s *UserService) checkPassword(verr *apperrors.ValidationError, password string, required bool) {
	switch {
	case password == "" && required:
		verr.Add("password", apperrors.CodeRequired, 0)
	case password != "" && len(password) < constants.MinPasswordLength:
		verr.Add("password", apperrors.CodeTooShort, constants.MinPasswordLength)
	}
}
