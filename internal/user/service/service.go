package service

import (
	"context"
	"errors"

	"github.com/bizdir/backend/internal/common/clock"
	commoncrypto "github.com/bizdir/backend/internal/common/crypto"
	"github.com/bizdir/backend/internal/common/logger"
	"github.com/bizdir/backend/internal/common/validation"
	"github.com/bizdir/backend/internal/observability/metrics"
	userdomain "github.com/bizdir/backend/internal/user/domain"
	userrepo "github.com/bizdir/backend/internal/user/repository"
)

// ErrAuthenticationFailed covers both unknown-email and bad-password
// logins so the response does not reveal which one happened.
var ErrAuthenticationFailed = errors.New("authentication failed")

type SignupInput struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required,max=72"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenIssuer signs a session token for an authenticated user.
type TokenIssuer interface {
	IssueToken(userID, email string) (string, error)
}

type UserService struct {
	repo        userrepo.Repository
	validator   *validation.Validator
	hasher      commoncrypto.PasswordHasher
	idGenerator commoncrypto.IDGenerator
	tokenIssuer TokenIssuer
	clock       clock.Clock
	log         *logger.Logger
}

func NewUserService(
	repo userrepo.Repository,
	validator *validation.Validator,
	hasher commoncrypto.PasswordHasher,
	idGenerator commoncrypto.IDGenerator,
	tokenIssuer TokenIssuer,
	clock clock.Clock,
	log *logger.Logger,
) *UserService {
	return &UserService{
		repo:        repo,
		validator:   validator,
		hasher:      hasher,
		idGenerator: idGenerator,
		tokenIssuer: tokenIssuer,
		clock:       clock,
		log:         log,
	}
}

func (s *UserService) Signup(ctx context.Context, input SignupInput) (userdomain.User, error) {
	if err := s.validator.Struct(input); err != nil {
		return userdomain.User{}, err
	}
	if err := s.validator.Email(input.Email); err != nil {
		return userdomain.User{}, err
	}

	// Pre-check keeps the common case friendly; the unique index on
	// lower(email) is what actually closes the race.
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return userdomain.User{}, userrepo.ErrEmailAlreadyExists
	} else if !errors.Is(err, userrepo.ErrUserNotFound) {
		return userdomain.User{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "signup_failed",
		}).Errorf("hash password failed: %v", err)
		return userdomain.User{}, err
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		return userdomain.User{}, err
	}

	user := userdomain.User{
		ID:           userdomain.ID(id),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if !errors.Is(err, userrepo.ErrEmailAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"action": "signup_failed",
			}).Errorf("create user failed: %v", err)
		}
		return userdomain.User{}, err
	}

	metrics.SignupsTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"action":  "user_signed_up",
		"user_id": id,
	}).Info("user created")
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]userdomain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "list_users_failed",
		}).Errorf("list users failed: %v", err)
		return nil, err
	}
	return users, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := validation.ValidateRecordID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, userdomain.ID(id)); err != nil {
		if !errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"action":  "delete_user_failed",
				"user_id": id,
			}).Errorf("delete user failed: %v", err)
		}
		return err
	}

	s.log.WithFields(ctx, logger.Fields{
		"action":  "user_deleted",
		"user_id": id,
	}).Info("user deleted")
	return nil
}

// Login authenticates by email and password and returns a signed
// session token. Unknown email and wrong password are indistinguishable
// to the caller.
func (s *UserService) Login(ctx context.Context, input LoginInput) (string, error) {
	if input.Email == "" || input.Password == "" {
		metrics.LoginFailures.Inc()
		return "", ErrAuthenticationFailed
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			metrics.LoginFailures.Inc()
			return "", ErrAuthenticationFailed
		}
		return "", err
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		metrics.LoginFailures.Inc()
		s.log.WithFields(ctx, logger.Fields{
			"action":  "login_failed",
			"user_id": string(user.ID),
		}).Warn("password mismatch")
		return "", ErrAuthenticationFailed
	}

	token, err := s.tokenIssuer.IssueToken(string(user.ID), user.Email)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action":  "login_failed",
			"user_id": string(user.ID),
		}).Errorf("issue token failed: %v", err)
		return "", err
	}

	s.log.WithFields(ctx, logger.Fields{
		"action":  "user_logged_in",
		"user_id": string(user.ID),
	}).Info("login succeeded")
	return token, nil
}
