package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/secretaria-online/secretaria-api/internal/auth"
	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/repository"
)

type AuthService struct {
	store  repository.Store
	issuer *auth.Issuer
}

func NewAuthService(store repository.Store, issuer *auth.Issuer) *AuthService {
	return &AuthService{store: store, issuer: issuer}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *model.User
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	v := &validation{}
	v.require("email", input.Email)
	v.require("password", input.Password)
	if err := v.err(); err != nil {
		return nil, err
	}

	user, err := s.store.Users().GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, input.Password) {
		return nil, ErrUnauthorized
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}

func (s *AuthService) Me(ctx context.Context, principal model.Principal) (*model.User, error) {
	user, err := s.store.Users().GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

type ChangePasswordInput struct {
	Current string
	New     string
}

func (s *AuthService) ChangePassword(ctx context.Context, principal model.Principal, input ChangePasswordInput) error {
	v := &validation{}
	v.require("current_password", input.Current)
	v.require("new_password", input.New)
	if input.New != "" && len(input.New) < 8 {
		v.add("new_password", "must be at least 8 characters")
	}
	if err := v.err(); err != nil {
		return err
	}

	user, err := s.store.Users().GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, input.Current) {
		return ErrUnauthorized
	}

	hash, err := auth.HashPassword(input.New)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.store.Users().Update(ctx, user)
}
