// Package user handles account registration and profile management.
package user

import (
	"context"
	"errors"
	"fmt"
	"log"

	"renthub/internal/models"
	"renthub/internal/repositories"
	"renthub/internal/utils"
	"renthub/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// Service errors
var (
	ErrEmailTaken          = errors.New("user with this email already exists")
	ErrPhoneTaken          = errors.New("user with this phone already exists")
	ErrUnknownReferralCode = errors.New("unknown referral code")
)

// RegisterInput is a new account request.
type RegisterInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	ReferralCode string `json:"referral_code"`
}

// Service defines user account operations.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	BecomeHubber(id uint) (*models.User, error)
	SetSuperHubber(id uint, super bool) (*models.User, error)
	List(limit, offset int) ([]models.User, error)
}

// WalletCreator opens the wallet that every new account gets.
type WalletCreator interface {
	CreateWallet(ctx context.Context, userID uint, currency string) (*models.Wallet, error)
}

type service struct {
	repo    repositories.UserRepository
	wallets WalletCreator
}

// NewService creates a user service.
func NewService(repo repositories.UserRepository, wallets WalletCreator) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo, wallets: wallets}
}

// Register creates the account, links the referrer when a referral code was
// given, and opens the user's wallet.
func (s *service) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	v := validation.New()
	v.Required("name", input.Name)
	v.Email("email", input.Email)
	v.Phone("phone", input.Phone)
	v.Password("password", input.Password)
	if !v.Valid() {
		return nil, validationError(v)
	}

	if existing, _ := s.repo.GetByEmail(input.Email); existing != nil {
		return nil, ErrEmailTaken
	}
	if existing, _ := s.repo.GetByPhone(input.Phone); existing != nil {
		return nil, ErrPhoneTaken
	}

	var referredByID *uint
	if input.ReferralCode != "" {
		referrer, err := s.repo.GetByReferralCode(input.ReferralCode)
		if err != nil {
			return nil, ErrUnknownReferralCode
		}
		referredByID = &referrer.ID
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	code, err := utils.GenerateReferralCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate referral code: %w", err)
	}

	role := input.Role
	if role != "hubber" {
		role = "renter"
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Password:     string(hashedPassword),
		Role:         role,
		Status:       "active",
		ReferralCode: code,
		ReferredByID: referredByID,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	if s.wallets != nil {
		if _, err := s.wallets.CreateWallet(ctx, user.ID, "EUR"); err != nil {
			// The account exists; without a wallet, checkout runs card-only.
			log.Printf("wallet creation failed for user %d: %v", user.ID, err)
		}
	}

	return user, nil
}

func (s *service) GetByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *service) BecomeHubber(id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user.Role == "renter" {
		user.Role = "hubber"
		if err := s.repo.Update(user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *service) SetSuperHubber(id uint, super bool) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.SuperHubber = super
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) List(limit, offset int) ([]models.User, error) {
	return s.repo.List(limit, offset)
}

func validationError(v *validation.Validator) error {
	for field, msg := range v.Errors {
		return fmt.Errorf("%s %s", field, msg)
	}
	return errors.New("invalid input")
}
