// Package listing manages rental listings and their publication lifecycle.
package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"renthub/internal/models"
	"renthub/internal/repositories"
	"renthub/internal/validation"
)

// Service errors
var (
	ErrNotOwner        = errors.New("listing belongs to another user")
	ErrInvalidCategory = errors.New("category must be object or space")
	ErrInvalidUnit     = errors.New("price unit must be hour, day, week or month")
	ErrInvalidPrice    = errors.New("unit price must be positive")
	ErrNegativeAmount  = errors.New("cleaning fee and deposit cannot be negative")
	ErrNotPublishable  = errors.New("listing is not complete enough to publish")
)

// CreateRequest describes a new listing.
type CreateRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	PriceUnit   string  `json:"price_unit"`
	UnitPrice   float64 `json:"unit_price"`
	CleaningFee float64 `json:"cleaning_fee"`
	Deposit     float64 `json:"deposit"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// UpdateRequest carries the mutable listing fields. Nil means unchanged.
type UpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	UnitPrice   *float64 `json:"unit_price"`
	CleaningFee *float64 `json:"cleaning_fee"`
	Deposit     *float64 `json:"deposit"`
}

// Service defines listing operations.
type Service interface {
	Create(ctx context.Context, ownerID uint, req CreateRequest) (*models.Listing, error)
	Get(ctx context.Context, id uint) (*models.Listing, error)
	GetWithOwner(id uint) (*models.Listing, error)
	Update(ctx context.Context, ownerID, id uint, req UpdateRequest) (*models.Listing, error)
	Publish(ctx context.Context, ownerID, id uint) (*models.Listing, error)
	Unpublish(ctx context.Context, ownerID, id uint) (*models.Listing, error)
	Delete(ctx context.Context, ownerID, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.Listing, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Listing, error)
}

type service struct {
	repo repositories.ListingRepository
}

// NewService creates a listing service.
func NewService(repo repositories.ListingRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, ownerID uint, req CreateRequest) (*models.Listing, error) {
	if err := validate(req.Category, req.PriceUnit, req.UnitPrice, req.CleaningFee, req.Deposit); err != nil {
		return nil, err
	}

	listing := &models.Listing{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		PriceUnit:   req.PriceUnit,
		UnitPrice:   req.UnitPrice,
		CleaningFee: req.CleaningFee,
		Deposit:     req.Deposit,
		Address:     req.Address,
		City:        req.City,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      "draft",
	}
	if err := s.repo.Create(listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return listing, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.Listing, error) {
	return s.repo.GetByID(id)
}

func (s *service) GetWithOwner(id uint) (*models.Listing, error) {
	return s.repo.GetWithOwner(id)
}

func (s *service) Update(ctx context.Context, ownerID, id uint, req UpdateRequest) (*models.Listing, error) {
	listing, err := s.owned(ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.UnitPrice != nil {
		listing.UnitPrice = *req.UnitPrice
	}
	if req.CleaningFee != nil {
		listing.CleaningFee = *req.CleaningFee
	}
	if req.Deposit != nil {
		listing.Deposit = *req.Deposit
	}
	if err := validate(listing.Category, listing.PriceUnit, listing.UnitPrice, listing.CleaningFee, listing.Deposit); err != nil {
		return nil, err
	}

	if err := s.repo.Update(listing); err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}
	return listing, nil
}

func (s *service) Publish(ctx context.Context, ownerID, id uint) (*models.Listing, error) {
	return s.setStatus(ownerID, id, "published")
}

func (s *service) Unpublish(ctx context.Context, ownerID, id uint) (*models.Listing, error) {
	return s.setStatus(ownerID, id, "unpublished")
}

func (s *service) Delete(ctx context.Context, ownerID, id uint) error {
	if _, err := s.owned(ownerID, id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]models.Listing, error) {
	return s.repo.List(limit, offset)
}

func (s *service) ListByOwner(ctx context.Context, ownerID uint) ([]models.Listing, error) {
	return s.repo.ListByOwner(ownerID)
}

func (s *service) setStatus(ownerID, id uint, status string) (*models.Listing, error) {
	listing, err := s.owned(ownerID, id)
	if err != nil {
		return nil, err
	}
	if status == "published" {
		v := validation.New()
		v.Listing(listing)
		if !v.Valid() {
			for field, msg := range v.Errors {
				return nil, fmt.Errorf("%w: %s %s", ErrNotPublishable, field, msg)
			}
		}
	}
	listing.Status = status
	if status == "published" && listing.PublishedAt == nil {
		now := time.Now()
		listing.PublishedAt = &now
	}
	if err := s.repo.Update(listing); err != nil {
		return nil, fmt.Errorf("failed to update listing status: %w", err)
	}
	return listing, nil
}

func (s *service) owned(ownerID, id uint) (*models.Listing, error) {
	listing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return listing, nil
}

func validate(category, unit string, price, cleaningFee, deposit float64) error {
	if category != models.ListingCategoryObject && category != models.ListingCategorySpace {
		return ErrInvalidCategory
	}
	switch unit {
	case models.PriceUnitHour, models.PriceUnitDay, models.PriceUnitWeek, models.PriceUnitMonth:
	default:
		return ErrInvalidUnit
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	if cleaningFee < 0 || deposit < 0 {
		return ErrNegativeAmount
	}
	return nil
}
