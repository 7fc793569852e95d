// Package review handles post-booking reviews, one per completed booking.
package review

import (
	"context"
	"errors"
	"fmt"

	"renthub/internal/models"
	"renthub/internal/repositories"
	"renthub/internal/validation"
)

// Service errors
var (
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrNotBookingRenter = errors.New("only the booking's renter can review it")
	ErrAlreadyReviewed  = errors.New("booking already has a review")
	ErrBookingNotEnded  = errors.New("booking has not ended yet")
)

// CreateRequest is a renter's review of a booking.
type CreateRequest struct {
	BookingID uint   `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// Service defines review operations.
type Service interface {
	Create(ctx context.Context, authorID uint, req CreateRequest) (*models.Review, error)
	ListByListing(ctx context.Context, listingID uint, limit, offset int) ([]models.Review, error)
	AverageRating(ctx context.Context, listingID uint) (float64, error)
}

type service struct {
	repo     repositories.ReviewRepository
	bookings repositories.BookingRepository
}

// NewService creates a review service.
func NewService(repo repositories.ReviewRepository, bookings repositories.BookingRepository) Service {
	if repo == nil || bookings == nil {
		panic("all review dependencies are required")
	}
	return &service{repo: repo, bookings: bookings}
}

func (s *service) Create(ctx context.Context, authorID uint, req CreateRequest) (*models.Review, error) {
	v := validation.New()
	v.Review(&models.Review{BookingID: req.BookingID, Rating: req.Rating, Comment: req.Comment})
	if !v.Valid() {
		if _, ok := v.Errors["rating"]; ok {
			return nil, ErrInvalidRating
		}
		for field, msg := range v.Errors {
			return nil, fmt.Errorf("%s %s", field, msg)
		}
	}

	booking, err := s.bookings.GetByID(req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.RenterID != authorID {
		return nil, ErrNotBookingRenter
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, ErrBookingNotEnded
	}
	if _, err := s.repo.GetByBooking(req.BookingID); err == nil {
		return nil, ErrAlreadyReviewed
	} else if !errors.Is(err, repositories.ErrReviewNotFound) {
		return nil, err
	}

	review := &models.Review{
		ListingID: booking.ListingID,
		BookingID: req.BookingID,
		AuthorID:  authorID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.repo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

func (s *service) ListByListing(ctx context.Context, listingID uint, limit, offset int) ([]models.Review, error) {
	return s.repo.ListByListing(listingID, limit, offset)
}

func (s *service) AverageRating(ctx context.Context, listingID uint) (float64, error) {
	return s.repo.AverageRating(listingID)
}
