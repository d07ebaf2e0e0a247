package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"heavenstay/internal/data/entity"
	"heavenstay/internal/data/repository"
	"heavenstay/internal/dto/request"
	"heavenstay/internal/dto/response"
	"heavenstay/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, guestID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID, guestID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID, userID string, role entity.UserRole) error
	GetHotelReviews(ctx context.Context, hotelID string, req *request.PaginatedRequest) (*response.HotelReviewsResponse, error)
}

type reviewService struct {
	repo     *repository.Repository
	notifier Notifier
	log      *zap.Logger
}

func NewReviewService(repo *repository.Repository, notifier Notifier, log *zap.Logger) ReviewService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &reviewService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "review")),
	}
}

// CreateReview accepts one review per completed booking, written by the booking's guest.
func (s *reviewService) CreateReview(ctx context.Context, guestID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	guestUUID, err := uuid.Parse(guestID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}
	bookingUUID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, req.BookingID)
	}

	var (
		review *entity.Review
		hotel  *entity.Hotel
	)
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		booking, err := tx.Booking.FindByID(ctx, bookingUUID)
		if err != nil {
			return fmt.Errorf("find booking: %w", err)
		}
		if booking == nil {
			return notFound("booking", bookingUUID)
		}
		if booking.GuestID != guestUUID {
			return fmt.Errorf("%w: you can only review your own stays", ErrForbidden)
		}
		if booking.Status != entity.BookingStatusCompleted {
			return fmt.Errorf("%w: only completed stays can be reviewed", ErrValidation)
		}

		hotel, err = lockHotel(ctx, tx, booking.HotelID)
		if err != nil {
			return err
		}

		existing, err := tx.Review.FindByBookingID(ctx, booking.ID)
		if err != nil {
			return fmt.Errorf("find review: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("%w: booking already reviewed", ErrConflict)
		}

		review = &entity.Review{
			BaseNoDelete: entity.NewBaseNoDelete(time.Now()),
			GuestID:      guestUUID,
			HotelID:      booking.HotelID,
			BookingID:    booking.ID,
			Rating:       req.Rating,
			Comment:      req.Comment,
		}

		if err := tx.Review.Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return fmt.Errorf("%w: booking already reviewed", ErrConflict)
			}
			return err
		}

		return s.recomputeHotelRating(ctx, tx, hotel)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("hotel_id", review.HotelID.String()),
		zap.Int("rating", review.Rating),
	)

	if hotel != nil {
		s.notifier.Notify(ctx, newNotification(hotel.HotelierID, entity.NotificationReviewCreated,
			"New review",
			fmt.Sprintf("%s received a %d-star review. Rating is now %s.", hotel.Name, review.Rating, hotel.Rating.StringFixed(1)),
			review.ID))
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID, guestID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	guestUUID, err := uuid.Parse(guestID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid review ID %s", ErrValidation, reviewID)
	}

	var review *entity.Review
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		var err error
		review, err = tx.Review.FindByID(ctx, reviewUUID)
		if err != nil {
			return fmt.Errorf("find review: %w", err)
		}
		if review == nil {
			return notFound("review", reviewUUID)
		}
		if review.GuestID != guestUUID {
			return fmt.Errorf("%w: review belongs to another guest", ErrForbidden)
		}

		hotel, err := lockHotel(ctx, tx, review.HotelID)
		if err != nil {
			return err
		}

		review.Rating = req.Rating
		review.Comment = req.Comment
		review.UpdatedAt = time.Now()

		if err := tx.Review.Update(ctx, review); err != nil {
			return err
		}

		return s.recomputeHotelRating(ctx, tx, hotel)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Review updated", zap.String("review_id", review.ID.String()), zap.Int("rating", review.Rating))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// DeleteReview is open to the author and to admins (moderation).
func (s *reviewService) DeleteReview(ctx context.Context, reviewID, userID string, role entity.UserRole) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("%w: invalid review ID %s", ErrValidation, reviewID)
	}

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		review, err := tx.Review.FindByID(ctx, reviewUUID)
		if err != nil {
			return fmt.Errorf("find review: %w", err)
		}
		if review == nil {
			return notFound("review", reviewUUID)
		}
		if review.GuestID != userUUID && role != entity.RoleAdmin {
			return fmt.Errorf("%w: review belongs to another guest", ErrForbidden)
		}

		hotel, err := lockHotel(ctx, tx, review.HotelID)
		if err != nil {
			return err
		}

		if err := tx.Review.Delete(ctx, review.ID); err != nil {
			return err
		}

		return s.recomputeHotelRating(ctx, tx, hotel)
	})
	if err != nil {
		return err
	}

	s.log.Info("Review deleted", zap.String("review_id", reviewUUID.String()), zap.String("by", userUUID.String()))
	return nil
}

func (s *reviewService) GetHotelReviews(ctx context.Context, hotelID string, req *request.PaginatedRequest) (*response.HotelReviewsResponse, error) {
	hotelUUID, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hotel ID %s", ErrValidation, hotelID)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelUUID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, notFound("hotel", hotelUUID)
	}

	req.Normalize()

	reviews, err := s.repo.Review.FindByHotelID(ctx, hotelUUID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	total, err := s.repo.Review.CountByHotelID(ctx, hotelUUID)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	items := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, response.ReviewToResponse(review))
	}

	return &response.HotelReviewsResponse{
		Stats: response.HotelReviewStats{
			AverageRating: hotel.Rating.StringFixed(1),
			ReviewCount:   hotel.ReviewCount,
		},
		Reviews: response.NewPaginatedResponse(items, req.Page, req.PerPage, total),
	}, nil
}

// ==================== HELPER METHODS ====================

// lockHotel must run before the review write. The review insert takes a key
// share lock on the hotel through its foreign key, and upgrading to FOR UPDATE
// after that deadlocks two concurrent writers.
func lockHotel(ctx context.Context, tx *repository.Repository, hotelID uuid.UUID) (*entity.Hotel, error) {
	hotel, err := tx.Hotel.FindByIDForUpdate(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("lock hotel: %w", err)
	}
	if hotel == nil {
		return nil, notFound("hotel", hotelID)
	}
	return hotel, nil
}

// recomputeHotelRating refreshes the aggregate of a hotel locked by lockHotel.
// Review writers for one hotel serialize on that lock, and the stats query
// runs after it is granted, so it sees every committed review.
func (s *reviewService) recomputeHotelRating(ctx context.Context, tx *repository.Repository, hotel *entity.Hotel) error {
	avg, count, err := tx.Review.GetHotelReviewStats(ctx, hotel.ID)
	if err != nil {
		return err
	}

	rating := avg.Round(1)
	if err := tx.Hotel.UpdateRating(ctx, hotel.ID, rating, count); err != nil {
		return err
	}

	hotel.Rating = rating
	hotel.ReviewCount = count
	return nil
}
