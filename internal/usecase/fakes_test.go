package usecase

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"heavenstay/internal/data/entity"
	"heavenstay/internal/data/repository"
	"heavenstay/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// memStore is an in-memory stand-in for Postgres. Transactions are
// serialized by txMu, which plays the role of the room row lock, and a
// failed transaction restores the snapshot taken when it began.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	users         map[uuid.UUID]entity.User
	hotels        map[uuid.UUID]entity.Hotel
	rooms         map[uuid.UUID]entity.Room
	bookings      map[uuid.UUID]entity.Booking
	payments      map[uuid.UUID]entity.Payment // keyed by booking ID
	reviews       map[uuid.UUID]entity.Review
	notifications map[uuid.UUID]entity.Notification

	// failPayment makes the next Payment.Create fail
	failPayment error

	// ops records row locks, overlap counts and review writes in call order
	ops []string
}

type memSnapshot struct {
	users         map[uuid.UUID]entity.User
	hotels        map[uuid.UUID]entity.Hotel
	rooms         map[uuid.UUID]entity.Room
	bookings      map[uuid.UUID]entity.Booking
	payments      map[uuid.UUID]entity.Payment
	reviews       map[uuid.UUID]entity.Review
	notifications map[uuid.UUID]entity.Notification
}

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[uuid.UUID]entity.User),
		hotels:        make(map[uuid.UUID]entity.Hotel),
		rooms:         make(map[uuid.UUID]entity.Room),
		bookings:      make(map[uuid.UUID]entity.Booking),
		payments:      make(map[uuid.UUID]entity.Payment),
		reviews:       make(map[uuid.UUID]entity.Review),
		notifications: make(map[uuid.UUID]entity.Notification),
	}
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memSnapshot{
		users:         maps.Clone(s.users),
		hotels:        maps.Clone(s.hotels),
		rooms:         maps.Clone(s.rooms),
		bookings:      maps.Clone(s.bookings),
		payments:      maps.Clone(s.payments),
		reviews:       maps.Clone(s.reviews),
		notifications: maps.Clone(s.notifications),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.hotels = snap.hotels
	s.rooms = snap.rooms
	s.bookings = snap.bookings
	s.payments = snap.payments
	s.reviews = snap.reviews
	s.notifications = snap.notifications
}

// txRepository is the view handed to transaction bodies.
func (s *memStore) txRepository() *repository.Repository {
	return &repository.Repository{
		User:         &memUserRepo{s},
		Hotel:        &memHotelRepo{s},
		Room:         &memRoomRepo{s},
		Booking:      &memBookingRepo{s},
		Payment:      &memPaymentRepo{s},
		Review:       &memReviewRepo{s},
		Notification: &memNotificationRepo{s},
	}
}

func (s *memStore) repository() *repository.Repository {
	repo := s.txRepository()
	repo.RunInTx = func(ctx context.Context, fn func(tx *repository.Repository) error) error {
		s.txMu.Lock()
		defer s.txMu.Unlock()

		snap := s.snapshot()
		if err := fn(s.txRepository()); err != nil {
			s.restore(snap)
			return err
		}
		return nil
	}
	return repo
}

// ==================== SEED HELPERS ====================

func (s *memStore) addUser(role entity.UserRole, status entity.UserStatus) entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := entity.User{
		Base:   entity.NewBase(time.Now()),
		Name:   string(role) + " account",
		Email:  uuid.NewString() + "@example.com",
		Role:   role,
		Status: status,
	}
	s.users[user.ID] = user
	return user
}

func (s *memStore) addHotel(hotelierID uuid.UUID, status entity.HotelStatus) entity.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	hotel := entity.Hotel{
		BaseNoDelete: entity.NewBaseNoDelete(time.Now()),
		HotelierID:   hotelierID,
		Name:         "Hotel Annapurna",
		Address:      "Lakeside 6",
		City:         "Pokhara",
		Status:       status,
	}
	s.hotels[hotel.ID] = hotel
	return hotel
}

func (s *memStore) addRoom(hotelID uuid.UUID, price string, units int) entity.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	room := entity.Room{
		BaseNoDelete: entity.NewBaseNoDelete(time.Now()),
		HotelID:      hotelID,
		RoomType:     entity.RoomTypeDeluxe,
		Price:        decimal.RequireFromString(price),
		Capacity:     2,
		TotalUnits:   units,
		IsAvailable:  true,
	}
	s.rooms[room.ID] = room
	return room
}

func (s *memStore) addBooking(guestID uuid.UUID, room entity.Room, checkIn, checkOut string, status entity.BookingStatus) entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	in, _ := utils.ParseDate(checkIn)
	out, _ := utils.ParseDate(checkOut)
	booking := entity.Booking{
		BaseNoDelete:  entity.NewBaseNoDelete(time.Now()),
		BookingCode:   utils.GenerateBookingCode(time.Now()),
		GuestID:       guestID,
		HotelID:       room.HotelID,
		RoomID:        room.ID,
		CheckIn:       in,
		CheckOut:      out,
		Guests:        1,
		Nights:        int(out.Sub(in) / day),
		Subtotal:      decimal.NewFromInt(1000),
		Tax:           decimal.NewFromInt(130),
		Total:         decimal.NewFromInt(1130),
		PaymentMethod: entity.PaymentMethodCard,
		PaymentStatus: entity.BookingPaymentPaid,
		Status:        status,
	}
	s.bookings[booking.ID] = booking
	s.payments[booking.ID] = entity.Payment{
		BaseNoDelete:    entity.NewBaseNoDelete(time.Now()),
		BookingID:       booking.ID,
		GuestID:         guestID,
		Amount:          booking.Total,
		AdminCommission: decimal.RequireFromString("113"),
		HotelierAmount:  decimal.RequireFromString("1017"),
		PaymentMethod:   booking.PaymentMethod,
		Status:          entity.PaymentStatusCompleted,
	}
	return booking
}

func (s *memStore) booking(id uuid.UUID) entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings[id]
}

func (s *memStore) payment(bookingID uuid.UUID) (entity.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[bookingID]
	return p, ok
}

func (s *memStore) hotel(id uuid.UUID) entity.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hotels[id]
}

func (s *memStore) countBookings() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

// ==================== USERS ====================

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) filtered(filter repository.UserFilter) []*entity.User {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var users []*entity.User
	for _, u := range r.s.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		users = append(users, &u)
	}
	slices.SortFunc(users, func(a, b *entity.User) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return users
}

func (r *memUserRepo) FindAll(_ context.Context, filter repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	return page(r.filtered(filter), limit, offset), nil
}

func (r *memUserRepo) CountAll(_ context.Context, filter repository.UserFilter) (int64, error) {
	return int64(len(r.filtered(filter))), nil
}

func (r *memUserRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.UserStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return errors.New("user not found")
	}
	u.Status = status
	r.s.users[id] = u
	return nil
}

// ==================== HOTELS ====================

type memHotelRepo struct{ s *memStore }

func (r *memHotelRepo) Create(_ context.Context, hotel *entity.Hotel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.hotels[hotel.ID] = *hotel
	return nil
}

func (r *memHotelRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Hotel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h, ok := r.s.hotels[id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

// FindByIDForUpdate relies on txMu, which the caller already holds.
func (r *memHotelRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	r.s.record("lock hotel")
	return r.FindByID(ctx, id)
}

func (r *memHotelRepo) active(city string) []*entity.Hotel {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var hotels []*entity.Hotel
	for _, h := range r.s.hotels {
		if h.Status != entity.HotelStatusActive || (city != "" && h.City != city) {
			continue
		}
		hotels = append(hotels, &h)
	}
	slices.SortFunc(hotels, func(a, b *entity.Hotel) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return hotels
}

func (r *memHotelRepo) FindActive(_ context.Context, city string, limit, offset int) ([]*entity.Hotel, error) {
	return page(r.active(city), limit, offset), nil
}

func (r *memHotelRepo) CountActive(_ context.Context, city string) (int64, error) {
	return int64(len(r.active(city))), nil
}

func (r *memHotelRepo) FindByHotelierID(_ context.Context, hotelierID uuid.UUID) ([]*entity.Hotel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var hotels []*entity.Hotel
	for _, h := range r.s.hotels {
		if h.HotelierID == hotelierID {
			hotels = append(hotels, &h)
		}
	}
	return hotels, nil
}

func (r *memHotelRepo) Update(_ context.Context, hotel *entity.Hotel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.hotels[hotel.ID] = *hotel
	return nil
}

func (r *memHotelRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.HotelStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h := r.s.hotels[id]
	h.Status = status
	r.s.hotels[id] = h
	return nil
}

func (r *memHotelRepo) UpdateRating(_ context.Context, id uuid.UUID, rating decimal.Decimal, reviewCount int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h := r.s.hotels[id]
	h.Rating = rating
	h.ReviewCount = reviewCount
	r.s.hotels[id] = h
	return nil
}

// ==================== ROOMS ====================

type memRoomRepo struct{ s *memStore }

func (r *memRoomRepo) Create(_ context.Context, room *entity.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.rooms[room.ID] = *room
	return nil
}

func (r *memRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	room, ok := r.s.rooms[id]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

// FindByIDForUpdate relies on txMu, which the caller already holds.
func (r *memRoomRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	r.s.record("lock room")
	return r.FindByID(ctx, id)
}

func (r *memRoomRepo) FindByHotelID(_ context.Context, hotelID uuid.UUID) ([]*entity.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var rooms []*entity.Room
	for _, room := range r.s.rooms {
		if room.HotelID == hotelID {
			rooms = append(rooms, &room)
		}
	}
	return rooms, nil
}

func (r *memRoomRepo) Update(_ context.Context, room *entity.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.rooms[room.ID] = *room
	return nil
}

// ==================== BOOKINGS ====================

type memBookingRepo struct{ s *memStore }

func (r *memBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.bookings {
		if b.BookingCode == booking.BookingCode {
			return repository.ErrDuplicate
		}
	}
	r.s.bookings[booking.ID] = *booking
	return nil
}

func (r *memBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *memBookingRepo) matching(keep func(entity.Booking) bool) []*entity.Booking {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var bookings []*entity.Booking
	for _, b := range r.s.bookings {
		if keep(b) {
			bookings = append(bookings, &b)
		}
	}
	slices.SortFunc(bookings, func(a, b *entity.Booking) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return bookings
}

func (r *memBookingRepo) byGuest(guestID uuid.UUID, status entity.BookingStatus) []*entity.Booking {
	return r.matching(func(b entity.Booking) bool {
		return b.GuestID == guestID && (status == "" || b.Status == status)
	})
}

func (r *memBookingRepo) byHotelier(hotelierID uuid.UUID, status entity.BookingStatus) []*entity.Booking {
	r.s.mu.Lock()
	owned := make(map[uuid.UUID]bool)
	for _, h := range r.s.hotels {
		if h.HotelierID == hotelierID {
			owned[h.ID] = true
		}
	}
	r.s.mu.Unlock()

	return r.matching(func(b entity.Booking) bool {
		return owned[b.HotelID] && (status == "" || b.Status == status)
	})
}

func (r *memBookingRepo) FindByGuestID(_ context.Context, guestID uuid.UUID, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	return page(r.byGuest(guestID, status), limit, offset), nil
}

func (r *memBookingRepo) CountByGuestID(_ context.Context, guestID uuid.UUID, status entity.BookingStatus) (int64, error) {
	return int64(len(r.byGuest(guestID, status))), nil
}

func (r *memBookingRepo) FindByHotelierID(_ context.Context, hotelierID uuid.UUID, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	return page(r.byHotelier(hotelierID, status), limit, offset), nil
}

func (r *memBookingRepo) CountByHotelierID(_ context.Context, hotelierID uuid.UUID, status entity.BookingStatus) (int64, error) {
	return int64(len(r.byHotelier(hotelierID, status))), nil
}

func (r *memBookingRepo) CountOverlapping(_ context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int, error) {
	r.s.record("count overlapping")
	return len(r.matching(func(b entity.Booking) bool {
		return b.RoomID == roomID && b.Status.IsActive() &&
			b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn)
	})), nil
}

func (r *memBookingRepo) TransitionStatus(_ context.Context, id uuid.UUID, from, to entity.BookingStatus, paymentStatus entity.BookingPaymentStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok || b.Status != from {
		return repository.ErrStaleState
	}
	b.Status = to
	b.PaymentStatus = paymentStatus
	r.s.bookings[id] = b
	return nil
}

// ==================== PAYMENTS ====================

type memPaymentRepo struct{ s *memStore }

func (r *memPaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failPayment; err != nil {
		r.s.failPayment = nil
		return err
	}
	if _, exists := r.s.payments[payment.BookingID]; exists {
		return repository.ErrDuplicate
	}
	r.s.payments[payment.BookingID] = *payment
	return nil
}

func (r *memPaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.payments[bookingID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memPaymentRepo) UpdateStatusByBookingID(_ context.Context, bookingID uuid.UUID, status entity.PaymentStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.payments[bookingID]
	if !ok {
		return errors.New("payment not found")
	}
	p.Status = status
	r.s.payments[bookingID] = p
	return nil
}

// ==================== REVIEWS ====================

type memReviewRepo struct{ s *memStore }

func (r *memReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.ops = append(r.s.ops, "write review")
	for _, existing := range r.s.reviews {
		if existing.BookingID == review.BookingID {
			return repository.ErrDuplicate
		}
	}
	r.s.reviews[review.ID] = *review
	return nil
}

func (r *memReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	review, ok := r.s.reviews[id]
	if !ok {
		return nil, nil
	}
	return &review, nil
}

func (r *memReviewRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, review := range r.s.reviews {
		if review.BookingID == bookingID {
			return &review, nil
		}
	}
	return nil, nil
}

func (r *memReviewRepo) byHotel(hotelID uuid.UUID) []*entity.Review {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var reviews []*entity.Review
	for _, review := range r.s.reviews {
		if review.HotelID == hotelID {
			reviews = append(reviews, &review)
		}
	}
	slices.SortFunc(reviews, func(a, b *entity.Review) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return reviews
}

func (r *memReviewRepo) FindByHotelID(_ context.Context, hotelID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	return page(r.byHotel(hotelID), limit, offset), nil
}

func (r *memReviewRepo) CountByHotelID(_ context.Context, hotelID uuid.UUID) (int64, error) {
	return int64(len(r.byHotel(hotelID))), nil
}

func (r *memReviewRepo) Update(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.ops = append(r.s.ops, "write review")
	r.s.reviews[review.ID] = *review
	return nil
}

func (r *memReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.ops = append(r.s.ops, "write review")
	delete(r.s.reviews, id)
	return nil
}

func (r *memReviewRepo) GetHotelReviewStats(_ context.Context, hotelID uuid.UUID) (decimal.Decimal, int, error) {
	reviews := r.byHotel(hotelID)
	if len(reviews) == 0 {
		return decimal.Zero, 0, nil
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	avg := decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(reviews))))
	return avg, len(reviews), nil
}

// ==================== NOTIFICATIONS ====================

type memNotificationRepo struct{ s *memStore }

func (r *memNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.notifications[n.ID] = *n
	return nil
}

func (r *memNotificationRepo) byUser(userID uuid.UUID) []*entity.Notification {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Notification
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			out = append(out, &n)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Notification) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out
}

func (r *memNotificationRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	return page(r.byUser(userID), limit, offset), nil
}

func (r *memNotificationRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	return int64(len(r.byUser(userID))), nil
}

func (r *memNotificationRepo) CountUnread(_ context.Context, userID uuid.UUID) (int64, error) {
	var unread int64
	for _, n := range r.byUser(userID) {
		if !n.IsRead {
			unread++
		}
	}
	return unread, nil
}

func (r *memNotificationRepo) MarkRead(_ context.Context, id, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok || n.UserID != userID {
		return false, nil
	}
	n.IsRead = true
	r.s.notifications[id] = n
	return true, nil
}

func (r *memNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var updated int64
	for id, n := range r.s.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			r.s.notifications[id] = n
			updated++
		}
	}
	return updated, nil
}

// ==================== SHARED HELPERS ====================

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []*entity.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notification *entity.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
}

func (n *recordingNotifier) sentTo(userID uuid.UUID) []*entity.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []*entity.Notification
	for _, sent := range n.sent {
		if sent.UserID == userID {
			out = append(out, sent)
		}
	}
	return out
}

func testBookingConfig() utils.BookingConfig {
	return utils.DefaultBookingConfig()
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func (s *memStore) record(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, op)
}

func (s *memStore) takeOps() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ops := s.ops
	s.ops = nil
	return ops
}
