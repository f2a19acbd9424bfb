package apitest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cleanbook/models"
)

func newID() string {
	return uuid.New().String()
}

// detail mirrors the deployed backend's error body shape.
func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

func monthPrefix(c *gin.Context) (string, bool) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		detail(c, http.StatusBadRequest, "Invalid year or month")
		return "", false
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01") + "-", true
}

func (s *Server) listServices(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	services := []models.Service{}
	for _, id := range s.serviceOrder {
		if svc := s.services[id]; svc.Active {
			services = append(services, svc)
		}
	}
	c.JSON(http.StatusOK, services)
}

func (s *Server) getAvailability(c *gin.Context) {
	prefix, ok := monthPrefix(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	dates := []models.DateAvailability{}
	for date, day := range s.availability {
		if !strings.HasPrefix(date, prefix) {
			continue
		}
		dates = append(dates, models.DateAvailability{
			Date:      date,
			Available: day.Available,
			HasSlots:  len(day.TimeSlots) > 0,
		})
	}
	c.JSON(http.StatusOK, models.AvailabilityResponse{Dates: dates})
}

// bookedTimes lists times held by pending or confirmed bookings on a date.
// Callers hold s.mu.
func (s *Server) bookedTimes(date string) map[string]bool {
	booked := make(map[string]bool)
	for _, b := range s.bookings {
		if b.BookingDate == date && (b.Status == models.BookingStatusPending || b.Status == models.BookingStatusConfirmed) {
			booked[b.BookingTime] = true
		}
	}
	return booked
}

func (s *Server) getSlots(c *gin.Context) {
	date := c.Query("date")
	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.availability[date]
	if !ok || !day.Available {
		c.JSON(http.StatusOK, models.SlotQueryResult{
			Slots: []string{}, AllSlots: []string{}, BookedSlots: []string{}, Available: false,
		})
		return
	}

	booked := s.bookedTimes(date)
	free := []string{}
	bookedList := []string{}
	for _, slot := range day.TimeSlots {
		if booked[slot] {
			bookedList = append(bookedList, slot)
		} else {
			free = append(free, slot)
		}
	}
	c.JSON(http.StatusOK, models.SlotQueryResult{
		Slots:       free,
		AllSlots:    day.TimeSlots,
		BookedSlots: bookedList,
		Available:   len(free) > 0,
	})
}

func isFriday(date string) bool {
	day, err := time.Parse("2006-01-02", date)
	return err == nil && day.Weekday() == time.Friday
}

func (s *Server) fridayDiscountPercent() float64 {
	percent, err := strconv.ParseFloat(s.settings["friday_discount"], 64)
	if err != nil {
		return 10
	}
	return percent
}

func (s *Server) createBooking(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		detail(c, http.StatusBadRequest, "Invalid booking payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A replayed submission with the same idempotency key returns the
	// booking created the first time instead of double-booking the slot.
	idemKey := c.GetHeader("Idempotency-Key")
	if idemKey != "" {
		if bookingID, seen := s.idempotency[idemKey]; seen {
			c.JSON(http.StatusOK, s.bookings[bookingID])
			return
		}
	}

	service, ok := s.services[draft.ServiceID]
	if !ok {
		detail(c, http.StatusNotFound, "Service not found")
		return
	}

	day, ok := s.availability[draft.BookingDate]
	if !ok || !day.Available {
		detail(c, http.StatusBadRequest, "Date not available")
		return
	}

	inSlots := false
	for _, slot := range day.TimeSlots {
		if slot == draft.BookingTime {
			inSlots = true
			break
		}
	}
	if !inSlots {
		detail(c, http.StatusBadRequest, "Time slot not available")
		return
	}

	if s.bookedTimes(draft.BookingDate)[draft.BookingTime] {
		detail(c, http.StatusBadRequest, "Time slot already booked")
		return
	}

	discount := 0.0
	if isFriday(draft.BookingDate) {
		discount = service.Price * s.fridayDiscountPercent() / 100
	}

	booking := models.Booking{
		ID:              newID(),
		ServiceID:       draft.ServiceID,
		ServiceName:     service.Name,
		CustomerName:    draft.CustomerName,
		CustomerPhone:   draft.CustomerPhone,
		CustomerAddress: draft.CustomerAddress,
		BookingDate:     draft.BookingDate,
		BookingTime:     draft.BookingTime,
		TotalPrice:      service.Price - discount,
		DiscountApplied: discount,
		PaymentMethod:   draft.PaymentMethod,
		Status:          models.BookingStatusPending,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	s.bookings[booking.ID] = booking
	s.bookingOrder = append(s.bookingOrder, booking.ID)
	if idemKey != "" {
		s.idempotency[idemKey] = booking.ID
	}
	if customer, ok := s.customers[draft.CustomerPhone]; ok {
		customer.TotalBookings++
	}

	c.JSON(http.StatusOK, booking)
}

func (s *Server) checkBookings(c *gin.Context) {
	phone := c.Query("phone")
	s.mu.Lock()
	defer s.mu.Unlock()
	bookings := []models.Booking{}
	for i := len(s.bookingOrder) - 1; i >= 0; i-- {
		if b := s.bookings[s.bookingOrder[i]]; b.CustomerPhone == phone {
			bookings = append(bookings, b)
		}
	}
	c.JSON(http.StatusOK, bookings)
}

func (s *Server) cancelBooking(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Booking not found")
		return
	}
	if booking.CustomerPhone != c.Query("phone") {
		detail(c, http.StatusForbidden, "Unauthorized")
		return
	}
	if !booking.CanCancel() {
		detail(c, http.StatusBadRequest, "Booking cannot be cancelled")
		return
	}
	booking.Status = models.BookingStatusCancelled
	s.bookings[booking.ID] = booking
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully", "id": booking.ID})
}

func (s *Server) registerCustomer(c *gin.Context) {
	var reg models.CustomerRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		detail(c, http.StatusBadRequest, "Invalid registration payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.customers[reg.Phone]; exists {
		detail(c, http.StatusBadRequest, "Phone already registered")
		return
	}
	customer := &models.Customer{
		ID:           newID(),
		Name:         reg.Name,
		Phone:        reg.Phone,
		Email:        reg.Email,
		ReferralCode: strings.ToUpper(strings.ReplaceAll(newID(), "-", "")[:8]),
	}
	s.customers[reg.Phone] = customer
	c.JSON(http.StatusOK, customer)
}

func (s *Server) loginCustomer(c *gin.Context) {
	var body struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		detail(c, http.StatusBadRequest, "Invalid login payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	customer, ok := s.customers[body.Phone]
	if !ok {
		detail(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) customerProfile(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	customer, ok := s.customers[c.Query("phone")]
	if !ok {
		detail(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (s *Server) updateAddress(c *gin.Context) {
	var body struct {
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		detail(c, http.StatusBadRequest, "Invalid address payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	customer, ok := s.customers[body.Phone]
	if !ok {
		detail(c, http.StatusNotFound, "Customer not found")
		return
	}
	customer.Address = body.Address
	c.JSON(http.StatusOK, gin.H{"message": "Address updated"})
}

func (s *Server) useReferral(c *gin.Context) {
	var use models.ReferralUse
	if err := c.ShouldBindJSON(&use); err != nil {
		detail(c, http.StatusBadRequest, "Invalid referral payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.customers[use.Phone]
	if !ok {
		detail(c, http.StatusNotFound, "Customer not found")
		return
	}
	if s.usedReferral[use.Phone] {
		detail(c, http.StatusBadRequest, "Referral code already used")
		return
	}

	var referrer *models.Customer
	for _, candidate := range s.customers {
		if candidate.ReferralCode == use.ReferralCode {
			referrer = candidate
			break
		}
	}
	if referrer == nil {
		detail(c, http.StatusBadRequest, "Invalid referral code")
		return
	}
	if referrer.Phone == user.Phone {
		detail(c, http.StatusBadRequest, "Cannot use your own referral code")
		return
	}

	referrer.LoyaltyPoints += 50
	user.LoyaltyPoints += 25
	s.usedReferral[use.Phone] = true
	c.JSON(http.StatusOK, gin.H{"message": "Referral applied"})
}

func (s *Server) listReviews(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	limit := len(s.reviews)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed < limit {
			limit = parsed
		}
	}
	reviews := []models.Review{}
	for i := len(s.reviews) - 1; i >= 0 && len(reviews) < limit; i-- {
		reviews = append(reviews, s.reviews[i])
	}
	c.JSON(http.StatusOK, reviews)
}

func (s *Server) reviewStats(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := models.ReviewStats{TotalReviews: len(s.reviews)}
	if len(s.reviews) > 0 {
		sum := 0
		for _, r := range s.reviews {
			sum += r.Rating
		}
		stats.AverageRating = float64(sum) / float64(len(s.reviews))
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) submitReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		detail(c, http.StatusBadRequest, "Invalid review payload")
		return
	}
	if review.Rating < 1 || review.Rating > 5 {
		detail(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	booking, ok := s.bookings[review.BookingID]
	if !ok {
		detail(c, http.StatusNotFound, "Booking not found")
		return
	}
	if booking.Status != models.BookingStatusCompleted {
		detail(c, http.StatusBadRequest, "Booking not completed")
		return
	}
	review.ID = newID()
	review.CustomerName = booking.CustomerName
	review.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	s.reviews = append(s.reviews, review)
	c.JSON(http.StatusOK, review)
}

func (s *Server) getLocation(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loc, ok := s.locations[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Location not found")
		return
	}
	c.JSON(http.StatusOK, loc)
}

func (s *Server) getWorkPhotos(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	photos := s.workPhotos[c.Param("id")]
	if photos == nil {
		photos = []models.WorkPhoto{}
	}
	c.JSON(http.StatusOK, photos)
}
