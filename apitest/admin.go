package apitest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"cleanbook/models"
	"cleanbook/utils"
)

func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if _, err := utils.ValidateToken(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			return
		}
		c.Next()
	}
}

func (s *Server) adminLogin(c *gin.Context) {
	var creds models.AdminCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		detail(c, http.StatusBadRequest, "Invalid login payload")
		return
	}
	s.mu.Lock()
	username, hash := s.adminUsername, s.adminHash
	s.mu.Unlock()

	if creds.Username != username || bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)) != nil {
		detail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := utils.GenerateToken(creds.Username, 24*time.Hour)
	if err != nil {
		detail(c, http.StatusInternalServerError, "Token generation failed")
		return
	}
	c.JSON(http.StatusOK, models.AdminToken{Token: token, Username: creds.Username})
}

func (s *Server) changePassword(c *gin.Context) {
	var change models.PasswordChange
	if err := c.ShouldBindJSON(&change); err != nil {
		detail(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if bcrypt.CompareHashAndPassword(s.adminHash, []byte(change.CurrentPassword)) != nil {
		detail(c, http.StatusBadRequest, "Current password is incorrect")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(change.NewPassword), bcrypt.MinCost)
	if err != nil {
		detail(c, http.StatusInternalServerError, "Hashing failed")
		return
	}
	s.adminHash = hash
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (s *Server) adminBookings(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bookings := []models.Booking{}
	for i := len(s.bookingOrder) - 1; i >= 0; i-- {
		bookings = append(bookings, s.bookings[s.bookingOrder[i]])
	}
	c.JSON(http.StatusOK, bookings)
}

func (s *Server) setBookingStatus(c *gin.Context) {
	var update models.BookingStatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		detail(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	booking, ok := s.bookings[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Booking not found")
		return
	}
	booking.Status = update.Status
	s.bookings[booking.ID] = booking
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}

func (s *Server) adminServices(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	services := []models.Service{}
	for _, id := range s.serviceOrder {
		services = append(services, s.services[id])
	}
	c.JSON(http.StatusOK, services)
}

func (s *Server) createService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		detail(c, http.StatusBadRequest, "Invalid service payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	svc.ID = newID()
	s.services[svc.ID] = svc
	s.serviceOrder = append(s.serviceOrder, svc.ID)
	c.JSON(http.StatusOK, svc)
}

func (s *Server) updateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		detail(c, http.StatusBadRequest, "Invalid service payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.Param("id")
	if _, ok := s.services[id]; !ok {
		detail(c, http.StatusNotFound, "Service not found")
		return
	}
	svc.ID = id
	s.services[id] = svc
	c.JSON(http.StatusOK, gin.H{"message": "Service updated"})
}

func (s *Server) deleteService(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.Param("id")
	if _, ok := s.services[id]; !ok {
		detail(c, http.StatusNotFound, "Service not found")
		return
	}
	delete(s.services, id)
	for i, existing := range s.serviceOrder {
		if existing == id {
			s.serviceOrder = append(s.serviceOrder[:i], s.serviceOrder[i+1:]...)
			break
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

func (s *Server) adminAvailability(c *gin.Context) {
	prefix, ok := monthPrefix(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	days := []models.AvailabilityDay{}
	for date, day := range s.availability {
		if strings.HasPrefix(date, prefix) {
			days = append(days, day)
		}
	}
	c.JSON(http.StatusOK, days)
}

func (s *Server) setAvailability(c *gin.Context) {
	var day models.AvailabilityDay
	if err := c.ShouldBindJSON(&day); err != nil {
		detail(c, http.StatusBadRequest, "Invalid availability payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.availability[day.Date]; ok {
		day.ID = existing.ID
	} else {
		day.ID = newID()
	}
	s.availability[day.Date] = day
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

func (s *Server) getSettings(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings := []models.Setting{}
	for key, value := range s.settings {
		settings = append(settings, models.Setting{ID: key, Key: key, Value: value})
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) updateSetting(c *gin.Context) {
	var setting models.Setting
	if err := c.ShouldBindJSON(&setting); err != nil {
		detail(c, http.StatusBadRequest, "Invalid setting payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[setting.Key] = setting.Value
	c.JSON(http.StatusOK, gin.H{"message": "Setting updated"})
}

func (s *Server) adminStats(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := models.AdminStats{TotalBookings: len(s.bookings)}
	for _, b := range s.bookings {
		switch b.Status {
		case models.BookingStatusPending:
			stats.PendingBookings++
		case models.BookingStatusConfirmed:
			stats.ConfirmedBookings++
		case models.BookingStatusCompleted:
			stats.CompletedBookings++
		}
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) adminReviews(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reviews := []models.Review{}
	for i := len(s.reviews) - 1; i >= 0; i-- {
		reviews = append(reviews, s.reviews[i])
	}
	c.JSON(http.StatusOK, reviews)
}

func (s *Server) updateLocation(c *gin.Context) {
	var loc models.CrewLocation
	if err := c.ShouldBindJSON(&loc); err != nil {
		detail(c, http.StatusBadRequest, "Invalid location payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[loc.BookingID]; !ok {
		detail(c, http.StatusNotFound, "Booking not found")
		return
	}
	loc.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	s.locations[loc.BookingID] = loc
	c.JSON(http.StatusOK, gin.H{"message": "Location updated"})
}

func (s *Server) uploadWorkPhoto(c *gin.Context) {
	var photo models.WorkPhoto
	if err := c.ShouldBindJSON(&photo); err != nil {
		detail(c, http.StatusBadRequest, "Invalid photo payload")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[photo.BookingID]; !ok {
		detail(c, http.StatusNotFound, "Booking not found")
		return
	}
	photo.ID = newID()
	photo.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	s.workPhotos[photo.BookingID] = append(s.workPhotos[photo.BookingID], photo)
	c.JSON(http.StatusOK, photo)
}
