// Package apitest runs an in-process double of the booking backend's REST
// contract, backed by in-memory fixtures. It exists so client tests can
// exercise the real HTTP path, including conflict rejections and bearer
// auth, without a product server. The contract (paths, payloads, {detail}
// error bodies) mirrors the deployed backend and must not drift from it.
package apitest

import (
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"cleanbook/models"
)

// Server is one fake backend instance with its own fixture state.
type Server struct {
	mu sync.Mutex

	services     map[string]models.Service
	serviceOrder []string
	availability map[string]models.AvailabilityDay
	bookings     map[string]models.Booking
	bookingOrder []string
	customers    map[string]*models.Customer
	usedReferral map[string]bool
	reviews      []models.Review
	locations    map[string]models.CrewLocation
	workPhotos   map[string][]models.WorkPhoto
	settings     map[string]string
	idempotency  map[string]string

	adminUsername string
	adminHash     []byte

	httpServer *httptest.Server
}

// NewServer starts the double and registers its shutdown with the test.
func NewServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		services:     make(map[string]models.Service),
		availability: make(map[string]models.AvailabilityDay),
		bookings:     make(map[string]models.Booking),
		customers:    make(map[string]*models.Customer),
		usedReferral: make(map[string]bool),
		locations:    make(map[string]models.CrewLocation),
		workPhotos:   make(map[string][]models.WorkPhoto),
		settings:     map[string]string{"friday_discount": "10"},
		idempotency:  make(map[string]string),
	}

	router := gin.New()
	// The deployed backend runs with CORS wide open; the double matches it.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "Idempotency-Key"},
	}))
	s.registerRoutes(router)

	s.httpServer = httptest.NewServer(router)
	t.Cleanup(s.httpServer.Close)
	return s
}

// URL is the base address to point a backend.Client at.
func (s *Server) URL() string {
	return s.httpServer.URL
}

func (s *Server) registerRoutes(router *gin.Engine) {
	api := router.Group("/api")

	api.GET("/services", s.listServices)
	api.GET("/availability", s.getAvailability)
	api.GET("/availability/slots", s.getSlots)
	api.POST("/bookings", s.createBooking)
	api.GET("/bookings/check", s.checkBookings)
	api.PUT("/bookings/:id/cancel", s.cancelBooking)

	api.POST("/customers/register", s.registerCustomer)
	api.POST("/customers/login", s.loginCustomer)
	api.GET("/customers/profile", s.customerProfile)
	api.PUT("/customers/address", s.updateAddress)
	api.POST("/referral/use", s.useReferral)

	api.GET("/reviews", s.listReviews)
	api.GET("/reviews/stats", s.reviewStats)
	api.POST("/reviews", s.submitReview)

	api.GET("/location/:id", s.getLocation)
	api.GET("/work-photos/:id", s.getWorkPhotos)

	api.POST("/admin/login", s.adminLogin)

	authed := api.Group("", s.requireAdmin())
	authed.PUT("/admin/change-password", s.changePassword)
	authed.GET("/admin/bookings", s.adminBookings)
	authed.PUT("/admin/bookings/:id", s.setBookingStatus)
	authed.GET("/admin/services", s.adminServices)
	authed.POST("/admin/services", s.createService)
	authed.PUT("/admin/services/:id", s.updateService)
	authed.DELETE("/admin/services/:id", s.deleteService)
	authed.GET("/admin/availability", s.adminAvailability)
	authed.POST("/admin/availability", s.setAvailability)
	authed.GET("/admin/settings", s.getSettings)
	authed.PUT("/admin/settings", s.updateSetting)
	authed.GET("/admin/stats", s.adminStats)
	authed.GET("/admin/reviews", s.adminReviews)
	authed.POST("/location/update", s.updateLocation)
	authed.POST("/work-photos", s.uploadWorkPhoto)
}

// SeedService adds a bookable service fixture and returns its id.
func (s *Server) SeedService(svc models.Service) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if svc.ID == "" {
		svc.ID = newID()
	}
	s.services[svc.ID] = svc
	s.serviceOrder = append(s.serviceOrder, svc.ID)
	return svc.ID
}

// SeedDay configures availability for one date.
func (s *Server) SeedDay(date string, available bool, slots ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availability[date] = models.AvailabilityDay{
		ID:        newID(),
		Date:      date,
		Available: available,
		TimeSlots: slots,
	}
}

// SeedAdmin creates the admin account the double authenticates against.
func (s *Server) SeedAdmin(username, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminUsername = username
	s.adminHash = hash
}

// SeedBooking injects a booking fixture directly, bypassing slot checks.
func (s *Server) SeedBooking(b models.Booking) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == "" {
		b.ID = newID()
	}
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}
	s.bookings[b.ID] = b
	s.bookingOrder = append(s.bookingOrder, b.ID)
	return b.ID
}

// SetFridayDiscount overrides the discount rate fixture.
func (s *Server) SetFridayDiscount(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings["friday_discount"] = value
}

// Booking returns a stored booking fixture by id.
func (s *Server) Booking(id string) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	return b, ok
}
