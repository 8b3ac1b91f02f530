package http

import (
	"net/http"

	"clinic-booking/internal/delivery/http/handler"
	"clinic-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	homeHandler      *handler.HomeHandler
	bookingHandler   *handler.BookingHandler
	authHandler      *handler.AuthHandler
	dashboardHandler *handler.DashboardHandler
	doctorGuard      *middleware.DoctorGuard
	requestID        *middleware.RequestIDMiddleware
}

func NewRouter(
	homeHandler *handler.HomeHandler,
	bookingHandler *handler.BookingHandler,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	doctorGuard *middleware.DoctorGuard,
	requestID *middleware.RequestIDMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		homeHandler:      homeHandler,
		bookingHandler:   bookingHandler,
		authHandler:      authHandler,
		dashboardHandler: dashboardHandler,
		doctorGuard:      doctorGuard,
		requestID:        requestID,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(r.requestID.Handle)

	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public pages
	r.router.HandleFunc("/", r.homeHandler.Home).Methods(http.MethodGet)
	r.router.HandleFunc("/book", r.bookingHandler.ShowBookingForm).Methods(http.MethodGet)
	r.router.HandleFunc("/book", r.bookingHandler.ProcessBooking).Methods(http.MethodPost)

	// Doctor auth (unguarded; registered before the guarded subrouter so
	// the login form stays reachable)
	r.router.HandleFunc("/doctor/login", r.authHandler.ShowLogin).Methods(http.MethodGet)
	r.router.HandleFunc("/doctor/login", r.authHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/doctor/logout", r.authHandler.Logout).Methods(http.MethodGet)

	// Doctor views (session guard)
	doctor := r.router.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.doctorGuard.RequireDoctor)
	doctor.HandleFunc("/dashboard", r.dashboardHandler.Dashboard).Methods(http.MethodGet)
	doctor.HandleFunc("/reminders", r.dashboardHandler.Reminders).Methods(http.MethodGet)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
