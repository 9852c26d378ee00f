package app

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Events
	r.HandleFunc("/api/event", deps.EventHandler.ListEvents).Methods("GET")
	r.HandleFunc("/api/event", deps.EventHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.UpdateEvent).Methods("PUT")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.DeleteEvent).Methods("DELETE")

	// View controller
	r.HandleFunc("/api/view", deps.ViewHandler.GetView).Methods("GET")
	r.HandleFunc("/api/view/date", deps.ViewHandler.SelectDate).Queries("date", "{date}").Methods("PUT")
	r.HandleFunc("/api/view/mode", deps.ViewHandler.SetMode).Methods("PUT")
	r.HandleFunc("/api/view/previous", deps.ViewHandler.Previous).Methods("POST")
	r.HandleFunc("/api/view/next", deps.ViewHandler.Next).Methods("POST")

	// Edit dialog
	r.HandleFunc("/api/view/dialog", deps.ViewHandler.OpenDialog).Methods("POST")
	r.HandleFunc("/api/view/dialog", deps.ViewHandler.Cancel).Methods("DELETE")
	r.HandleFunc("/api/view/form", deps.ViewHandler.GetForm).Methods("GET")
	r.HandleFunc("/api/view/form", deps.ViewHandler.SubmitForm).Methods("POST")
	r.HandleFunc("/api/view/event/{eventId}", deps.ViewHandler.DeleteEvent).Methods("DELETE")

	// Presenters
	r.HandleFunc("/api/grid", deps.ViewHandler.GetGrid).Methods("GET")
	r.HandleFunc("/api/agenda", deps.ViewHandler.GetAgenda).Methods("GET")
	r.HandleFunc("/api/palette", deps.ViewHandler.GetPalette).Methods("GET")

	// Metrics
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
}
