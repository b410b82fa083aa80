package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/coffee-miniapp/internal/platform/logger"
	"github.com/example/coffee-miniapp/internal/platform/metrics"
	"github.com/example/coffee-miniapp/internal/usecase"
)

// NewArchiveServer — HTTP-доступ orderfeed к принятым заказам.
func NewArchiveServer(get usecase.GetArchivedOrder, log *logger.Logger, m *metrics.Metrics) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	s := &Server{Router: mux.NewRouter(), Log: log, Metrics: m}
	s.Router.Use(s.requestID, s.observe)

	s.Router.HandleFunc("/api/order/{id}", func(w http.ResponseWriter, r *http.Request) {
		o, err := get.Execute(mux.Vars(r)["id"])
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, o)
	}).Methods(http.MethodGet)
	s.Router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	s.Router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	return s
}
