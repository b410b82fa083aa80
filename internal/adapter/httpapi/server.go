package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/example/coffee-miniapp/internal/cart"
	"github.com/example/coffee-miniapp/internal/domain"
	"github.com/example/coffee-miniapp/internal/menu"
	"github.com/example/coffee-miniapp/internal/platform/logger"
	"github.com/example/coffee-miniapp/internal/platform/metrics"
	"github.com/example/coffee-miniapp/internal/usecase"
)

const maxBodyBytes = 64 << 10

// MiniApp — операции сессии, которые нужны HTTP-слою.
type MiniApp interface {
	Menu() menu.View
	Cart() cart.Summary
	ChangeQuantity(id string, delta int, alerts domain.Alerter) (usecase.QuantityResult, cart.Summary, error)
	SelectGrind(id, value string) (cart.Summary, error)
	Clear(confirm domain.Confirmer) (bool, cart.Summary)
	Submit(ctx context.Context, req domain.Requester, comment string, alerts domain.Alerter) (usecase.Outcome, cart.Summary, error)
	LoadErr() error
}

type Server struct {
	Router  *mux.Router
	App     MiniApp
	Log     *logger.Logger
	Metrics *metrics.Metrics
}

func NewServer(app MiniApp, log *logger.Logger, m *metrics.Metrics) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	s := &Server{Router: mux.NewRouter(), App: app, Log: log, Metrics: m}
	s.Router.Use(s.requestID, s.observe)

	api := s.Router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/menu", s.handleMenu).Methods(http.MethodGet)
	api.HandleFunc("/cart", s.handleCart).Methods(http.MethodGet)
	api.HandleFunc("/cart/clear", s.handleClear).Methods(http.MethodPost)
	api.HandleFunc("/cart/{id}/quantity", s.handleQuantity).Methods(http.MethodPost)
	api.HandleFunc("/cart/{id}/grind", s.handleGrind).Methods(http.MethodPost)
	api.HandleFunc("/order", s.handleOrder).Methods(http.MethodPost)

	s.Router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	s.Router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	return s
}

// ErrorResponse — единый формат ошибки транспорта.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type cartResponse struct {
	Cart         cart.Summary    `json:"cart"`
	UI           cart.UIState    `json:"ui"`
	Accepted     bool            `json:"accepted"`
	Alerts       []string        `json:"alerts,omitempty"`
	Highlight    *menu.Highlight `json:"highlight,omitempty"`
	CommentReset bool            `json:"comment_reset,omitempty"`
}

type menuResponse struct {
	Menu menu.View    `json:"menu"`
	Cart cart.Summary `json:"cart"`
	UI   cart.UIState `json:"ui"`
}

type orderResponse struct {
	Status string       `json:"status"`
	Alerts []string     `json:"alerts,omitempty"`
	Cart   cart.Summary `json:"cart"`
	UI     cart.UIState `json:"ui"`
}

type quantityRequest struct {
	Delta int `json:"delta"`
}

type grindRequest struct {
	GrindLevel string `json:"grind_level"`
}

type clearRequest struct {
	Confirmed bool `json:"confirmed"`
}

type orderRequest struct {
	Comment string            `json:"comment"`
	User    *domain.Requester `json:"user,omitempty"`
}

// alertRecorder собирает сообщения за один запрос; клиент показывает их модально.
type alertRecorder struct {
	msgs []string
}

func (a *alertRecorder) ShowAlert(msg string) { a.msgs = append(a.msgs, msg) }

// handleHealth отвечает 200 и без меню: панель ошибки — рабочее состояние сервиса.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if err := s.App.LoadErr(); err != nil {
		writeJSON(w, http.StatusOK, healthResponse{Status: "degraded", Reason: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	sum := s.App.Cart()
	writeJSON(w, http.StatusOK, menuResponse{Menu: s.App.Menu(), Cart: sum, UI: sum.UI()})
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	sum := s.App.Cart()
	writeJSON(w, http.StatusOK, cartResponse{Cart: sum, UI: sum.UI(), Accepted: true})
}

func (s *Server) handleQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if !s.decode(w, r, &req) {
		return
	}
	alerts := &alertRecorder{}
	res, sum, err := s.App.ChangeQuantity(mux.Vars(r)["id"], req.Delta, alerts)
	if err != nil && domain.KindOf(err) != domain.KindValidation {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{
		Cart:      sum,
		UI:        sum.UI(),
		Accepted:  err == nil,
		Alerts:    alerts.msgs,
		Highlight: res.Highlight,
	})
}

func (s *Server) handleGrind(w http.ResponseWriter, r *http.Request) {
	var req grindRequest
	if !s.decode(w, r, &req) {
		return
	}
	sum, err := s.App.SelectGrind(mux.Vars(r)["id"], req.GrindLevel)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Cart: sum, UI: sum.UI(), Accepted: true})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	var req clearRequest
	if !s.decode(w, r, &req) {
		return
	}
	cleared, sum := s.App.Clear(domain.ConfirmFunc(func(string) bool { return req.Confirmed }))
	writeJSON(w, http.StatusOK, cartResponse{
		Cart:         sum,
		UI:           sum.UI(),
		Accepted:     cleared,
		CommentReset: cleared,
	})
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !s.decode(w, r, &req) {
		return
	}
	var requester domain.Requester
	if req.User != nil {
		requester = *req.User
	}

	alerts := &alertRecorder{}
	outcome, sum, err := s.App.Submit(r.Context(), requester, req.Comment, alerts)
	status := http.StatusOK
	if outcome == usecase.OutcomeFailed {
		status = http.StatusBadGateway
		if domain.KindOf(err) == domain.KindUnknown {
			status = http.StatusInternalServerError
		}
	}
	writeJSON(w, status, orderResponse{
		Status: string(outcome),
		Alerts: alerts.msgs,
		Cart:   sum,
		UI:     sum.UI(),
	})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		msg := "Invalid JSON payload"
		if errors.Is(err, io.EOF) {
			msg = "Request body is empty"
		}
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", msg)
		return false
	}
	return true
}

func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		code := "INVALID_INPUT"
		if de.Kind == domain.KindNotFound {
			code = "NOT_FOUND"
		}
		writeError(w, de.HTTPStatus(), code, de.Message)
		return
	}
	s.Log.Error("unexpected error", zap.String("path", r.URL.Path), zap.Error(err))
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}
