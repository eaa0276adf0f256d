package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	slack_controller "github.com/santara-lab/santara/pkg/controller/slack"
	slack_model "github.com/santara-lab/santara/pkg/domain/model/slack"
	"github.com/santara-lab/santara/pkg/utils/logging"
	"github.com/slack-go/slack"
)

type Server struct {
	router   *chi.Mux
	ctrl     *slack_controller.Controller
	uc       slack_controller.TicketUseCases
	verifier slack_model.PayloadVerifier
}

type Options func(*Server)

func WithSlackVerifier(verifier slack_model.PayloadVerifier) Options {
	return func(s *Server) {
		s.verifier = verifier
	}
}

func New(uc slack_controller.TicketUseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		ctrl:   slack_controller.New(uc),
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	r.Get("/", aliveHandler)
	r.Get("/health", healthHandler)
	r.Get("/status", statusHandler(s.uc))

	r.Route("/hooks", func(r chi.Router) {
		r.Route("/slack", func(r chi.Router) {
			r.Use(verifySlackRequest(s.verifier))
			r.Post("/command", slashCommandHandler(s.ctrl))
		})
	})

	return s
}

func (x *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	x.router.ServeHTTP(w, r)
}

// aliveHandler answers uptime monitors with a fixed body.
func aliveHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("Bot is alive!")); err != nil {
		logging.From(r.Context()).Error("failed to write alive response", "error", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
		logging.From(r.Context()).Error("failed to write health response", "error", err)
	}
}

func statusHandler(uc slack_controller.TicketUseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := uc.Stats(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logging.From(r.Context()).Error("failed to encode status response", "error", err)
		}
	}
}

func slashCommandHandler(ctrl *slack_controller.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			handleError(w, r, goerr.Wrap(err, "failed to parse slash command"))
			return
		}

		reply, err := ctrl.HandleCommand(r.Context(), cmd)
		if err != nil {
			handleError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		resp := map[string]string{
			"response_type": "ephemeral",
			"text":          reply,
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logging.From(r.Context()).Error("failed to encode command response", "error", err)
		}
	}
}
