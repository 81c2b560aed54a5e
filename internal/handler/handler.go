package handler

import (
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/rosterdesk/shift-planner/backend/internal/config"
	"github.com/rosterdesk/shift-planner/backend/internal/repository"
	"github.com/rosterdesk/shift-planner/backend/internal/scheduling"
	"github.com/rosterdesk/shift-planner/backend/internal/timezone"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	shifts     *scheduling.Service
	timezones  *timezone.Catalog
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, shifts *scheduling.Service, timezones *timezone.Catalog) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	// "required" alone accepts whitespace-only strings
	if err := validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		return nil, err
	}
	if err := validate.RegisterTranslation("notblank", trans,
		func(ut ut.Translator) error {
			return ut.Add("notblank", "{0} cannot be empty", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("notblank", fe.Field())
			return t
		},
	); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		shifts:     shifts,
		timezones:  timezones,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestID)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/", h.Root)
	h.Mux.Get("/health", h.Health)

	h.Mux.Route("/settings", func(r chi.Router) {
		r.Get("/timezone", h.GetTimezone)
		r.Put("/timezone", h.UpdateTimezone)
		r.Get("/timezones", h.GetAvailableTimezones)
	})

	h.Mux.Route("/workers", func(r chi.Router) {
		r.Get("/", h.GetAllWorkers)
		r.Post("/", h.CreateWorker)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetWorker)
			r.Put("/", h.UpdateWorker)
			r.Delete("/", h.DeleteWorker)
		})
	})

	h.Mux.Route("/shifts", func(r chi.Router) {
		r.Get("/", h.GetAllShifts)
		r.Post("/", h.CreateShift)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetShift)
			r.Put("/", h.UpdateShift)
			r.Delete("/", h.DeleteShift)
		})
	})
}
