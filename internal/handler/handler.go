package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/tinadigital/webquest/internal/config"
	"github.com/tinadigital/webquest/internal/database"
	"github.com/tinadigital/webquest/internal/logger"
	"github.com/tinadigital/webquest/internal/questionnaire"
	"github.com/tinadigital/webquest/internal/service"
)

// Handler holds all HTTP handlers
type Handler struct {
	rdb           *database.Redis // nil unless rate limiting is enabled
	log           *logger.Logger
	cfg           *config.Config
	submissionSvc *service.SubmissionService
	questions     []questionnaire.Question
}

// New creates a new Handler instance
func New(rdb *database.Redis, log *logger.Logger, cfg *config.Config, submissionSvc *service.SubmissionService, questions []questionnaire.Question) *Handler {
	return &Handler{
		rdb:           rdb,
		log:           log,
		cfg:           cfg,
		submissionSvc: submissionSvc,
		questions:     questions,
	}
}

// JSON helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON value")
	}
	return nil
}
