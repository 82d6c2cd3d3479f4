package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tinadigital/webquest/internal/middleware"
	"github.com/tinadigital/webquest/internal/questionnaire"
	"github.com/tinadigital/webquest/internal/service"
)

// SendEmailResponse is the body of every /api/send-email response
type SendEmailResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// SendEmail handles POST /api/send-email
// Forwards the questionnaire answers as an email. Every failure is a 500.
func (h *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	log := h.log.WithRequestID(middleware.GetRequestID(r.Context()))

	if h.cfg.Server.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Server.MaxBodyBytes)
	}

	var payload *questionnaire.Submission
	err := readJSON(r, &payload)
	if err == nil {
		err = checkSubmission(payload)
	}
	if err != nil {
		log.Warn().Err(err).Msg("invalid submission payload")
		writeJSON(w, http.StatusInternalServerError, SendEmailResponse{
			Success: false,
			Error:   fmt.Sprintf("invalid payload: %v", err),
		})
		return
	}
	sub := *payload

	log.Debug().Interface("submission", sub).Msg("submission received")

	id, err := h.submissionSvc.Forward(r.Context(), sub)
	if err != nil {
		msg := "Failed to send email"
		if errors.Is(err, service.ErrDeliveryFailed) {
			msg = err.Error()
		}
		log.Error().Err(err).Str("business_name", sub.BusinessName).Msg("send email failed")
		writeJSON(w, http.StatusInternalServerError, SendEmailResponse{
			Success: false,
			Error:   msg,
		})
		return
	}

	writeJSON(w, http.StatusOK, SendEmailResponse{
		Success:   true,
		MessageID: id,
		Message:   "Email enviado correctamente",
	})
}

// checkSubmission rejects payloads that decode but are not a submission object.
func checkSubmission(sub *questionnaire.Submission) error {
	if sub == nil {
		return errors.New("submission must be a JSON object")
	}
	if sub.DesiredFeatures == nil {
		return errors.New("desiredFeatures must be an array")
	}
	return nil
}

// Questions handles GET /api/questions
// Returns the questionnaire so other front-ends can render the same form.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.questions,
		"required":  questionnaire.RequiredFields,
	})
}
