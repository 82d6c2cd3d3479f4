package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinadigital/webquest/internal/config"
	"github.com/tinadigital/webquest/internal/email"
	"github.com/tinadigital/webquest/internal/handler"
	"github.com/tinadigital/webquest/internal/logger"
	"github.com/tinadigital/webquest/internal/middleware"
	"github.com/tinadigital/webquest/internal/questionnaire"
	"github.com/tinadigital/webquest/internal/service"
)

func newTestServer(t *testing.T, sender email.Sender) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 64 << 10},
		Email: config.EmailConfig{
			Provider: "log",
			From:     "onboarding@resend.dev",
			To:       "tinadigital.ok@gmail.com",
		},
		RateLimit: config.RateLimitConfig{Limit: 5, Window: time.Minute},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	log := logger.Nop()
	svc := service.NewSubmissionService(sender, cfg, log)
	h := handler.New(nil, log, cfg, svc, questionnaire.Catalog())
	mw := middleware.New(nil, log, cfg)

	srv := httptest.NewServer(New(h, mw, cfg))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, body string) (int, handler.SendEmailResponse) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/send-email", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out handler.SendEmailResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

const panaderia = `{
	"businessName": "Panadería X",
	"industryType": "Alimentación",
	"websitePurpose": "vender",
	"targetAudience": "",
	"desiredFeatures": ["ecommerce", "seo"],
	"contentManagement": "",
	"designPreferences": "",
	"competitorWebsites": "",
	"budget": "medium",
	"deadline": "",
	"additionalComments": ""
}`

func TestSendEmailSuccess(t *testing.T) {
	sender := &email.RecordingSender{ID: "re_abc"}
	srv := newTestServer(t, sender)

	code, out := post(t, srv, panaderia)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, out.Success)
	assert.Equal(t, "re_abc", out.MessageID)

	sent := sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, 2, strings.Count(sent[0].HTMLBody, "<li"))
	assert.Less(t, strings.Index(sent[0].HTMLBody, "ecommerce"), strings.Index(sent[0].HTMLBody, "seo</li>"))
	assert.NotContains(t, sent[0].HTMLBody, "Comentarios Adicionales")
}

func TestSendEmailDeliveryFailure(t *testing.T) {
	sender := &email.RecordingSender{Err: errors.New("invalid api key")}
	srv := newTestServer(t, sender)

	code, out := post(t, srv, panaderia)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "invalid api key")
}

func TestSendEmailInvalidPayload(t *testing.T) {
	cases := map[string]string{
		"not json":              `hello`,
		"features not an array": `{"businessName":"X","desiredFeatures":"seo"}`,
		"unknown field":         `{"businessName":"X","favouriteColour":"blue"}`,
		"null body":             `null`,
		"empty object":          `{}`,
		"features null":         `{"businessName":"X","desiredFeatures":null}`,
		"trailing value":        `{"businessName":"A","desiredFeatures":[]} {"junk":1}`,
		"trailing garbage":      `{"businessName":"A","desiredFeatures":[]} x`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			sender := &email.RecordingSender{ID: "x"}
			srv := newTestServer(t, sender)

			code, out := post(t, srv, body)
			assert.Equal(t, http.StatusInternalServerError, code)
			assert.False(t, out.Success)
			assert.NotEmpty(t, out.Error)
			assert.Empty(t, sender.Sent())
		})
	}
}

func TestSendEmailAcceptsEmptyFeatureList(t *testing.T) {
	sender := &email.RecordingSender{ID: "re_empty"}
	srv := newTestServer(t, sender)

	code, out := post(t, srv, `{"businessName":"A","desiredFeatures":[]}`+"\n")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, out.Success)
	require.Len(t, sender.Sent(), 1)
	assert.NotContains(t, sender.Sent()[0].HTMLBody, "<li")
}

func TestSendEmailMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, &email.RecordingSender{})

	resp, err := http.Get(srv.URL + "/api/send-email")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestQuestionsAndHealth(t *testing.T) {
	srv := newTestServer(t, &email.RecordingSender{})

	resp, err := http.Get(srv.URL + "/api/questions")
	require.NoError(t, err)
	defer resp.Body.Close()
	var body struct {
		Questions []questionnaire.Question `json:"questions"`
		Required  []string                 `json:"required"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Questions, 11)
	assert.Equal(t, questionnaire.RequiredFields, body.Required)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	health, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, &email.RecordingSender{})

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/send-email", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}
