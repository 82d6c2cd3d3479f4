package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinadigital/webquest/internal/questionnaire"
)

func fullSubmission() questionnaire.Submission {
	return questionnaire.Submission{
		BusinessName:       "Panadería X",
		IndustryType:       "Alimentación",
		WebsitePurpose:     "vender",
		TargetAudience:     "Familias del barrio",
		DesiredFeatures:    []string{"ecommerce", "seo"},
		ContentManagement:  "cms",
		DesignPreferences:  "Minimalista",
		CompetitorWebsites: "www.ejemplo1.com",
		Budget:             "medium",
		Deadline:           "En 3 meses",
		AdditionalComments: "Entregas a domicilio",
	}
}

func TestRequestBodiesContainEveryValueOnce(t *testing.T) {
	sub := fullSubmission()
	html, err := RequestEmailHTML(sub)
	require.NoError(t, err)
	text, err := RequestEmailText(sub)
	require.NoError(t, err)

	values := []string{
		sub.BusinessName, sub.IndustryType, sub.WebsitePurpose, sub.TargetAudience,
		sub.ContentManagement, sub.DesignPreferences, sub.CompetitorWebsites,
		sub.Budget, sub.Deadline, sub.AdditionalComments,
	}
	values = append(values, sub.DesiredFeatures...)

	for _, v := range values {
		assert.Equal(t, 1, strings.Count(html, v), "html count of %q", v)
		assert.Equal(t, 1, strings.Count(text, v), "text count of %q", v)
	}
	assert.Contains(t, html, "Comentarios Adicionales")
	assert.Contains(t, text, "COMENTARIOS ADICIONALES")
}

func TestRequestBodiesOmitEmptyComments(t *testing.T) {
	sub := fullSubmission()
	sub.AdditionalComments = ""

	html, err := RequestEmailHTML(sub)
	require.NoError(t, err)
	text, err := RequestEmailText(sub)
	require.NoError(t, err)

	assert.NotContains(t, html, "Comentarios Adicionales")
	assert.NotContains(t, text, "COMENTARIOS ADICIONALES")
}

func TestFeatureListKeepsOrder(t *testing.T) {
	sub := questionnaire.Submission{
		BusinessName:    "Panadería X",
		IndustryType:    "Alimentación",
		WebsitePurpose:  "vender",
		Budget:          "medium",
		DesiredFeatures: []string{"ecommerce", "seo"},
	}

	html, err := RequestEmailHTML(sub)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(html, "<li"))
	first := strings.Index(html, "&bull; ecommerce</li>")
	second := strings.Index(html, "&bull; seo</li>")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)

	text, err := RequestEmailText(sub)
	require.NoError(t, err)
	assert.Contains(t, text, "\necommerce, seo\n")
}

func TestRequestHTMLEscapesMarkup(t *testing.T) {
	sub := fullSubmission()
	sub.BusinessName = `<script>alert("x")</script>`
	sub.DesiredFeatures = []string{"<b>seo</b>"}

	html, err := RequestEmailHTML(sub)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>seo</b>")
	assert.Contains(t, html, "&lt;script&gt;")

	text, err := RequestEmailText(sub)
	require.NoError(t, err)
	assert.Contains(t, text, `<script>alert("x")</script>`)
}

func TestRequestSubject(t *testing.T) {
	assert.Equal(t, "Nueva Solicitud de Desarrollo Web - Panadería X", RequestSubject(fullSubmission()))
}

func TestBuildMIMEMultipart(t *testing.T) {
	doc := buildMIME("onboarding@resend.dev", Message{
		To:       "tinadigital.ok@gmail.com",
		Subject:  "Hola",
		HTMLBody: "<p>hola</p>",
		TextBody: "hola",
	})
	assert.Contains(t, doc, "From: onboarding@resend.dev\r\n")
	assert.Contains(t, doc, "multipart/alternative")
	assert.Contains(t, doc, "Content-Type: text/plain; charset=UTF-8")
	assert.Contains(t, doc, "Content-Type: text/html; charset=UTF-8")
	assert.True(t, strings.HasSuffix(doc, "--boundary_webquest_email--"))
}
