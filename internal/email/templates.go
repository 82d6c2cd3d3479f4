package email

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/tinadigital/webquest/internal/questionnaire"
)

const requestTitle = "Nueva Solicitud de Desarrollo Web"

const sectionStyle = `color:#333;border-bottom:2px solid #87CEEB;padding-bottom:10px;margin-top:25px;`

var requestHTML = htmltemplate.Must(htmltemplate.New("request.html").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>` + requestTitle + `</title>
</head>
<body style="margin:0;padding:30px;background-color:#f5f5f5;font-family:Arial,sans-serif;">
<h1 style="color:#1a4a5e;text-align:center;margin-bottom:30px;">` + requestTitle + `</h1>
<div style="background-color:#ffffff;padding:25px;border-radius:10px;box-shadow:0 2px 5px rgba(0,0,0,0.1);">
  <h2 style="` + sectionStyle + `margin-top:0;">Información del Negocio</h2>
  <p><strong>Nombre del Negocio:</strong> {{.BusinessName}}</p>
  <p><strong>Industria:</strong> {{.IndustryType}}</p>

  <h2 style="` + sectionStyle + `">Detalles del Proyecto</h2>
  <p><strong>Propósito del Sitio Web:</strong> {{.WebsitePurpose}}</p>
  <p><strong>Público Objetivo:</strong> {{.TargetAudience}}</p>

  <h2 style="` + sectionStyle + `">Características Deseadas</h2>
  <ul style="list-style-type:none;padding-left:0;">
{{- range .DesiredFeatures}}
    <li style="margin:5px 0;">&bull; {{.}}</li>
{{- end}}
  </ul>

  <h2 style="` + sectionStyle + `">Gestión y Diseño</h2>
  <p><strong>Gestión de Contenido:</strong> {{.ContentManagement}}</p>
  <p><strong>Preferencias de Diseño:</strong> {{.DesignPreferences}}</p>
  <p><strong>Sitios Web de Referencia:</strong> {{.CompetitorWebsites}}</p>

  <h2 style="` + sectionStyle + `">Presupuesto y Tiempo</h2>
  <p><strong>Presupuesto:</strong> {{.Budget}}</p>
  <p><strong>Fecha Límite:</strong> {{.Deadline}}</p>
{{- if .AdditionalComments}}

  <h2 style="` + sectionStyle + `">Comentarios Adicionales</h2>
  <p>{{.AdditionalComments}}</p>
{{- end}}
</div>
<p style="color:#898989;font-size:12px;margin-top:20px;text-align:center;">
  Esta solicitud fue enviada desde el formulario de desarrollo web de Tina Digital
</p>
</body>
</html>`))

var requestText = texttemplate.Must(texttemplate.New("request.txt").Funcs(texttemplate.FuncMap{
	"join": strings.Join,
}).Parse(requestTitle + `

INFORMACIÓN DEL NEGOCIO
Nombre: {{.BusinessName}}
Industria: {{.IndustryType}}

DETALLES DEL PROYECTO
Propósito: {{.WebsitePurpose}}
Público Objetivo: {{.TargetAudience}}

CARACTERÍSTICAS DESEADAS
{{join .DesiredFeatures ", "}}

GESTIÓN Y DISEÑO
Gestión de Contenido: {{.ContentManagement}}
Preferencias de Diseño: {{.DesignPreferences}}
Referencias: {{.CompetitorWebsites}}

PRESUPUESTO Y TIEMPO
Presupuesto: {{.Budget}}
Fecha Límite: {{.Deadline}}
{{- if .AdditionalComments}}

COMENTARIOS ADICIONALES
{{.AdditionalComments}}
{{- end}}

- Tina Digital
`))

// RequestSubject returns the subject line for a questionnaire submission.
func RequestSubject(sub questionnaire.Submission) string {
	return requestTitle + " - " + sub.BusinessName
}

// RequestEmailHTML returns the HTML body for a questionnaire submission.
// Every answer is HTML-escaped.
func RequestEmailHTML(sub questionnaire.Submission) (string, error) {
	var buf bytes.Buffer
	if err := requestHTML.Execute(&buf, sub); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RequestEmailText returns the plain-text body for a questionnaire submission.
func RequestEmailText(sub questionnaire.Submission) (string, error) {
	var buf bytes.Buffer
	if err := requestText.Execute(&buf, sub); err != nil {
		return "", err
	}
	return buf.String(), nil
}
