package questionnaire

// Kind is the input kind of a question
type Kind string

const (
	KindText        Kind = "text"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multiselect"
	KindTextArea    Kind = "textarea"
)

// Question IDs, also the JSON field names of a Submission
const (
	BusinessName       = "businessName"
	IndustryType       = "industryType"
	WebsitePurpose     = "websitePurpose"
	TargetAudience     = "targetAudience"
	DesiredFeatures    = "desiredFeatures"
	ContentManagement  = "contentManagement"
	DesignPreferences  = "designPreferences"
	CompetitorWebsites = "competitorWebsites"
	Budget             = "budget"
	Deadline           = "deadline"
	AdditionalComments = "additionalComments"
)

// RequiredFields must be non-empty before a submission is sent
var RequiredFields = []string{BusinessName, IndustryType, WebsitePurpose, Budget}

// Option is one choice of a select or multiselect question
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is an immutable question definition
type Question struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"question"`
	Kind        Kind     `json:"type"`
	Options     []Option `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// Multi reports whether the question collects a list of values
func (q Question) Multi() bool {
	return q.Kind == KindMultiSelect
}

// OptionLabel returns the label of the option with the given value, or the
// value itself when the question has no such option.
func (q Question) OptionLabel(value string) string {
	for _, o := range q.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

var catalog = []Question{
	{
		ID:          BusinessName,
		Prompt:      "¿Cuál es el nombre de tu negocio?",
		Kind:        KindText,
		Placeholder: "Ej.: Panadería Delicias Caseras",
	},
	{
		ID:          IndustryType,
		Prompt:      "¿En qué industria opera tu negocio?",
		Kind:        KindText,
		Placeholder: "Ej.: Alimentación, Tecnología, Salud",
	},
	{
		ID:     WebsitePurpose,
		Prompt: "¿Cuál es el propósito principal de tu sitio web?",
		Kind:   KindSelect,
		Options: []Option{
			{Value: "informar", Label: "Informar sobre productos o servicios"},
			{Value: "vender", Label: "Vender productos en línea"},
			{Value: "portafolio", Label: "Mostrar un portafolio de trabajos"},
			{Value: "captar", Label: "Captar clientes potenciales"},
			{Value: "blog", Label: "Publicar contenido (blog)"},
		},
	},
	{
		ID:          TargetAudience,
		Prompt:      "¿Quién es tu público objetivo?",
		Kind:        KindText,
		Placeholder: "Ej.: Jóvenes profesionales entre 25-35 años",
	},
	{
		ID:     DesiredFeatures,
		Prompt: "¿Qué características deseas en tu sitio web?",
		Kind:   KindMultiSelect,
		Options: []Option{
			{Value: "responsive", Label: "Diseño responsive"},
			{Value: "ecommerce", Label: "Tienda en línea"},
			{Value: "blog", Label: "Blog"},
			{Value: "contact", Label: "Formulario de contacto"},
			{Value: "gallery", Label: "Galería de imágenes"},
			{Value: "social", Label: "Integración con redes sociales"},
			{Value: "seo", Label: "Optimización para motores de búsqueda (SEO)"},
		},
	},
	{
		ID:     ContentManagement,
		Prompt: "¿Cómo planeas gestionar el contenido de tu sitio?",
		Kind:   KindSelect,
		Options: []Option{
			{Value: "cms", Label: "Sistema de gestión de contenidos (CMS)"},
			{Value: "static", Label: "Sitio web estático"},
			{Value: "developer", Label: "Actualización a través de un desarrollador"},
		},
	},
	{
		ID:          DesignPreferences,
		Prompt:      "¿Tienes preferencias de diseño específicas?",
		Kind:        KindText,
		Placeholder: "Ej.: Minimalista, Colorido, Profesional",
	},
	{
		ID:          CompetitorWebsites,
		Prompt:      "¿Puedes proporcionar ejemplos de sitios web de competidores o que te gusten?",
		Kind:        KindText,
		Placeholder: "Ej.: www.ejemplo1.com, www.ejemplo2.com",
	},
	{
		ID:     Budget,
		Prompt: "¿Cuál es tu presupuesto aproximado para este proyecto?",
		Kind:   KindSelect,
		Options: []Option{
			{Value: "low", Label: "Menos de $1,000"},
			{Value: "medium", Label: "$1,000 - $5,000"},
			{Value: "high", Label: "Más de $5,000"},
		},
	},
	{
		ID:          Deadline,
		Prompt:      "¿Cuál es tu fecha límite para lanzar el sitio web?",
		Kind:        KindText,
		Placeholder: "Ej.: En 3 meses, Para el 15 de diciembre",
	},
	{
		ID:          AdditionalComments,
		Prompt:      "¿Tienes algún comentario o requisito adicional?",
		Kind:        KindTextArea,
		Placeholder: "Escribe aquí cualquier información adicional...",
	},
}

// Catalog returns a copy of the web development questionnaire, in display order.
func Catalog() []Question {
	out := make([]Question, len(catalog))
	for i, q := range catalog {
		q.Options = append([]Option(nil), q.Options...)
		out[i] = q
	}
	return out
}
