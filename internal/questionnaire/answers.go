package questionnaire

import "strings"

// Answer is either a single string or, for multiselect questions, a list of strings.
type Answer struct {
	text  string
	items []string
	multi bool
}

// Text returns a single-value answer
func Text(s string) Answer {
	return Answer{text: s}
}

// List returns a multi-value answer. A nil list is stored as an empty one.
func List(items ...string) Answer {
	cp := make([]string, len(items))
	copy(cp, items)
	return Answer{items: cp, multi: true}
}

// Multi reports whether the answer is a list
func (a Answer) Multi() bool { return a.multi }

// String returns the single value; for a list it returns the values joined by ", ".
func (a Answer) String() string {
	if a.multi {
		return strings.Join(a.items, ", ")
	}
	return a.text
}

// Items returns a copy of the list values; a single value yields nil.
func (a Answer) Items() []string {
	if !a.multi {
		return nil
	}
	cp := make([]string, len(a.items))
	copy(cp, a.items)
	return cp
}

// Empty reports whether the answer carries no value
func (a Answer) Empty() bool {
	if a.multi {
		return len(a.items) == 0
	}
	return strings.TrimSpace(a.text) == ""
}

// Contains reports whether a list answer holds value
func (a Answer) Contains(value string) bool {
	for _, v := range a.items {
		if v == value {
			return true
		}
	}
	return false
}

// Toggle returns a list answer with value added when absent or removed when present.
// Added values go to the end, keeping selection order.
func (a Answer) Toggle(value string) Answer {
	if a.Contains(value) {
		out := make([]string, 0, len(a.items))
		for _, v := range a.items {
			if v != value {
				out = append(out, v)
			}
		}
		return List(out...)
	}
	return List(append(a.Items(), value)...)
}

// AnswerSet maps question IDs to answers
type AnswerSet map[string]Answer

// Submission is the wire form of an AnswerSet, as posted to /api/send-email.
type Submission struct {
	BusinessName       string   `json:"businessName"`
	IndustryType       string   `json:"industryType"`
	WebsitePurpose     string   `json:"websitePurpose"`
	TargetAudience     string   `json:"targetAudience"`
	DesiredFeatures    []string `json:"desiredFeatures"`
	ContentManagement  string   `json:"contentManagement"`
	DesignPreferences  string   `json:"designPreferences"`
	CompetitorWebsites string   `json:"competitorWebsites"`
	Budget             string   `json:"budget"`
	Deadline           string   `json:"deadline"`
	AdditionalComments string   `json:"additionalComments"`
}

// Submission converts the set to its wire form. Missing entries become empty values.
func (s AnswerSet) Submission() Submission {
	features := s[DesiredFeatures].Items()
	if features == nil {
		features = []string{}
	}
	return Submission{
		BusinessName:       s[BusinessName].String(),
		IndustryType:       s[IndustryType].String(),
		WebsitePurpose:     s[WebsitePurpose].String(),
		TargetAudience:     s[TargetAudience].String(),
		DesiredFeatures:    features,
		ContentManagement:  s[ContentManagement].String(),
		DesignPreferences:  s[DesignPreferences].String(),
		CompetitorWebsites: s[CompetitorWebsites].String(),
		Budget:             s[Budget].String(),
		Deadline:           s[Deadline].String(),
		AdditionalComments: s[AdditionalComments].String(),
	}
}

// Missing returns the IDs among fields whose answer is empty, in the given order.
func (s AnswerSet) Missing(fields []string) []string {
	var missing []string
	for _, id := range fields {
		if s[id].Empty() {
			missing = append(missing, id)
		}
	}
	return missing
}
