package models

// AdaptRequest is the body of POST /adapt and POST /cultural-adapt.
type AdaptRequest struct {
	LessonContent string  `json:"lesson_content"`
	Context       Context `json:"context"`
}

// AdaptResponse is returned from both adaptation endpoints. Cached is always
// false on the generative path; there is no response cache.
type AdaptResponse struct {
	AdaptedText          string  `json:"adapted_text"`
	Cached               bool    `json:"cached"`
	PersonalizationScore float64 `json:"personalization_score"`
	PersonalizationLabel string  `json:"personalization_label"`
	Language             string  `json:"language"`
	Region               string  `json:"region"`
	Grade                int     `json:"grade"`
}

// TranslateRequest is the body of POST /translate.
type TranslateRequest struct {
	Text               string   `json:"text"`
	TargetLanguage     string   `json:"target_language"`
	SourceLanguage     string   `json:"source_language,omitempty"`
	Context            *Context `json:"context,omitempty"`
	PreserveFormatting bool     `json:"preserve_formatting"`
}

// TranslateResponse reports the translation outcome. QualityScore is a
// length-ratio heuristic, not a fidelity guarantee; ContextPreserved is false
// whenever the service fell back to the original text.
type TranslateResponse struct {
	TranslatedText   string  `json:"translated_text"`
	SourceLanguage   string  `json:"source_language"`
	TargetLanguage   string  `json:"target_language"`
	QualityScore     float64 `json:"quality_score"`
	ContextPreserved bool    `json:"context_preserved"`
}
