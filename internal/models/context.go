package models

// UserContext describes the learner a request is adapted for. Fields arrive
// from the client and are filled with defaults before the pipeline runs.
type UserContext struct {
	ID                  string            `json:"id,omitempty"`
	Name                string            `json:"name,omitempty"`
	Grade               int               `json:"grade"`
	PreferredLanguage   string            `json:"preferred_language"`
	Region              string            `json:"region"`
	LearningStyle       string            `json:"learning_style"`
	CulturalPreferences map[string]string `json:"cultural_preferences"`
	LocalExamples       bool              `json:"local_examples"`
}

// DeviceContext carries what is known about the requesting device. LocaleHint
// is derived by the enrichment pipeline when the client does not supply one.
type DeviceContext struct {
	UserAgent  string `json:"user_agent,omitempty"`
	IsMobile   bool   `json:"is_mobile"`
	LocaleHint string `json:"locale_hint,omitempty"`
}

// ContentContext describes the lesson being adapted.
type ContentContext struct {
	Subject    string   `json:"subject"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags,omitempty"`
	// CulturalContext holds a serialized snapshot of the resolved cultural
	// profile. Once set it is never overwritten for the life of the request.
	CulturalContext string `json:"cultural_context,omitempty"`
	AdaptationLevel string `json:"adaptation_level"`
}

// Context is the per-request aggregate threaded through every pipeline stage.
// Each incoming request gets a fresh instance; nothing is shared across
// requests.
type Context struct {
	User    UserContext    `json:"user"`
	Device  DeviceContext  `json:"device"`
	Content ContentContext `json:"content"`
}

// Valid difficulty and adaptation levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	AdaptationNone   = "none"
	AdaptationLow    = "low"
	AdaptationMedium = "medium"
	AdaptationHigh   = "high"
)

// Defaults applied by ApplyDefaults.
const (
	DefaultGrade           = 5
	DefaultLanguage        = "en"
	DefaultRegion          = "Punjab"
	DefaultLearningStyle   = "auditory"
	DefaultSubject         = "General"
	DefaultAdaptationLevel = AdaptationHigh
)

// DefaultContext returns a Context carrying every documented default. Request
// decoding starts from this value so that fields omitted from the JSON body
// keep their defaults while explicit values, including false booleans,
// survive.
func DefaultContext() Context {
	return Context{
		User: UserContext{
			Grade:               DefaultGrade,
			PreferredLanguage:   DefaultLanguage,
			Region:              DefaultRegion,
			LearningStyle:       DefaultLearningStyle,
			CulturalPreferences: map[string]string{},
			LocalExamples:       true,
		},
		Content: ContentContext{
			Subject:         DefaultSubject,
			Difficulty:      DifficultyMedium,
			AdaptationLevel: DefaultAdaptationLevel,
		},
	}
}

// ApplyDefaults fills unset fields with the documented defaults. A JSON body
// that omits the user, device or content blocks entirely still yields a
// usable Context. Grade 0 is treated as unset: the service has no grade-zero
// learners, so an explicit 0 is indistinguishable from an omitted field and
// both resolve to the default.
func (c *Context) ApplyDefaults() {
	if c.User.Grade <= 0 {
		c.User.Grade = DefaultGrade
	}
	if c.User.PreferredLanguage == "" {
		c.User.PreferredLanguage = DefaultLanguage
	}
	if c.User.Region == "" {
		c.User.Region = DefaultRegion
	}
	if c.User.LearningStyle == "" {
		c.User.LearningStyle = DefaultLearningStyle
	}
	if c.User.CulturalPreferences == nil {
		c.User.CulturalPreferences = map[string]string{}
	}
	if c.Content.Subject == "" {
		c.Content.Subject = DefaultSubject
	}
	if c.Content.Difficulty == "" {
		c.Content.Difficulty = DifficultyMedium
	}
	if c.Content.AdaptationLevel == "" {
		c.Content.AdaptationLevel = DefaultAdaptationLevel
	}
}

// ValidDifficulty reports whether d is one of the accepted difficulty values.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
