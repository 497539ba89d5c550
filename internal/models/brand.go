package models

// Brand is one of the publication's brands. Brands are managed directly in
// the record store, this service only reads them.
type Brand struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	ShortName       string            `json:"shortName"`
	BrandType       BrandType         `json:"brandType"`
	WebsiteURL      string            `json:"websiteUrl,omitempty"`
	LinkedInPageURL string            `json:"linkedInPageUrl,omitempty"`
	LinkedInPageID  string            `json:"linkedInPageId,omitempty"`
	PrimaryColor    string            `json:"primaryColor"`
	VoiceSummary    string            `json:"voiceSummary"`
	VoiceProfile    VoiceProfile      `json:"voiceProfile"`
	TargetAudience  string            `json:"targetAudience"`
	ContentThemes   []string          `json:"contentThemes"`
	CrossBrandCTAs  map[string]string `json:"crossBrandCTAs"`
	LogoURL         string            `json:"logoUrl,omitempty"`
	IsActive        bool              `json:"isActive"`
}

// VoiceProfile is stored as a JSON document on the brand record. Every field
// may be absent; prompt builders substitute house defaults.
type VoiceProfile struct {
	Tone                  []string              `json:"tone,omitempty"`
	Personality           string                `json:"personality,omitempty"`
	Vocabulary            Vocabulary            `json:"vocabulary"`
	SentenceStyle         string                `json:"sentenceStyle,omitempty"`
	FormattingPreferences FormattingPreferences `json:"formattingPreferences"`
	ExamplePhrases        []string              `json:"examplePhrases,omitempty"`
}

type Vocabulary struct {
	Preferred []string `json:"preferred,omitempty"`
	Avoid     []string `json:"avoid,omitempty"`
}

type FormattingPreferences struct {
	UseHeaders      bool   `json:"useHeaders"`
	UseBullets      string `json:"useBullets,omitempty"`      // "freely", "sparingly", "never"
	ParagraphLength string `json:"paragraphLength,omitempty"` // "short", "medium", "long"
	CTAStyle        string `json:"ctaStyle,omitempty"`
}
