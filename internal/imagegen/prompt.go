package imagegen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shubh-37/inflections-studio/internal/models"
)

type Style string

const (
	StyleProfessional Style = "professional"
	StyleAbstract     Style = "abstract"
	StyleEditorial    Style = "editorial"
)

var AllStyles = []Style{StyleProfessional, StyleAbstract, StyleEditorial}

func (s Style) Valid() bool { return slices.Contains(AllStyles, s) }

var styleGuides = map[Style]string{
	StyleProfessional: "professional photography style, clean lighting, corporate aesthetic, high-end editorial look",
	StyleAbstract:     "abstract conceptual art, modern graphic design, bold colors, minimalist composition",
	StyleEditorial:    "editorial magazine photography, sophisticated, thoughtful composition, natural lighting",
}

const technicalConstraints = "No text or words in the image. High quality, 16:9 aspect ratio."

// Request describes the featured image for an article. Description falls
// back to ArticleTitle when empty.
type Request struct {
	Description  string `json:"prompt"`
	ArticleTitle string `json:"articleTitle"`
	BrandName    string `json:"brandName"`
	Style        Style  `json:"style,omitempty"`
	Wait         bool   `json:"wait,omitempty"`
}

// BuildPrompt assembles the provider prompt. The same request always yields
// the same prompt.
func BuildPrompt(req Request) (string, error) {
	style := req.Style
	if style == "" {
		style = StyleEditorial
	}
	if !style.Valid() {
		return "", &models.ValidationError{Field: "style", Message: fmt.Sprintf("unknown value %q", style)}
	}

	subject := req.Description
	if strings.TrimSpace(subject) == "" {
		subject = req.ArticleTitle
	}
	if strings.TrimSpace(subject) == "" {
		return "", models.Required("prompt")
	}

	return fmt.Sprintf("%s. %s. %s", subject, styleGuides[style], technicalConstraints), nil
}
