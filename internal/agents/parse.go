package agents

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shubh-37/inflections-studio/internal/models"
)

// fencePattern spans from the first fence to the last one, so inner fences
// such as code samples inside an article body stay in the capture.
var fencePattern = regexp.MustCompile("```(?:json)?[ \\t]*\\r?\\n?([\\s\\S]*)```")

// stripFence returns the body of a reply wrapped in a code fence, or the
// trimmed reply when it is not wrapped.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if m := fencePattern.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}

// decodeReply unmarshals a model reply into dst, first as plain JSON and
// then with a surrounding fence removed. Failures become a ParseError that
// keeps the unmodified reply.
func decodeReply(flow, raw string, dst any) error {
	trimmed := strings.TrimSpace(raw)
	if json.Valid([]byte(trimmed)) {
		if err := json.Unmarshal([]byte(trimmed), dst); err != nil {
			return &models.ParseError{Flow: flow, Raw: raw, Reason: err.Error()}
		}
		return nil
	}
	if err := json.Unmarshal([]byte(stripFence(trimmed)), dst); err != nil {
		return &models.ParseError{Flow: flow, Raw: raw, Reason: err.Error()}
	}
	return nil
}

type articleReply struct {
	Title                *string                      `json:"title"`
	Content              *string                      `json:"content"`
	Excerpt              *string                      `json:"excerpt"`
	MetaDescription      *string                      `json:"metaDescription"`
	SuggestedTags        *[]string                    `json:"suggestedTags"`
	CrossBrandSuggestion *models.CrossBrandSuggestion `json:"crossBrandSuggestion"`
}

// parseArticle enforces the article contract: every field but the
// cross-brand suggestion must be present.
func parseArticle(raw string) (*models.GeneratedArticle, error) {
	var reply articleReply
	if err := decodeReply("article", raw, &reply); err != nil {
		return nil, err
	}

	missing := func(field string) error {
		return &models.ParseError{Flow: "article", Raw: raw, Reason: "missing " + field}
	}
	switch {
	case reply.Title == nil || *reply.Title == "":
		return nil, missing("title")
	case reply.Content == nil || *reply.Content == "":
		return nil, missing("content")
	case reply.Excerpt == nil:
		return nil, missing("excerpt")
	case reply.MetaDescription == nil:
		return nil, missing("metaDescription")
	case reply.SuggestedTags == nil:
		return nil, missing("suggestedTags")
	}

	article := &models.GeneratedArticle{
		Title:           *reply.Title,
		Content:         *reply.Content,
		Excerpt:         *reply.Excerpt,
		MetaDescription: *reply.MetaDescription,
		SuggestedTags:   *reply.SuggestedTags,
	}
	// an empty suggestion object means the model had nothing to suggest
	if s := reply.CrossBrandSuggestion; s != nil && (s.BrandID != "" || s.CTAText != "") {
		article.CrossBrandSuggestion = s
	}
	return article, nil
}

type linkedInReply struct {
	Posts *[]struct {
		Type     models.PostType `json:"type"`
		Content  string          `json:"content"`
		Hashtags []string        `json:"hashtags"`
	} `json:"posts"`
}

// parseLinkedIn requires exactly one post of each derivative type and
// returns them in canonical order.
func parseLinkedIn(raw string) ([]models.GeneratedPost, error) {
	var reply linkedInReply
	if err := decodeReply("linkedin", raw, &reply); err != nil {
		return nil, err
	}
	fail := func(reason string) error {
		return &models.ParseError{Flow: "linkedin", Raw: raw, Reason: reason}
	}
	if reply.Posts == nil {
		return nil, fail("missing posts array")
	}
	if len(*reply.Posts) != len(models.DerivativePostTypes) {
		return nil, fail("expected 3 posts")
	}

	byType := make(map[models.PostType]models.GeneratedPost, len(*reply.Posts))
	for _, p := range *reply.Posts {
		if _, dup := byType[p.Type]; dup {
			return nil, fail("duplicate post type " + string(p.Type))
		}
		if strings.TrimSpace(p.Content) == "" {
			return nil, fail("empty content for " + string(p.Type))
		}
		hashtags := p.Hashtags
		if hashtags == nil {
			hashtags = []string{}
		}
		byType[p.Type] = models.GeneratedPost{Type: p.Type, Content: p.Content, Hashtags: hashtags}
	}

	posts := make([]models.GeneratedPost, 0, len(models.DerivativePostTypes))
	for _, t := range models.DerivativePostTypes {
		p, ok := byType[t]
		if !ok {
			return nil, fail("missing post type " + string(t))
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// parseTopics accepts an array of any length. Items without a topic are dropped.
func parseTopics(raw string) ([]models.TopicIdea, error) {
	var items []models.TopicIdea
	if err := decodeReply("topics", raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, &models.ParseError{Flow: "topics", Raw: raw, Reason: "expected an array"}
	}

	ideas := make([]models.TopicIdea, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Topic) == "" {
			continue
		}
		ideas = append(ideas, it)
	}
	return ideas, nil
}
