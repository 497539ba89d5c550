package models

// ArticleRequest is the input to article generation.
type ArticleRequest struct {
	BrandID           string      `json:"brandId"`
	Pillar            Pillar      `json:"pillar"`
	ContentType       ContentType `json:"contentType"`
	Topic             string      `json:"topic"`
	Angle             string      `json:"angle,omitempty"`
	ReferenceURL      string      `json:"referenceUrl,omitempty"`
	AdditionalContext string      `json:"additionalContext,omitempty"`
	TargetWordCount   int         `json:"targetWordCount,omitempty"`
}

func (r ArticleRequest) Validate() error {
	switch {
	case r.BrandID == "":
		return Required("brandId")
	case r.Topic == "":
		return Required("topic")
	case !r.ContentType.Valid():
		return invalid("contentType", string(r.ContentType))
	case !r.Pillar.Valid():
		return invalid("pillar", string(r.Pillar))
	}
	return nil
}

// GeneratedArticle is the structured article the model must return.
type GeneratedArticle struct {
	Title                string                `json:"title"`
	Content              string                `json:"content"`
	Excerpt              string                `json:"excerpt"`
	MetaDescription      string                `json:"metaDescription"`
	SuggestedTags        []string              `json:"suggestedTags"`
	CrossBrandSuggestion *CrossBrandSuggestion `json:"crossBrandSuggestion,omitempty"`
}

type CrossBrandSuggestion struct {
	BrandID string `json:"brandId"`
	CTAText string `json:"ctaText"`
}

// LinkedInRequest asks for the derivative posts of one article.
type LinkedInRequest struct {
	BrandID        string `json:"brandId"`
	ArticleTitle   string `json:"articleTitle"`
	ArticleContent string `json:"articleContent"`
}

func (r LinkedInRequest) Validate() error {
	switch {
	case r.BrandID == "":
		return Required("brandId")
	case r.ArticleTitle == "":
		return Required("articleTitle")
	case r.ArticleContent == "":
		return Required("articleContent")
	}
	return nil
}

type GeneratedPost struct {
	Type     PostType `json:"type"`
	Content  string   `json:"content"`
	Hashtags []string `json:"hashtags"`
}

// TopicIdeasRequest carries brand context either by BrandID or explicitly.
// Explicit fields win over the looked-up brand.
type TopicIdeasRequest struct {
	BrandID           string `json:"brandId,omitempty"`
	BrandName         string `json:"brandName,omitempty"`
	BrandVoice        string `json:"brandVoice,omitempty"`
	TargetAudience    string `json:"targetAudience,omitempty"`
	Pillar            Pillar `json:"pillar,omitempty"`
	PillarDescription string `json:"pillarDescription,omitempty"`
	Theme             string `json:"theme,omitempty"`
	NewsURL           string `json:"newsUrl,omitempty"`
	Count             int    `json:"count,omitempty"`
}

func (r TopicIdeasRequest) Validate() error {
	switch {
	case r.BrandID == "" && r.BrandName == "":
		return Required("brandId")
	case r.Pillar != "" && !r.Pillar.Valid():
		return invalid("pillar", string(r.Pillar))
	case r.Count < 0:
		return &ValidationError{Field: "count", Message: "must not be negative"}
	}
	return nil
}

type TopicIdea struct {
	Topic       string `json:"topic"`
	Description string `json:"description"`
	Timeliness  string `json:"timeliness,omitempty"`
}

// RefineRequest asks the model to revise a piece of content.
type RefineRequest struct {
	BrandID     string `json:"brandId"`
	Content     string `json:"content"`
	Instruction string `json:"instruction"`
}

func (r RefineRequest) Validate() error {
	switch {
	case r.BrandID == "":
		return Required("brandId")
	case r.Content == "":
		return Required("content")
	case r.Instruction == "":
		return Required("instruction")
	}
	return nil
}

// PushRequest creates one article and any number of posts linked to it.
type PushRequest struct {
	Article ArticleDraft `json:"article"`
	Posts   []PostDraft  `json:"posts,omitempty"`
}

type PushResult struct {
	ArticleID string        `json:"articleId"`
	PostIDs   []string      `json:"postIds"`
	Failed    []PushFailure `json:"failed,omitempty"`
}

// PushFailure reports a post that could not be created. Index is its
// position in the request.
type PushFailure struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}
