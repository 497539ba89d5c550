package agents

import (
	"fmt"
	"strings"

	"github.com/shubh-37/inflections-studio/internal/codec"
	"github.com/shubh-37/inflections-studio/internal/models"
)

const (
	articleMaxTokens  = 4096
	linkedInMaxTokens = 2048
	topicsMaxTokens   = 2000
	refineMaxTokens   = 4096
)

// House voice used when a brand's profile leaves a field empty.
const (
	defaultTone          = "clear, confident, human-first"
	defaultLinkedInTone  = "clear, confident, approachable"
	defaultPersonality   = "A trusted strategic partner who simplifies complexity"
	defaultPreferred     = "guide, empower, clarity, strategic, dependable"
	defaultAvoid         = "synergy, leverage, circle back, low-hanging fruit"
	defaultSentenceStyle = "Mix of short punchy sentences and flowing explanations. Lead with value."
	defaultAudience      = "IT leaders, project managers, and technology professionals"
)

var contentTypeNotes = map[models.ContentType]string{
	models.ContentFeature:           "This is a deep dive with research and examples. Be thorough but engaging.",
	models.ContentPerspective:       "This is an opinion piece or lessons learned. Be personal and opinionated.",
	models.ContentPractitionerGuide: "This is a how-to guide. Be practical with actionable steps.",
	models.ContentSpotlight:         "This can be Q&A or profile format. Be conversational.",
	models.ContentCrossroads:        "This is a quick take on news/trends. Be punchy and timely.",
	models.ContentResourceRoundup:   "This is a curated list with commentary. Be helpful and concise.",
}

// pillarLabels are the editorial names used in prompts. They differ from
// the store's select options for tech leadership.
var pillarLabels = map[models.Pillar]string{
	models.PillarTechLeadership:          "Technology Leadership",
	models.PillarDeliveryExcellence:      "Delivery Excellence",
	models.PillarWorkforceTransformation: "Workforce Transformation",
	models.PillarEmergingTalent:          "Emerging Talent",
	models.PillarHumanSide:               "The Human Side",
}

// PillarDescriptions is the editorial focus of each pillar.
var PillarDescriptions = map[models.Pillar]string{
	models.PillarTechLeadership:          "IT strategy, digital transformation, CIO topics",
	models.PillarDeliveryExcellence:      "PMO, project management, execution",
	models.PillarWorkforceTransformation: "Hiring, talent, career development",
	models.PillarEmergingTalent:          "Youth workforce, new professionals, AI skills",
	models.PillarHumanSide:               "Leadership, culture, work-life topics",
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func orString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func buildArticleSystemPrompt(brand *models.Brand, contentType models.ContentType, targetWords int) string {
	vp := brand.VoiceProfile
	words := contentType.WordTarget()
	target := fmt.Sprintf("%d-%d words", words.Min, words.Max)
	if targetWords > 0 {
		target = fmt.Sprintf("about %d words", targetWords)
	}

	var b strings.Builder
	b.WriteString(`You are a content writer for Inflections, a digital publication covering technology leadership, workforce transformation, and human-centered innovation. The publication is led by Jerri Bland, an experienced IT leader and consultant with 20 years in higher education, healthcare, and government IT.

WRITING GUIDELINES:
- Write in a warm, human voice that sounds like an experienced practitioner sharing insights
- Avoid corporate jargon and buzzwords (no "synergy," "leverage," "circle back," "low-hanging fruit")
- Lead with practical value, not theory
- Use real-world examples and scenarios
- Include actionable takeaways
- Keep paragraphs to 3-5 sentences max
- Use markdown headers (##) to break up content
- Write for smart professionals who are busy

`)
	fmt.Fprintf(&b, "CURRENT BRAND: %s\n\n", brand.Name)
	b.WriteString("VOICE PROFILE:\n")
	fmt.Fprintf(&b, "- Tone: %s\n", joinOr(vp.Tone, defaultTone))
	fmt.Fprintf(&b, "- Personality: %s\n", orString(vp.Personality, defaultPersonality))
	fmt.Fprintf(&b, "- Preferred vocabulary: %s\n", joinOr(vp.Vocabulary.Preferred, defaultPreferred))
	fmt.Fprintf(&b, "- Avoid: %s\n", joinOr(vp.Vocabulary.Avoid, defaultAvoid))
	fmt.Fprintf(&b, "- Style: %s\n", orString(vp.SentenceStyle, defaultSentenceStyle))
	if len(vp.ExamplePhrases) > 0 {
		fmt.Fprintf(&b, "- Example phrases: %s\n", strings.Join(vp.ExamplePhrases, " | "))
	}
	fmt.Fprintf(&b, "\nTARGET AUDIENCE: %s\n\n", orString(brand.TargetAudience, defaultAudience))
	fmt.Fprintf(&b, "CONTENT TYPE: %s\n", codec.ContentType.Encode(contentType))
	fmt.Fprintf(&b, "Target word count: %s\n\n", target)
	if note := contentTypeNotes[contentType]; note != "" {
		b.WriteString(note + "\n\n")
	}
	b.WriteString(`CROSS-BRAND INTEGRATION:
When naturally relevant (never forced), you may include ONE soft reference to related services. Position it as helpful context, not advertisement.

OUTPUT FORMAT:
Return your response as JSON with this structure:
{
  "title": "Compelling, specific headline (not clickbait)",
  "content": "Full article with markdown formatting",
  "excerpt": "2-3 sentence summary for previews",
  "metaDescription": "Under 155 characters for SEO",
  "suggestedTags": ["tag1", "tag2", "tag3"],
  "crossBrandSuggestion": {
    "brandId": "optional brand ID if relevant",
    "ctaText": "soft call-to-action text"
  }
}`)
	return b.String()
}

func buildArticleUserPrompt(req models.ArticleRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write an article about: %s\n\n", req.Topic)
	if req.Angle != "" {
		fmt.Fprintf(&b, "Angle/Hook: %s\n", req.Angle)
	}
	if req.ReferenceURL != "" {
		fmt.Fprintf(&b, "Reference URL for context: %s\n", req.ReferenceURL)
	}
	if req.AdditionalContext != "" {
		fmt.Fprintf(&b, "Additional context: %s\n", req.AdditionalContext)
	}
	fmt.Fprintf(&b, "\nPillar: %s\n\n", pillarLabels[req.Pillar])
	b.WriteString("Remember to return valid JSON only.")
	return b.String()
}

func buildLinkedInSystemPrompt(brand *models.Brand) string {
	var b strings.Builder
	b.WriteString("You are creating LinkedIn content for Inflections magazine. The posts should sound like Jerri Bland - an experienced IT leader who is warm, direct, and genuinely helpful.\n\n")
	fmt.Fprintf(&b, "BRAND: %s\n", brand.Name)
	fmt.Fprintf(&b, "VOICE: %s\n\n", joinOr(brand.VoiceProfile.Tone, defaultLinkedInTone))
	b.WriteString(`LINKEDIN BEST PRACTICES:
- First line must hook attention (question, bold statement, relatable scenario)
- Deliver value IN the post, not just "click to learn more"
- Use line breaks for readability
- Keep under 1,300 characters for optimal engagement
- End with soft CTA or thought-provoking question
- Hashtags: 3-5 max, placed at end

AVOID:
- "I'm excited to announce..."
- "Check out my latest blog post..."
- Starting with "In today's fast-paced world..."
- Excessive emojis
- Obviously AI-generated phrases
- Sounding like a press release

POST TYPES TO GENERATE:
1. Hot Take - Strong opinion on the topic, drives discussion
2. Article Share - Highlights key insight, teases the full piece
3. Quote/Insight - One powerful idea from the article, simple and shareable

OUTPUT FORMAT:
Return your response as JSON:
{
  "posts": [
    {"type": "hot_take", "content": "The post text with line breaks", "hashtags": ["hashtag1", "hashtag2"]},
    {"type": "article_share", "content": "...", "hashtags": ["..."]},
    {"type": "quote_graphic", "content": "...", "hashtags": ["..."]}
  ]
}`)
	return b.String()
}

func buildLinkedInUserPrompt(req models.LinkedInRequest) string {
	return fmt.Sprintf(`Based on this article, create LinkedIn posts:

ARTICLE TITLE: %s

ARTICLE CONTENT:
%s

Generate 3 different LinkedIn posts (hot_take, article_share, and quote_graphic types).

Remember to return valid JSON only.`, req.ArticleTitle, req.ArticleContent)
}

// topicContext is the resolved brand context for topic ideation.
type topicContext struct {
	BrandName         string
	BrandVoice        string
	TargetAudience    string
	Pillar            string
	PillarDescription string
}

func buildTopicsPrompt(tc topicContext, count int, theme, newsURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are a content strategist helping generate article topic ideas for a business publication.

Brand: %s
Brand Voice: %s
Target Audience: %s
Content Pillar: %s
Pillar Focus: %s
`, tc.BrandName, tc.BrandVoice, tc.TargetAudience, tc.Pillar, tc.PillarDescription)
	if theme != "" {
		fmt.Fprintf(&b, "Theme direction: %s\n", theme)
	}
	if newsURL != "" {
		fmt.Fprintf(&b, "Consider this news/reference: %s\n", newsURL)
	}

	fmt.Fprintf(&b, `
Generate %d compelling, specific article topic ideas that:
1. Are timely and relevant to current trends in %s
2. Provide actionable value to %s
3. Align with the brand voice: %s
4. Are suitable for business/professional publication
5. Address real pain points or opportunities

For each topic, provide:
- A specific, engaging topic title (not generic)
- A brief angle/hook (1-2 sentences)
- Why it matters now (timeliness)

Return ONLY a JSON array with this structure:
[
  {
    "topic": "Specific topic title here",
    "description": "Brief angle or hook for the article",
    "timeliness": "Why this topic matters right now"
  }
]

Make topics specific and actionable, not generic. Focus on emerging trends, common challenges, or underexplored angles.`,
		count, tc.Pillar, tc.TargetAudience, tc.BrandVoice)
	return b.String()
}

func buildRefineSystemPrompt(brand *models.Brand) string {
	return fmt.Sprintf(`You are an editor for Inflections magazine. Make the requested changes while maintaining the brand voice.

BRAND: %s
VOICE: %s

Return only the revised content, no explanations.`, brand.Name, joinOr(brand.VoiceProfile.Tone, defaultTone))
}

func buildRefineUserPrompt(req models.RefineRequest) string {
	return fmt.Sprintf("INSTRUCTION: %s\n\nCONTENT TO EDIT:\n%s", req.Instruction, req.Content)
}
