package models

import "slices"

type ContentType string

const (
	ContentFeature           ContentType = "feature"
	ContentPerspective       ContentType = "perspective"
	ContentPractitionerGuide ContentType = "practitioner_guide"
	ContentSpotlight         ContentType = "spotlight"
	ContentCrossroads        ContentType = "the_crossroads"
	ContentResourceRoundup   ContentType = "resource_roundup"
)

var AllContentTypes = []ContentType{
	ContentFeature, ContentPerspective, ContentPractitionerGuide,
	ContentSpotlight, ContentCrossroads, ContentResourceRoundup,
}

func (c ContentType) Valid() bool { return slices.Contains(AllContentTypes, c) }

// WordRange is the target length of a generated article.
type WordRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var wordTargets = map[ContentType]WordRange{
	ContentFeature:           {1200, 2000},
	ContentPerspective:       {600, 900},
	ContentPractitionerGuide: {800, 1200},
	ContentSpotlight:         {1000, 1500},
	ContentCrossroads:        {400, 600},
	ContentResourceRoundup:   {300, 500},
}

// WordTarget returns the word range for c. Unknown types get the perspective range.
func (c ContentType) WordTarget() WordRange {
	if r, ok := wordTargets[c]; ok {
		return r
	}
	return wordTargets[ContentPerspective]
}

type Pillar string

const (
	PillarTechLeadership          Pillar = "tech_leadership"
	PillarDeliveryExcellence      Pillar = "delivery_excellence"
	PillarWorkforceTransformation Pillar = "workforce_transformation"
	PillarEmergingTalent          Pillar = "emerging_talent"
	PillarHumanSide               Pillar = "human_side"
)

var AllPillars = []Pillar{
	PillarTechLeadership, PillarDeliveryExcellence, PillarWorkforceTransformation,
	PillarEmergingTalent, PillarHumanSide,
}

func (p Pillar) Valid() bool { return slices.Contains(AllPillars, p) }

type ArticleStatus string

const (
	ArticleIdea      ArticleStatus = "idea"
	ArticleDrafting  ArticleStatus = "drafting"
	ArticleReview    ArticleStatus = "in_review"
	ArticleApproved  ArticleStatus = "approved"
	ArticleScheduled ArticleStatus = "scheduled"
	ArticlePublished ArticleStatus = "published"
)

var AllArticleStatuses = []ArticleStatus{
	ArticleIdea, ArticleDrafting, ArticleReview, ArticleApproved, ArticleScheduled, ArticlePublished,
}

func (s ArticleStatus) Valid() bool { return slices.Contains(AllArticleStatuses, s) }

type PostType string

const (
	PostHotTake      PostType = "hot_take"
	PostArticleShare PostType = "article_share"
	PostQuoteGraphic PostType = "quote_graphic"
	PostPoll         PostType = "poll"
	PostThread       PostType = "thread"
)

var AllPostTypes = []PostType{PostHotTake, PostArticleShare, PostQuoteGraphic, PostPoll, PostThread}

// DerivativePostTypes are the post types produced from a single article, in order.
var DerivativePostTypes = []PostType{PostHotTake, PostArticleShare, PostQuoteGraphic}

func (t PostType) Valid() bool { return slices.Contains(AllPostTypes, t) }

type PostStatus string

const (
	PostDrafted   PostStatus = "draft"
	PostApproved  PostStatus = "approved"
	PostScheduled PostStatus = "scheduled"
	PostPosted    PostStatus = "posted"
)

var AllPostStatuses = []PostStatus{PostDrafted, PostApproved, PostScheduled, PostPosted}

func (s PostStatus) Valid() bool { return slices.Contains(AllPostStatuses, s) }

type TopicSource string

const (
	SourceAISuggested TopicSource = "ai_suggested"
	SourceManual      TopicSource = "manual"
	SourceNews        TopicSource = "news"
	SourceReference   TopicSource = "reference_material"
)

var AllTopicSources = []TopicSource{SourceAISuggested, SourceManual, SourceNews, SourceReference}

func (s TopicSource) Valid() bool { return slices.Contains(AllTopicSources, s) }

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var AllPriorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

func (p Priority) Valid() bool { return slices.Contains(AllPriorities, p) }

type Timeliness string

const (
	TimelinessEvergreen Timeliness = "evergreen"
	TimelinessTimely    Timeliness = "timely"
	TimelinessDated     Timeliness = "dated"
)

var AllTimeliness = []Timeliness{TimelinessEvergreen, TimelinessTimely, TimelinessDated}

func (t Timeliness) Valid() bool { return slices.Contains(AllTimeliness, t) }

type TopicStatus string

const (
	TopicNew      TopicStatus = "new"
	TopicApproved TopicStatus = "approved"
	TopicAssigned TopicStatus = "assigned"
	TopicUsed     TopicStatus = "used"
	TopicRejected TopicStatus = "rejected"
)

var AllTopicStatuses = []TopicStatus{TopicNew, TopicApproved, TopicAssigned, TopicUsed, TopicRejected}

func (s TopicStatus) Valid() bool { return slices.Contains(AllTopicStatuses, s) }

type BrandType string

const (
	BrandService   BrandType = "service"
	BrandPersonal  BrandType = "personal"
	BrandNonprofit BrandType = "nonprofit"
	BrandProduct   BrandType = "product"
)

var AllBrandTypes = []BrandType{BrandService, BrandPersonal, BrandNonprofit, BrandProduct}

func (t BrandType) Valid() bool { return slices.Contains(AllBrandTypes, t) }

type IssueStatus string

const (
	IssuePlanning     IssueStatus = "planning"
	IssueInProduction IssueStatus = "in_production"
	IssueReady        IssueStatus = "ready"
	IssuePublished    IssueStatus = "published"
)

var AllIssueStatuses = []IssueStatus{IssuePlanning, IssueInProduction, IssueReady, IssuePublished}

func (s IssueStatus) Valid() bool { return slices.Contains(AllIssueStatuses, s) }
