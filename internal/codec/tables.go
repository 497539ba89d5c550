package codec

import "github.com/shubh-37/inflections-studio/internal/models"

var ContentType = NewTable("Article.contentType", models.AllContentTypes, map[models.ContentType]string{
	models.ContentFeature:           "Feature",
	models.ContentPerspective:       "Perspective",
	models.ContentPractitionerGuide: "Practitioner Guide",
	models.ContentSpotlight:         "Spotlight",
	models.ContentCrossroads:        "The Crossroads",
	models.ContentResourceRoundup:   "Resource Roundup",
}, models.ContentPerspective)

// Pillar is shared by articles and topics.
var Pillar = NewTable("Article.pillar", models.AllPillars, map[models.Pillar]string{
	models.PillarTechLeadership:          "Tech Leadership",
	models.PillarDeliveryExcellence:      "Delivery Excellence",
	models.PillarWorkforceTransformation: "Workforce Transformation",
	models.PillarEmergingTalent:          "Emerging Talent",
	models.PillarHumanSide:               "The Human Side",
}, models.PillarTechLeadership)

var ArticleStatus = NewTable("Article.status", models.AllArticleStatuses, map[models.ArticleStatus]string{
	models.ArticleIdea:      "Idea",
	models.ArticleDrafting:  "Drafting",
	models.ArticleReview:    "In Review",
	models.ArticleApproved:  "Approved",
	models.ArticleScheduled: "Scheduled",
	models.ArticlePublished: "Published",
}, models.ArticleIdea)

var PostType = NewTable("LinkedInPost.postType", models.AllPostTypes, map[models.PostType]string{
	models.PostHotTake:      "Hot Take",
	models.PostArticleShare: "Article Share",
	models.PostQuoteGraphic: "Quote Graphic",
	models.PostPoll:         "Poll",
	models.PostThread:       "Thread",
}, models.PostArticleShare)

var PostStatus = NewTable("LinkedInPost.status", models.AllPostStatuses, map[models.PostStatus]string{
	models.PostDrafted:   "Draft",
	models.PostApproved:  "Approved",
	models.PostScheduled: "Scheduled",
	models.PostPosted:    "Posted",
}, models.PostDrafted)

var TopicSource = NewTable("Topic.source", models.AllTopicSources, map[models.TopicSource]string{
	models.SourceAISuggested: "AI Suggested",
	models.SourceManual:      "Manual",
	models.SourceNews:        "News",
	models.SourceReference:   "Reference Material",
}, models.SourceManual)

var Priority = NewTable("Topic.priority", models.AllPriorities, map[models.Priority]string{
	models.PriorityHigh:   "High",
	models.PriorityMedium: "Medium",
	models.PriorityLow:    "Low",
}, models.PriorityMedium)

var Timeliness = NewTable("Topic.timeliness", models.AllTimeliness, map[models.Timeliness]string{
	models.TimelinessEvergreen: "Evergreen",
	models.TimelinessTimely:    "Timely",
	models.TimelinessDated:     "Dated",
}, models.TimelinessEvergreen)

var TopicStatus = NewTable("Topic.status", models.AllTopicStatuses, map[models.TopicStatus]string{
	models.TopicNew:      "New",
	models.TopicApproved: "Approved",
	models.TopicAssigned: "Assigned",
	models.TopicUsed:     "Used",
	models.TopicRejected: "Rejected",
}, models.TopicNew)

var BrandType = NewTable("Brand.brandType", models.AllBrandTypes, map[models.BrandType]string{
	models.BrandService:   "Service",
	models.BrandPersonal:  "Personal",
	models.BrandNonprofit: "Nonprofit",
	models.BrandProduct:   "Product",
}, models.BrandService)

var IssueStatus = NewTable("Issue.status", models.AllIssueStatuses, map[models.IssueStatus]string{
	models.IssuePlanning:     "Planning",
	models.IssueInProduction: "In Production",
	models.IssueReady:        "Ready",
	models.IssuePublished:    "Published",
}, models.IssuePlanning)
