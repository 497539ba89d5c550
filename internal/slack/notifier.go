package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/models"
)

// Notifier posts editorial announcements to a Slack channel.
type Notifier struct {
	api       *slack.Client
	channelID string
	logger    *zap.Logger
}

// NewNotifier builds a notifier. apiURL overrides the Slack endpoint and is
// empty in production.
func NewNotifier(token, channelID, apiURL string, logger *zap.Logger) *Notifier {
	var opts []slack.Option
	if apiURL != "" {
		opts = append(opts, slack.OptionAPIURL(apiURL))
	}
	return &Notifier{
		api:       slack.New(token, opts...),
		channelID: channelID,
		logger:    logger.Named("slack"),
	}
}

// NotifyPush announces a pushed article. Delivery failures are logged and
// never reach the caller.
func (n *Notifier) NotifyPush(ctx context.Context, article models.ArticleDraft, result *models.PushResult) {
	summary := pushSummary(article, result)
	if err := n.postBlocks(ctx, summary, pushBlocks(article, result)); err != nil {
		n.logger.Warn("failed to announce push",
			zap.String("article_id", result.ArticleID),
			zap.Error(err),
		)
	}
}

// postBlocks posts blocks with text as the notification fallback.
func (n *Notifier) postBlocks(ctx context.Context, text string, blocks []slack.Block) error {
	_, _, err := n.api.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionBlocks(blocks...),
	)
	return err
}

func pushSummary(article models.ArticleDraft, result *models.PushResult) string {
	return fmt.Sprintf("Pushed \"%s\" with %d LinkedIn post(s)", article.Title, len(result.PostIDs))
}

func pushBlocks(article models.ArticleDraft, result *models.PushResult) []slack.Block {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", article.Title)
	fmt.Fprintf(&b, "%s · %s\n", article.ContentType, article.Pillar)
	fmt.Fprintf(&b, "Article `%s`, %d post(s) created", result.ArticleID, len(result.PostIDs))

	blocks := []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, b.String(), false, false), nil, nil),
	}
	if len(result.Failed) > 0 {
		lines := make([]string, 0, len(result.Failed))
		for _, f := range result.Failed {
			lines = append(lines, fmt.Sprintf("post %d: %s", f.Index+1, f.Error))
		}
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, ":warning: "+strings.Join(lines, "\n"), false, false),
		))
	}
	return blocks
}
