package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubh-37/inflections-studio/internal/models"
)

// roundTrip checks decode(encode(v)) == v for every member and that the
// empty and unknown strings decode to the default.
func roundTrip[T ~string](t *testing.T, table *Table[T]) {
	t.Helper()
	t.Run(table.Field(), func(t *testing.T) {
		for _, m := range table.Members() {
			label := table.Encode(m)
			assert.NotEmpty(t, label)
			assert.Equal(t, m, table.Decode(label), "round trip of %q", m)
		}
		assert.Equal(t, table.Default(), table.Decode(""))
		assert.Equal(t, table.Default(), table.Decode("Some Legacy Value"))
	})
}

func TestTables_RoundTrip(t *testing.T) {
	t.Parallel()

	roundTrip(t, ContentType)
	roundTrip(t, Pillar)
	roundTrip(t, ArticleStatus)
	roundTrip(t, PostType)
	roundTrip(t, PostStatus)
	roundTrip(t, TopicSource)
	roundTrip(t, Priority)
	roundTrip(t, Timeliness)
	roundTrip(t, TopicStatus)
	roundTrip(t, BrandType)
	roundTrip(t, IssueStatus)
}

func TestTables_Defaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.ArticleIdea, ArticleStatus.Decode("Archived"))
	assert.Equal(t, models.PostDrafted, PostStatus.Decode(""))
	assert.Equal(t, models.TopicNew, TopicStatus.Decode("???"))
	assert.Equal(t, models.IssuePlanning, IssueStatus.Decode("Someday"))
	assert.Equal(t, models.ContentPerspective, ContentType.Decode("Op-Ed"))
	assert.Equal(t, models.PillarTechLeadership, Pillar.Decode(""))
	assert.Equal(t, models.PriorityMedium, Priority.Decode("urgent"))
	assert.Equal(t, models.SourceManual, TopicSource.Decode(""))
}

func TestDecode_Tolerant(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.PillarHumanSide, Pillar.Decode("  the human side "))
	assert.Equal(t, models.ArticleReview, ArticleStatus.Decode("IN REVIEW"))
	// legacy rows hold the internal value
	assert.Equal(t, models.ContentPractitionerGuide, ContentType.Decode("practitioner_guide"))
	assert.Equal(t, models.SourceReference, TopicSource.Decode("reference_material"))
}

func TestLookup_ReportsMatch(t *testing.T) {
	t.Parallel()

	v, ok := PostType.Lookup("Hot Take")
	assert.True(t, ok)
	assert.Equal(t, models.PostHotTake, v)

	v, ok = PostType.Lookup("Carousel")
	assert.False(t, ok)
	assert.Equal(t, models.PostArticleShare, v)
}

func TestEncode_KnownLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Tech Leadership", Pillar.Encode(models.PillarTechLeadership))
	assert.Equal(t, "Drafting", ArticleStatus.Encode(models.ArticleDrafting))
	assert.Equal(t, "The Crossroads", ContentType.Encode(models.ContentCrossroads))
	assert.Equal(t, "AI Suggested", TopicSource.Encode(models.SourceAISuggested))
}

func TestEncode_UnknownPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { ArticleStatus.Encode("archived") })
	assert.Panics(t, func() { Pillar.Encode("") })
}

type color string

func TestNewTable_Exhaustive(t *testing.T) {
	t.Parallel()

	members := []color{"red", "blue"}

	t.Run("missing label", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTable("color", members, map[color]string{"red": "Red"}, "red")
		})
	})
	t.Run("label for non-member", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTable("color", members, map[color]string{"red": "Red", "green": "Green"}, "red")
		})
	})
	t.Run("duplicate label", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTable("color", members, map[color]string{"red": "Red", "blue": "red"}, "red")
		})
	})
	t.Run("fallback not a member", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTable("color", members, map[color]string{"red": "Red", "blue": "Blue"}, "green")
		})
	})
	t.Run("valid", func(t *testing.T) {
		var tbl *Table[color]
		require.NotPanics(t, func() {
			tbl = NewTable("color", members, map[color]string{"red": "Red", "blue": "Blue"}, "red")
		})
		assert.Equal(t, color("blue"), tbl.Decode("BLUE"))
	})
}
