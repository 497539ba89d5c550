package repository

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/airtable"
	"github.com/shubh-37/inflections-studio/internal/codec"
	"github.com/shubh-37/inflections-studio/internal/models"
)

const (
	brandName            = "Brand Name"
	brandShortName       = "Short Name"
	brandType            = "Brand Type"
	brandWebsiteURL      = "Website URL"
	brandLinkedInPageURL = "LinkedIn Page URL"
	brandLinkedInPageID  = "LinkedIn Page ID"
	brandPrimaryColor    = "Primary Color"
	brandVoiceSummary    = "Voice Summary"
	brandVoiceProfile    = "Voice Profile JSON"
	brandTargetAudience  = "Target Audience"
	brandContentThemes   = "Content Themes"
	brandCrossBrandCTAs  = "Cross-Brand CTAs"
	brandLogoURL         = "Logo URL"
	brandIsActive        = "Is Active"
)

type BrandRepository struct {
	store  Store
	table  string
	logger *zap.Logger
}

func NewBrandRepository(store Store, table string, logger *zap.Logger) *BrandRepository {
	return &BrandRepository{store: store, table: table, logger: logger}
}

// List returns active brands sorted by name.
func (r *BrandRepository) List(ctx context.Context) ([]*models.Brand, error) {
	records, err := r.store.List(ctx, r.table, airtable.Query{
		Formula: airtable.IsTrue(brandIsActive),
		Sort:    []airtable.Sort{asc(brandName)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}

	brands := make([]*models.Brand, 0, len(records))
	for _, rec := range records {
		brands = append(brands, r.decode(rec))
	}
	return brands, nil
}

// Get looks a brand up directly, whether or not it is active. It returns
// nil when no brand has that id.
func (r *BrandRepository) Get(ctx context.Context, id string) (*models.Brand, error) {
	rec, err := find(ctx, r.store, r.table, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get brand %s: %w", id, err)
	}
	if rec == nil {
		return nil, nil
	}
	return r.decode(*rec), nil
}

func (r *BrandRepository) decode(rec airtable.Record) *models.Brand {
	f := rec.Fields
	b := &models.Brand{
		ID:              rec.ID,
		Name:            f.String(brandName),
		ShortName:       f.String(brandShortName),
		BrandType:       codec.BrandType.Decode(f.String(brandType)),
		WebsiteURL:      f.String(brandWebsiteURL),
		LinkedInPageURL: f.String(brandLinkedInPageURL),
		LinkedInPageID:  f.String(brandLinkedInPageID),
		PrimaryColor:    f.String(brandPrimaryColor),
		VoiceSummary:    f.String(brandVoiceSummary),
		TargetAudience:  f.String(brandTargetAudience),
		ContentThemes:   splitLines(f.String(brandContentThemes)),
		CrossBrandCTAs:  map[string]string{},
		LogoURL:         f.String(brandLogoURL),
		IsActive:        f.Bool(brandIsActive),
	}

	// hand-edited JSON columns; a broken document falls back to defaults
	if err := f.JSON(brandVoiceProfile, &b.VoiceProfile); err != nil {
		r.logger.Warn("invalid voice profile JSON", zap.String("brand_id", rec.ID), zap.Error(err))
		b.VoiceProfile = models.VoiceProfile{}
	}
	if err := f.JSON(brandCrossBrandCTAs, &b.CrossBrandCTAs); err != nil {
		r.logger.Warn("invalid cross-brand CTA JSON", zap.String("brand_id", rec.ID), zap.Error(err))
		b.CrossBrandCTAs = map[string]string{}
	}
	return b
}

func splitLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
