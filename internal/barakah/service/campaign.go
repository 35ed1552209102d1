package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/domain"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
	"github.com/AnthonyMuncherz/barakahbot/pkg/idx"
)

var (
	ErrCampaignInvalid  = errors.New("service: invalid campaign")
	ErrCampaignHasFunds = errors.New("service: campaign has collected funds")
)

// CampaignService owns campaign and category management. Listing is public;
// everything that mutates is reached only through back-office handlers.
type CampaignService struct {
	Store store.Store
}

func (s *CampaignService) List(ctx context.Context, activeOnly bool) ([]domain.Campaign, error) {
	return s.Store.Campaigns().ListCampaigns(ctx, activeOnly)
}

func (s *CampaignService) Get(ctx context.Context, id string) (domain.Campaign, error) {
	return s.Store.Campaigns().GetCampaignByID(ctx, id)
}

func (s *CampaignService) Create(ctx context.Context, title, description, categoryID string, goalAmount int64) (domain.Campaign, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Campaign{}, fmt.Errorf("%w: title required", ErrCampaignInvalid)
	}
	if goalAmount <= 0 {
		return domain.Campaign{}, fmt.Errorf("%w: goal must be positive", ErrCampaignInvalid)
	}
	if _, err := s.Store.Categories().GetCategoryByID(ctx, categoryID); err != nil {
		return domain.Campaign{}, fmt.Errorf("%w: unknown category", ErrCampaignInvalid)
	}

	now := time.Now().UTC()
	campaign := domain.Campaign{
		ID:          idx.New().String(),
		Title:       title,
		Description: strings.TrimSpace(description),
		CategoryID:  categoryID,
		GoalAmount:  goalAmount,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Campaigns().CreateCampaign(ctx, campaign); err != nil {
		return domain.Campaign{}, fmt.Errorf("creating campaign: %w", err)
	}
	return campaign, nil
}

// Update replaces the mutable fields. Collected is never written here; only
// completed donations move it.
func (s *CampaignService) Update(ctx context.Context, id, title, description, categoryID string, goalAmount int64, active bool) (domain.Campaign, error) {
	campaign, err := s.Store.Campaigns().GetCampaignByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Campaign{}, fmt.Errorf("%w: title required", ErrCampaignInvalid)
	}
	if goalAmount <= 0 {
		return domain.Campaign{}, fmt.Errorf("%w: goal must be positive", ErrCampaignInvalid)
	}
	if categoryID != campaign.CategoryID {
		if _, err := s.Store.Categories().GetCategoryByID(ctx, categoryID); err != nil {
			return domain.Campaign{}, fmt.Errorf("%w: unknown category", ErrCampaignInvalid)
		}
	}

	campaign.Title = title
	campaign.Description = strings.TrimSpace(description)
	campaign.CategoryID = categoryID
	campaign.GoalAmount = goalAmount
	campaign.Active = active
	campaign.UpdatedAt = time.Now().UTC()

	if err := s.Store.Campaigns().UpdateCampaign(ctx, campaign); err != nil {
		return domain.Campaign{}, fmt.Errorf("updating campaign: %w", err)
	}
	return campaign, nil
}

// Delete removes a campaign. Campaigns that already collected money are
// deactivated instead of deleted so donation history keeps its reference.
func (s *CampaignService) Delete(ctx context.Context, id string) error {
	campaign, err := s.Store.Campaigns().GetCampaignByID(ctx, id)
	if err != nil {
		return err
	}
	if campaign.Collected > 0 {
		return ErrCampaignHasFunds
	}
	return s.Store.Campaigns().DeleteCampaign(ctx, id)
}

func (s *CampaignService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.Store.Categories().ListCategories(ctx)
}

func (s *CampaignService) CreateCategory(ctx context.Context, name, description string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, fmt.Errorf("%w: name required", ErrCampaignInvalid)
	}
	category := domain.Category{
		ID:          idx.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Store.Categories().CreateCategory(ctx, category); err != nil {
		return domain.Category{}, fmt.Errorf("creating category: %w", err)
	}
	return category, nil
}

func (s *CampaignService) DeleteCategory(ctx context.Context, id string) error {
	return s.Store.Categories().DeleteCategory(ctx, id)
}
