package sqlite

import (
	"context"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/domain"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
)

type campaignsRepo struct {
	db dbtx
}

const campaignColumns = `id, title, description, category_id, goal_amount, collected, active, created_at, updated_at`

func scanCampaign(row interface{ Scan(...any) error }) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.CategoryID,
		&c.GoalAmount, &c.Collected, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *campaignsRepo) GetCampaignByID(ctx context.Context, id string) (domain.Campaign, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = ?`, id)
	c, err := scanCampaign(row)
	if err != nil {
		return domain.Campaign{}, mapNotFound(err)
	}
	return c, nil
}

func (r *campaignsRepo) ListCampaigns(ctx context.Context, activeOnly bool) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns ORDER BY created_at DESC`
	if activeOnly {
		query = `SELECT ` + campaignColumns + ` FROM campaigns WHERE active = 1 ORDER BY created_at DESC`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *campaignsRepo) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO campaigns (id, title, description, category_id, goal_amount, collected, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Title, c.Description, c.CategoryID, c.GoalAmount, c.Collected, c.Active, c.CreatedAt, c.UpdatedAt)
	return mapConstraint(err)
}

func (r *campaignsRepo) UpdateCampaign(ctx context.Context, c domain.Campaign) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE campaigns SET title = ?, description = ?, category_id = ?, goal_amount = ?, active = ?, updated_at = ?
		 WHERE id = ?`,
		c.Title, c.Description, c.CategoryID, c.GoalAmount, c.Active, time.Now().UTC(), c.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *campaignsRepo) DeleteCampaign(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = ?`, id)
	if err != nil {
		return mapConstraint(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *campaignsRepo) AddCollected(ctx context.Context, id string, amount int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE campaigns SET collected = collected + ?, updated_at = ? WHERE id = ?`,
		amount, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}
