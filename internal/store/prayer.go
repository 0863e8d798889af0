package store

import (
	"context"
	"fmt"

	"prayernotebook/internal/utils"
	"prayernotebook/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const prayerTableName = "prayers"

var prayerColumns = utils.StructTagValues(types.Prayer{})

type PrayerRepository struct {
	pool *pgxpool.Pool
}

func NewPrayerRepository(pool *pgxpool.Pool) *PrayerRepository {
	return &PrayerRepository{pool: pool}
}

// Prayers returns every prayer owned by userID.
func (r *PrayerRepository) Prayers(ctx context.Context, userID int64) ([]*types.Prayer, error) {
	query, args, err := psql().
		Select(prayerColumns...).
		From(prayerTableName).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate prayers query: %w", err)
	}

	var prayers []*types.Prayer
	err = pgxscan.Select(ctx, r.pool, &prayers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prayers: %w", err)
	}

	return prayers, nil
}

// PrayerByID returns the prayer scoped to userID, or nil when no
// matching row exists. A prayer owned by another user is
// indistinguishable from an absent one.
func (r *PrayerRepository) PrayerByID(ctx context.Context, id, userID int64) (*types.Prayer, error) {
	query, args, err := psql().
		Select(prayerColumns...).
		From(prayerTableName).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate prayer query: %w", err)
	}

	var prayer types.Prayer
	err = pgxscan.Get(ctx, r.pool, &prayer, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch prayer: %w", err)
	}

	return &prayer, nil
}

// PrayersByCategory returns the prayers in a category, scoped to userID.
func (r *PrayerRepository) PrayersByCategory(ctx context.Context, categoryID, userID int64) ([]*types.Prayer, error) {
	query, args, err := psql().
		Select(prayerColumns...).
		From(prayerTableName).
		Where(sq.Eq{"category_id": categoryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate prayers by category query: %w", err)
	}

	var prayers []*types.Prayer
	err = pgxscan.Select(ctx, r.pool, &prayers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prayers by category: %w", err)
	}

	return prayers, nil
}

// AnsweredPrayers returns answered prayers, most recently answered first.
func (r *PrayerRepository) AnsweredPrayers(ctx context.Context, userID int64) ([]*types.Prayer, error) {
	query, args, err := psql().
		Select(prayerColumns...).
		From(prayerTableName).
		Where(sq.Eq{"user_id": userID, "is_answered": true}).
		OrderBy("date_answered DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate answered prayers query: %w", err)
	}

	var prayers []*types.Prayer
	err = pgxscan.Select(ctx, r.pool, &prayers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch answered prayers: %w", err)
	}

	return prayers, nil
}

// SearchPrayers matches keyword as a case-insensitive substring of
// title, description, or notes.
func (r *PrayerRepository) SearchPrayers(ctx context.Context, userID int64, keyword string) ([]*types.Prayer, error) {
	query, args, err := searchPrayersQuery(userID, keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to generate search query: %w", err)
	}

	var prayers []*types.Prayer
	err = pgxscan.Select(ctx, r.pool, &prayers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search prayers: %w", err)
	}

	return prayers, nil
}

// CreatePrayer inserts a prayer and returns the generated id.
func (r *PrayerRepository) CreatePrayer(ctx context.Context, prayer types.NewPrayer) (int64, error) {
	query, args, err := createPrayerQuery(prayer)
	if err != nil {
		return 0, fmt.Errorf("failed to generate insert query: %w", err)
	}

	var id int64
	err = r.pool.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert prayer: %w", err)
	}

	return id, nil
}

// UpdatePrayer replaces the mutable fields on the scoped row and
// returns the affected-row count. Zero is not an error here.
func (r *PrayerRepository) UpdatePrayer(ctx context.Context, prayer types.PrayerUpdate) (int64, error) {
	query, args, err := updatePrayerQuery(prayer)
	if err != nil {
		return 0, fmt.Errorf("failed to generate update query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update prayer: %w", err)
	}

	return tag.RowsAffected(), nil
}

// MarkPrayerAnswered flips is_answered, stamps date_answered with the
// database clock, and stores the optional notes. The transition is
// one-way: nothing resets is_answered to false.
func (r *PrayerRepository) MarkPrayerAnswered(ctx context.Context, id, userID int64, notes *string) (int64, error) {
	query, args, err := markPrayerAnsweredQuery(id, userID, notes)
	if err != nil {
		return 0, fmt.Errorf("failed to generate mark answered query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to mark prayer answered: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeletePrayer removes the scoped row and returns the affected-row count.
func (r *PrayerRepository) DeletePrayer(ctx context.Context, id, userID int64) (int64, error) {
	query, args, err := psql().
		Delete(prayerTableName).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate delete query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete prayer: %w", err)
	}

	return tag.RowsAffected(), nil
}

func createPrayerQuery(prayer types.NewPrayer) (string, []any, error) {
	return psql().
		Insert(prayerTableName).
		Columns("category_id", "user_id", "title", "description", "notes").
		Values(prayer.CategoryID, prayer.UserID, prayer.Title, prayer.Description, prayer.Notes).
		Suffix("RETURNING id").
		ToSql()
}

func updatePrayerQuery(prayer types.PrayerUpdate) (string, []any, error) {
	return psql().
		Update(prayerTableName).
		Set("title", prayer.Title).
		Set("description", prayer.Description).
		Set("notes", prayer.Notes).
		Set("category_id", prayer.CategoryID).
		Where(sq.Eq{"id": prayer.ID, "user_id": prayer.UserID}).
		ToSql()
}

func markPrayerAnsweredQuery(id, userID int64, notes *string) (string, []any, error) {
	return psql().
		Update(prayerTableName).
		Set("is_answered", true).
		Set("date_answered", sq.Expr("now()")).
		Set("notes", notes).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func searchPrayersQuery(userID int64, keyword string) (string, []any, error) {
	pattern := searchPattern(keyword)
	return psql().
		Select(prayerColumns...).
		From(prayerTableName).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
			sq.ILike{"notes": pattern},
		}).
		ToSql()
}
