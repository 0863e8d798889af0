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

const categoryTableName = "prayer_categories"

var categoryColumns = utils.StructTagValues(types.Category{})

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// Categories returns every category owned by userID.
func (r *CategoryRepository) Categories(ctx context.Context, userID int64) ([]*types.Category, error) {
	query, args, err := psql().
		Select(categoryColumns...).
		From(categoryTableName).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate categories query: %w", err)
	}

	var categories []*types.Category
	err = pgxscan.Select(ctx, r.pool, &categories, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, nil
}

// CategoryByID returns the category scoped to userID, or nil when no
// matching row exists.
func (r *CategoryRepository) CategoryByID(ctx context.Context, id, userID int64) (*types.Category, error) {
	query, args, err := psql().
		Select(categoryColumns...).
		From(categoryTableName).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate category query: %w", err)
	}

	var category types.Category
	err = pgxscan.Get(ctx, r.pool, &category, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}

	return &category, nil
}

// CreateCategory inserts a category and returns the generated id.
func (r *CategoryRepository) CreateCategory(ctx context.Context, category types.NewCategory) (int64, error) {
	query, args, err := createCategoryQuery(category)
	if err != nil {
		return 0, fmt.Errorf("failed to generate insert query: %w", err)
	}

	var id int64
	err = r.pool.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert category: %w", err)
	}

	return id, nil
}

// UpdateCategory replaces name and color on the scoped row and returns
// the affected-row count. Zero is not an error here.
func (r *CategoryRepository) UpdateCategory(ctx context.Context, category types.CategoryUpdate) (int64, error) {
	query, args, err := updateCategoryQuery(category)
	if err != nil {
		return 0, fmt.Errorf("failed to generate update query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update category: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteCategory removes the scoped row and returns the affected-row
// count. The schema cascades the delete to the category's prayers.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, id, userID int64) (int64, error) {
	query, args, err := psql().
		Delete(categoryTableName).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate delete query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete category: %w", err)
	}

	return tag.RowsAffected(), nil
}

func createCategoryQuery(category types.NewCategory) (string, []any, error) {
	return psql().
		Insert(categoryTableName).
		Columns("user_id", "name", "color").
		Values(category.UserID, category.Name, category.Color).
		Suffix("RETURNING id").
		ToSql()
}

func updateCategoryQuery(category types.CategoryUpdate) (string, []any, error) {
	return psql().
		Update(categoryTableName).
		Set("name", category.Name).
		Set("color", category.Color).
		Where(sq.Eq{"id": category.ID, "user_id": category.UserID}).
		ToSql()
}
