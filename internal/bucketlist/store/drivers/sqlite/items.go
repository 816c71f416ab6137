package sqlite

import (
	"context"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/domain"
)

type itemsRepo struct {
	db dbtx
}

func (r *itemsRepo) CreateItem(ctx context.Context, it domain.Item) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO items (bucketlist_id, name, created_at, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		it.BucketlistID, it.Name,
	)
	if err != nil {
		return 0, mapConflict(err)
	}
	return res.LastInsertId()
}

func (r *itemsRepo) GetItem(ctx context.Context, bucketlistID, id int64) (domain.Item, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, bucketlist_id, name, created_at, updated_at
		FROM items WHERE id = ? AND bucketlist_id = ?`, id, bucketlistID)

	var it domain.Item
	err := row.Scan(&it.ID, &it.BucketlistID, &it.Name, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return domain.Item{}, mapNotFound(err)
	}
	return it, nil
}

func (r *itemsRepo) ListItems(ctx context.Context, bucketlistID int64) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, bucketlist_id, name, created_at, updated_at
		FROM items WHERE bucketlist_id = ?
		ORDER BY id ASC`, bucketlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.BucketlistID, &it.Name, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *itemsRepo) RenameItem(ctx context.Context, bucketlistID, id int64, name string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE items SET name = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND bucketlist_id = ?`, name, id, bucketlistID)
	if err != nil {
		return mapConflict(err)
	}
	return requireRowTouched(res)
}

func (r *itemsRepo) DeleteItem(ctx context.Context, bucketlistID, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM items WHERE id = ? AND bucketlist_id = ?`, id, bucketlistID)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}
