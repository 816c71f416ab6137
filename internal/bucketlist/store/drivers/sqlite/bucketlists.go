package sqlite

import (
	"context"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/domain"
)

type bucketlistsRepo struct {
	db dbtx
}

func (r *bucketlistsRepo) CreateBucketlist(ctx context.Context, b domain.Bucketlist) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO bucketlists (user_id, name, created_at, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		b.UserID, b.Name,
	)
	if err != nil {
		return 0, mapConflict(err)
	}
	return res.LastInsertId()
}

func (r *bucketlistsRepo) GetBucketlist(ctx context.Context, userID, id int64) (domain.Bucketlist, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM bucketlists WHERE id = ? AND user_id = ?`, id, userID)

	var b domain.Bucketlist
	err := row.Scan(&b.ID, &b.UserID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.Bucketlist{}, mapNotFound(err)
	}
	return b, nil
}

func (r *bucketlistsRepo) ListBucketlists(
	ctx context.Context,
	userID int64,
	query string,
	limit, offset int,
) ([]domain.Bucketlist, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM bucketlists
		WHERE user_id = ? AND (? = '' OR name LIKE '%' || ? || '%')
		ORDER BY id DESC
		LIMIT ? OFFSET ?`,
		userID, query, query, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []domain.Bucketlist
	for rows.Next() {
		var b domain.Bucketlist
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		lists = append(lists, b)
	}
	return lists, rows.Err()
}

func (r *bucketlistsRepo) CountBucketlists(ctx context.Context, userID int64, query string) (int64, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM bucketlists
		WHERE user_id = ? AND (? = '' OR name LIKE '%' || ? || '%')`,
		userID, query, query,
	)
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *bucketlistsRepo) RenameBucketlist(ctx context.Context, userID, id int64, name string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bucketlists SET name = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?`, name, id, userID)
	if err != nil {
		return mapConflict(err)
	}
	return requireRowTouched(res)
}

func (r *bucketlistsRepo) DeleteBucketlist(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM bucketlists WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return requireRowTouched(res)
}
