package impl

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/blocipedia/internal/diff"
	"github.com/sidereusnuntius/blocipedia/internal/domain"
)

const wikiColumns = "id, title, body, private, user_id, created, updated"

func scanWiki(row scanner) (w domain.Wiki, err error) {
	err = row.Scan(&w.ID, &w.Title, &w.Body, &w.Private, &w.UserID, &w.Created, &w.Updated)
	return
}

func (d *dbImpl) ListWikis(ctx context.Context) ([]domain.Wiki, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT "+wikiColumns+" FROM wikis ORDER BY created DESC, id DESC")
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	wikis := []domain.Wiki{}
	for rows.Next() {
		w, err := scanWiki(rows)
		if err != nil {
			return nil, d.HandleError(err)
		}
		wikis = append(wikis, w)
	}
	return wikis, d.HandleError(rows.Err())
}

func (d *dbImpl) GetWiki(ctx context.Context, id int64) (domain.Wiki, error) {
	w, err := scanWiki(d.db.QueryRowContext(ctx, "SELECT "+wikiColumns+" FROM wikis WHERE id = ?", id))
	return w, d.HandleError(err)
}

func (d *dbImpl) CountWikis(ctx context.Context) (n int64, err error) {
	err = d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM wikis").Scan(&n)
	return n, d.HandleError(err)
}

func (d *dbImpl) CreateWiki(ctx context.Context, w domain.Wiki) (domain.Wiki, error) {
	log.Debug().
		Str("title", w.Title).
		Int64("user", w.UserID).
		Msg("creating wiki")
	created, err := scanWiki(d.db.QueryRowContext(ctx,
		"INSERT INTO wikis (title, body, private, user_id) VALUES (?, ?, ?, ?) RETURNING "+wikiColumns,
		w.Title, w.Body, w.Private, w.UserID,
	))
	return created, d.HandleError(err)
}

func (d *dbImpl) UpdateWiki(ctx context.Context, w domain.Wiki, editorId int64) (updated domain.Wiki, err error) {
	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		var prev string
		if err := tx.QueryRowContext(ctx, "SELECT body FROM wikis WHERE id = ?", w.ID).Scan(&prev); err != nil {
			return d.HandleError(err)
		}

		var err error
		updated, err = scanWiki(tx.QueryRowContext(ctx,
			"UPDATE wikis SET title = ?, body = ?, private = ?, updated = unixepoch() WHERE id = ? RETURNING "+wikiColumns,
			w.Title, w.Body, w.Private, w.ID,
		))
		if err != nil {
			return d.HandleError(err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO revisions (wiki_id, user_id, title, diff) VALUES (?, ?, ?, ?)",
			w.ID, nullInt64(editorId), w.Title, diff.FindPatches(prev, w.Body),
		)
		return d.HandleError(err)
	})
	return updated, err
}

func (d *dbImpl) DeleteWiki(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, "DELETE FROM wikis WHERE id = ?", id)
	if err != nil {
		return d.HandleError(err)
	}
	return affectedOne(res)
}

func (d *dbImpl) GetRevisionList(ctx context.Context, wikiId int64) ([]domain.Revision, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT r.id, r.wiki_id, r.user_id, u.username, r.title, r.diff, r.created
		FROM revisions r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.wiki_id = ?
		ORDER BY r.id DESC`, wikiId)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	edits := []domain.Revision{}
	for rows.Next() {
		var (
			r        domain.Revision
			userId   sql.NullInt64
			username sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.WikiID, &userId, &username, &r.Title, &r.Diff, &r.Created); err != nil {
			return nil, d.HandleError(err)
		}
		r.UserID = userId.Int64
		r.Username = username.String
		edits = append(edits, r)
	}
	return edits, d.HandleError(rows.Err())
}
