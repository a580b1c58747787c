package db

import (
	"context"

	"github.com/sidereusnuntius/blocipedia/internal/domain"
)

type Wikis interface {
	// ListWikis returns every wiki, newest first. Visibility filtering is the caller's business.
	ListWikis(ctx context.Context) ([]domain.Wiki, error)
	GetWiki(ctx context.Context, id int64) (domain.Wiki, error)
	CountWikis(ctx context.Context) (int64, error)
	// CreateWiki inserts the wiki and returns it as stored.
	CreateWiki(ctx context.Context, w domain.Wiki) (domain.Wiki, error)
	// UpdateWiki overwrites the wiki's title, body and visibility and records a revision, made by editorId,
	// holding the patch from the previous body to the new one.
	UpdateWiki(ctx context.Context, w domain.Wiki, editorId int64) (domain.Wiki, error)
	DeleteWiki(ctx context.Context, id int64) error
	GetRevisionList(ctx context.Context, wikiId int64) ([]domain.Revision, error)
}
