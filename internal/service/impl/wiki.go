package impl

import (
	"context"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/blocipedia/internal/domain"
	"github.com/sidereusnuntius/blocipedia/internal/policy"
	"github.com/sidereusnuntius/blocipedia/internal/service"
	"github.com/sidereusnuntius/blocipedia/internal/validate"
)

func (s *AppService) ListWikis(ctx context.Context, actor *domain.User) ([]domain.Wiki, error) {
	wikis, err := s.DB.ListWikis(ctx)
	if err != nil {
		return nil, err
	}
	return policy.Visible(actor, wikis), nil
}

func (s *AppService) GetWiki(ctx context.Context, id int64) (domain.Wiki, error) {
	return s.DB.GetWiki(ctx, id)
}

func (s *AppService) CreateWiki(ctx context.Context, owner domain.User, params domain.WikiParams) (domain.Wiki, error) {
	w := domain.Wiki{UserID: owner.ID}
	params.Apply(&w)
	w.Title = strings.TrimSpace(w.Title)

	if err := validate.Wiki(w); err != nil {
		return domain.Wiki{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	created, err := s.DB.CreateWiki(ctx, w)
	return created, translate(err)
}

func (s *AppService) UpdateWiki(ctx context.Context, editor domain.User, w domain.Wiki, params domain.WikiParams) (domain.Wiki, error) {
	params.Apply(&w)
	w.Title = strings.TrimSpace(w.Title)

	if err := validate.Wiki(w); err != nil {
		return domain.Wiki{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	updated, err := s.DB.UpdateWiki(ctx, w, editor.ID)
	return updated, translate(err)
}

func (s *AppService) DeleteWiki(ctx context.Context, id int64) error {
	return s.DB.DeleteWiki(ctx, id)
}

func (s *AppService) GetRevisionList(ctx context.Context, wikiId int64) ([]domain.Revision, error) {
	return s.DB.GetRevisionList(ctx, wikiId)
}
