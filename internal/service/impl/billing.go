package impl

import (
	"context"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/blocipedia/internal/domain"
	"github.com/sidereusnuntius/blocipedia/internal/service"
)

func (s *AppService) LinkBillingAccount(ctx context.Context, userId int64, billingID string) error {
	billingID = strings.TrimSpace(billingID)
	if strings.ContainsAny(billingID, " \t\n") {
		return fmt.Errorf("%w: malformed customer id", service.ErrInvalidInput)
	}
	return translate(s.DB.SetBillingID(ctx, userId, billingID))
}

func (s *AppService) GetCharges(ctx context.Context, userId int64) ([]domain.Charge, error) {
	charges, err := s.DB.GetCharges(ctx, userId)
	if charges == nil && err == nil {
		charges = []domain.Charge{}
	}
	return charges, err
}
