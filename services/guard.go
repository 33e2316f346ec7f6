package services

import (
	"context"
	"errors"

	"github.com/GPSingh476/formflow-backend/models"
	"github.com/GPSingh476/formflow-backend/repositories"
)

// assertFormOwner formu yükler ve çağıranın sahibi olduğunu doğrular.
// Sahiplik gerektiren her servis işlemi buradan geçer; yan etkisi yoktur.
// Form yoksa ErrFormNotFound, sahibi değilse ErrFormForbidden döner.
func assertFormOwner(ctx context.Context, repo repositories.IFormRepository, formID, userID uint) (*models.Form, error) {
	form, err := repo.FindOwnedByID(ctx, formID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if form.OwnerUserID != userID {
		return nil, ErrFormForbidden
	}
	return form, nil
}
