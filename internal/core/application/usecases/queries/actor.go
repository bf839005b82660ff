package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// loadActor reads the acting user's role from the user directory. An unknown
// id is reported as *errs.ObjectNotFoundError.
func loadActor(ctx context.Context, db *gorm.DB, id kernel.UUID) (services.Actor, error) {
	var row struct {
		Role string
	}

	result := db.WithContext(ctx).Table("users").Select("role").Where("id = ?", id.Bytes()).Limit(1).Scan(&row)
	if result.Error != nil {
		return services.Actor{}, errs.NewStorageFailureError("get actor", result.Error)
	}
	if result.RowsAffected == 0 {
		return services.Actor{}, errs.NewObjectNotFoundError("user", id.String())
	}

	role, err := user.ParseRole(row.Role)
	if err != nil {
		return services.Actor{}, err
	}

	return services.Actor{ID: id, Role: role}, nil
}
