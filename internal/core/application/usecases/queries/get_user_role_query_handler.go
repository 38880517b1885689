package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUserRoleQueryHandler struct {
	db *gorm.DB
}

func NewGetUserRoleQueryHandler(db *gorm.DB) GetUserRoleQueryHandler {
	return GetUserRoleQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError when no account uses the email.
func (h GetUserRoleQueryHandler) Handle(
	ctx context.Context,
	query GetUserRoleQuery,
) (GetUserRoleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserRoleQueryResponse{}, err
	}

	var roles []string
	err := h.db.WithContext(ctx).Raw(
		`SELECT role FROM users WHERE email = ? LIMIT 1`,
		query.Email(),
	).Scan(&roles).Error
	if err != nil {
		return GetUserRoleQueryResponse{}, err
	}
	if len(roles) == 0 {
		return GetUserRoleQueryResponse{}, errs.NewObjectNotFoundError("email", query.Email())
	}

	role, err := user.ParseRole(roles[0])
	if err != nil {
		return GetUserRoleQueryResponse{}, err
	}

	return GetUserRoleQueryResponse{Email: query.Email(), Role: role}, nil
}
