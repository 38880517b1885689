package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListUsersQueryHandler struct {
	db *gorm.DB
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("users").
		Select("id, email, name, role, rider_id, created_at, last_login_at")
	if query.EmailFragment() != "" {
		tx = tx.Where(`email LIKE ? ESCAPE '\'`, containsPattern(query.EmailFragment()))
	}

	rows, err := tx.Order("email").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserView, 0)
	for rows.Next() {
		var u UserView
		var id uuid.UUID
		var riderID uuid.NullUUID

		err = rows.Scan(&id, &u.Email, &u.Name, &u.Role, &riderID, &u.CreatedAt, &u.LastLoginAt)
		if err != nil {
			return nil, err
		}

		if u.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if riderID.Valid {
			rid, idErr := kernel.UUIDFromBytes(riderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			u.RiderID = &rid
		}

		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
