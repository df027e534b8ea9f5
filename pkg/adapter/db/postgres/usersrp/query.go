package usersrp

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ozkat/fleetweb/pkg/adapter/db/postgres"
	"github.com/ozkat/fleetweb/pkg/core/cerr"
	"github.com/ozkat/fleetweb/pkg/core/model"
)

// uniqueViolation is the SQLSTATE code of a unique constraint error,
// raised when an already taken username is inserted.
const uniqueViolation = "23505"

type gUser struct {
	UID          uuid.UUID `gorm:"primaryKey;type:uuid;column:uid"`
	Username     string    `gorm:"uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Admin        bool
}

func (gu *gUser) TableName() string {
	return "users"
}

func (gu *gUser) Model() *model.User {
	return &model.User{
		ID:           gu.UID,
		Username:     gu.Username,
		PasswordHash: gu.PasswordHash,
		Admin:        gu.Admin,
	}
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, u model.User) (*model.User, error) {
	gdb := q.GORM(ctx)
	gu := gUser{
		UID:          u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Admin:        u.Admin,
	}
	if err := gdb.Create(&gu).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, cerr.Conflict(fmt.Errorf(
				"username %q is already taken", u.Username,
			))
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	return gu.Model(), nil
}

func GetByUsername[Q postgres.Queryer](ctx context.Context, q Q, username string) (*model.User, error) {
	gdb := q.GORM(ctx)
	var gu []gUser
	err := gdb.Where("username=?", username).Limit(1).Find(&gu).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gu); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("no user with username %q", username),
		)
	}
	return gu[0].Model(), nil
}
