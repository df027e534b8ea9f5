package repo

import (
	"context"

	"github.com/ozkat/fleetweb/pkg/core/model"
)

type UsersConnQueryer interface {
	UsersQueryer
}

type UsersTxQueryer interface {
	UsersQueryer
}

// UsersQueryer lists the users table queries. The Create method
// expects an already hashed password in u.PasswordHash and reports a
// duplicate username with a cerr.Conflict error.
type UsersQueryer interface {
	Create(ctx context.Context, u model.User) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type Users interface {
	Conn(Conn) UsersConnQueryer
	Tx(Tx) UsersTxQueryer
}
