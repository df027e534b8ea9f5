// Package usersrp implements the users repository, adapting the
// repo.Users interface to the users table queries.
package usersrp

import (
	"context"

	"github.com/ozkat/fleetweb/pkg/adapter/db/postgres"
	"github.com/ozkat/fleetweb/pkg/core/model"
	"github.com/ozkat/fleetweb/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (users *Repo) Conn(c repo.Conn) repo.UsersConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Create(ctx context.Context, u model.User) (*model.User, error) {
	return Create(ctx, cq.Conn, u)
}

func (cq connQueryer) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return GetByUsername(ctx, cq.Conn, username)
}

type txQueryer struct {
	*postgres.Tx
}

func (users *Repo) Tx(tx repo.Tx) repo.UsersTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Create(ctx context.Context, u model.User) (*model.User, error) {
	return Create(ctx, tq.Tx, u)
}

func (tq txQueryer) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return GetByUsername(ctx, tq.Tx, username)
}
