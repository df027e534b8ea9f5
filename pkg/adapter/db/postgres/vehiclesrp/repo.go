// Package vehiclesrp implements the vehicles repository, adapting the
// repo.Vehicles interface to the vehicles table queries.
package vehiclesrp

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

func (vehicles *Repo) Conn(c repo.Conn) repo.VehiclesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Create(ctx context.Context, f model.VehicleFields) (*model.Vehicle, error) {
	return Create(ctx, cq.Conn, f)
}

func (cq connQueryer) Get(ctx context.Context, vid int64) (*model.Vehicle, error) {
	return Get(ctx, cq.Conn, vid)
}

func (cq connQueryer) List(ctx context.Context, favorite *bool) ([]model.Vehicle, error) {
	return List(ctx, cq.Conn, favorite)
}

func (cq connQueryer) Update(ctx context.Context, vid int64, u model.VehicleUpdate) (*model.Vehicle, error) {
	return Update(ctx, cq.Conn, vid, u)
}

func (cq connQueryer) Delete(ctx context.Context, vid int64) error {
	return Delete(ctx, cq.Conn, vid)
}

func (cq connQueryer) ToggleFavorite(ctx context.Context, vid int64) (*model.Vehicle, error) {
	return ToggleFavorite(ctx, cq.Conn, vid)
}

func (cq connQueryer) Search(ctx context.Context, term string) ([]model.Vehicle, error) {
	return Search(ctx, cq.Conn, term)
}

type txQueryer struct {
	*postgres.Tx
}

func (vehicles *Repo) Tx(tx repo.Tx) repo.VehiclesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Create(ctx context.Context, f model.VehicleFields) (*model.Vehicle, error) {
	return Create(ctx, tq.Tx, f)
}

func (tq txQueryer) Get(ctx context.Context, vid int64) (*model.Vehicle, error) {
	return Get(ctx, tq.Tx, vid)
}

func (tq txQueryer) List(ctx context.Context, favorite *bool) ([]model.Vehicle, error) {
	return List(ctx, tq.Tx, favorite)
}

func (tq txQueryer) Update(ctx context.Context, vid int64, u model.VehicleUpdate) (*model.Vehicle, error) {
	return Update(ctx, tq.Tx, vid, u)
}

func (tq txQueryer) Delete(ctx context.Context, vid int64) error {
	return Delete(ctx, tq.Tx, vid)
}

func (tq txQueryer) ToggleFavorite(ctx context.Context, vid int64) (*model.Vehicle, error) {
	return ToggleFavorite(ctx, tq.Tx, vid)
}

func (tq txQueryer) Search(ctx context.Context, term string) ([]model.Vehicle, error) {
	return Search(ctx, tq.Tx, term)
}
