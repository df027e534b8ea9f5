package repo

import (
	"context"

	"github.com/ozkat/fleetweb/pkg/core/model"
)

type VehiclesConnQueryer interface {
	VehiclesQueryer
}

type VehiclesTxQueryer interface {
	VehiclesQueryer
}

// VehiclesQueryer lists the vehicles table queries. Fields and update
// arguments are expected to be validated beforehand (in the use cases
// layer), so implementations only translate them into SQL statements.
type VehiclesQueryer interface {
	Create(ctx context.Context, f model.VehicleFields) (*model.Vehicle, error)
	Get(ctx context.Context, vid int64) (*model.Vehicle, error)
	List(ctx context.Context, favorite *bool) ([]model.Vehicle, error)
	Update(ctx context.Context, vid int64, u model.VehicleUpdate) (*model.Vehicle, error)
	Delete(ctx context.Context, vid int64) error
	ToggleFavorite(ctx context.Context, vid int64) (*model.Vehicle, error)
	Search(ctx context.Context, term string) ([]model.Vehicle, error)
}

type Vehicles interface {
	Conn(Conn) VehiclesConnQueryer
	Tx(Tx) VehiclesTxQueryer
}
