package vehiclesrp

import (
	"context"
	"fmt"

	"github.com/ozkat/fleetweb/pkg/adapter/db/postgres"
	"github.com/ozkat/fleetweb/pkg/core/cerr"
	"github.com/ozkat/fleetweb/pkg/core/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gVehicle struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Name        string
	Category    string
	ModelCode   string `gorm:"column:model"`
	Year        int
	Price       *float64
	Description *string
	ImageURL    *string `gorm:"column:image_url"`
	Favorite    bool
}

func (gv *gVehicle) TableName() string {
	return "vehicles"
}

func (gv *gVehicle) Model() *model.Vehicle {
	return &model.Vehicle{
		ID:          gv.ID,
		Name:        gv.Name,
		Category:    gv.Category,
		Model:       gv.ModelCode,
		Year:        gv.Year,
		Price:       gv.Price,
		Description: gv.Description,
		ImageURL:    gv.ImageURL,
		Favorite:    gv.Favorite,
	}
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, f model.VehicleFields) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	gv := gVehicle{
		Name:        f.Name,
		Category:    f.Category,
		ModelCode:   f.Model,
		Year:        f.Year,
		Price:       f.Price,
		Description: f.Description,
		ImageURL:    f.ImageURL,
	}
	if err := gdb.Create(&gv).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return gv.Model(), nil
}

func Get[Q postgres.Queryer](ctx context.Context, q Q, vid int64) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gv []gVehicle
	if err := gdb.Where("id=?", vid).Limit(1).Find(&gv).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gv); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("no vehicle with id %d", vid),
		)
	}
	return gv[0].Model(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q, favorite *bool) ([]model.Vehicle, error) {
	gdb := q.GORM(ctx)
	if favorite != nil {
		gdb = gdb.Where("favorite=?", *favorite)
	}
	var gvs []gVehicle
	if err := gdb.Order("id").Find(&gvs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return vehicles(gvs), nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, vid int64, u model.VehicleUpdate) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	cols := make(map[string]any)
	setCol(cols, "name", u.Name)
	setCol(cols, "category", u.Category)
	setCol(cols, "model", u.Model)
	setCol(cols, "year", u.Year)
	setCol(cols, "price", u.Price)
	setCol(cols, "description", u.Description)
	setCol(cols, "image_url", u.ImageURL)
	setCol(cols, "favorite", u.Favorite)
	var gv []gVehicle
	res := gdb.Model(&gv).Clauses(clause.Returning{}).Where(
		"id=?", vid,
	).Updates(cols)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gv); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("no vehicle with id %d", vid),
		)
	}
	return gv[0].Model(), nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, vid int64) error {
	gdb := q.GORM(ctx)
	res := gdb.Delete(&gVehicle{}, vid)
	if err := res.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if res.RowsAffected != 1 {
		return cerr.NotFound(
			fmt.Errorf("no vehicle with id %d", vid),
		)
	}
	return nil
}

func ToggleFavorite[Q postgres.Queryer](ctx context.Context, q Q, vid int64) (*model.Vehicle, error) {
	gdb := q.GORM(ctx)
	var gv []gVehicle
	res := gdb.Model(&gv).Clauses(clause.Returning{}).Where(
		"id=?", vid,
	).Updates(map[string]any{
		"favorite": gorm.Expr("NOT favorite"),
	})
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gv); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("no vehicle with id %d", vid),
		)
	}
	return gv[0].Model(), nil
}

func Search[Q postgres.Queryer](ctx context.Context, q Q, term string) ([]model.Vehicle, error) {
	gdb := q.GORM(ctx)
	pattern := "%" + term + "%"
	var gvs []gVehicle
	err := gdb.Where(
		"name ILIKE ? OR category ILIKE ? OR model ILIKE ?",
		pattern, pattern, pattern,
	).Order("id").Find(&gvs).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return vehicles(gvs), nil
}

// setCol registers an update column only if its field is present.
func setCol[T any](cols map[string]any, name string, field *T) {
	if field != nil {
		cols[name] = *field
	}
}

func vehicles(gvs []gVehicle) []model.Vehicle {
	vs := make([]model.Vehicle, 0, len(gvs))
	for i := range gvs {
		vs = append(vs, *gvs[i].Model())
	}
	return vs
}
