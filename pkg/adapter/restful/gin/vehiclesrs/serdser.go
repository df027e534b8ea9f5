package vehiclesrs

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/ozkat/fleetweb/pkg/adapter/restful/gin/serdser"
	"github.com/ozkat/fleetweb/pkg/core/model"
)

type rawVehicleCreateReq struct {
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Category    string   `json:"category" binding:"required,min=2,max=50"`
	Model       string   `json:"model" binding:"required,min=1,max=50"`
	Year        int      `json:"year" binding:"required,min=1950"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,max=500"`
}

type rawVehicleUpdateReq struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Category    *string  `json:"category" binding:"omitempty,min=2,max=50"`
	Model       *string  `json:"model" binding:"omitempty,min=1,max=50"`
	Year        *int     `json:"year" binding:"omitempty,min=1950"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,max=500"`
	Favorite    *bool    `json:"favorite"`
}

type rawVehicleListReq struct {
	Favorite *bool  `form:"favorite"`
	Term     string `form:"q"`
}

// VehicleResp is the serialized form of one vehicle record.
type VehicleResp struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Model       string   `json:"model"`
	Year        int      `json:"year"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Favorite    bool     `json:"favorite"`
}

// SerVehicle serializes the v vehicle model.
func SerVehicle(v *model.Vehicle) VehicleResp {
	return VehicleResp{
		ID:          v.ID,
		Name:        v.Name,
		Category:    v.Category,
		Model:       v.Model,
		Year:        v.Year,
		Price:       v.Price,
		Description: v.Description,
		ImageURL:    v.ImageURL,
		Favorite:    v.Favorite,
	}
}

func serVehicles(vs []model.Vehicle) []VehicleResp {
	out := make([]VehicleResp, 0, len(vs))
	for i := range vs {
		out = append(out, SerVehicle(&vs[i]))
	}
	return out
}

// DserVehicleID extracts and parses the vid path param.
func (rs *resource) DserVehicleID(c *gin.Context) (int64, bool) {
	vid, err := strconv.ParseInt(c.Param("vid"), 10, 64)
	if err != nil || vid <= 0 {
		var errs map[string][]string
		serdser.AddErr(
			&errs, "vid",
			"Path param vid is not a positive integer.",
		)
		c.JSON(http.StatusBadRequest, errs)
		return 0, false
	}
	return vid, true
}

func (rs *resource) DserCreateVehicleReq(c *gin.Context) *model.VehicleFields {
	req := &rawVehicleCreateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.VehicleFields{
		Name:        req.Name,
		Category:    req.Category,
		Model:       req.Model,
		Year:        req.Year,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}

func (rs *resource) DserUpdateVehicleReq(c *gin.Context) *model.VehicleUpdate {
	req := &rawVehicleUpdateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.VehicleUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Model:       req.Model,
		Year:        req.Year,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Favorite:    req.Favorite,
	}
}

func (rs *resource) DserListVehiclesReq(c *gin.Context) *rawVehicleListReq {
	req := &rawVehicleListReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	return req
}

func (rs *resource) listVehicles(c *gin.Context, favorite *bool) ([]VehicleResp, error) {
	vs, err := rs.vehicles.List(c, favorite)
	if err != nil {
		return nil, err
	}
	return serVehicles(vs), nil
}

func (rs *resource) searchVehicles(c *gin.Context, term string) ([]VehicleResp, error) {
	vs, err := rs.vehicles.Search(c, term)
	if err != nil {
		return nil, err
	}
	return serVehicles(vs), nil
}
