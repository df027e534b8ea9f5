// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/goccy/go-json"
	"github.com/ozkat/fleetweb/internal/test/dbcontainer"
	"github.com/ozkat/fleetweb/pkg/adapter/config"
	"github.com/ozkat/fleetweb/pkg/adapter/db/postgres"
	"github.com/ozkat/fleetweb/pkg/adapter/restful/gin"
	"github.com/ozkat/fleetweb/pkg/adapter/restful/gin/routes"
	"github.com/ozkat/fleetweb/pkg/adapter/restful/gin/vehiclesrs"
	"github.com/ozkat/fleetweb/pkg/core/repo"
	"github.com/ozkat/fleetweb/pkg/core/stats"
	"github.com/stretchr/testify/suite"
)

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx     context.Context
	Pg      *sqltestutil.PostgresContainer
	Pool    *postgres.Pool
	Gin     *gin.Engine
	Tracker *stats.Tracker
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	sql, err := os.ReadFile("testdata/schema.sql")
	igts.Require().NoError(err, "failed to read schema.sql file")
	err = igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			_, err := c.Exec(ctx, string(sql))
			return err
		},
	)
	igts.Require().NoError(err, "failed to create schema contents")

	igts.Gin = gin.New(gin.Logger(), gin.Recovery())
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	igts.Tracker = stats.New()
	hashIters := 4096
	c := &config.Config{}
	c.Usecases.Users.HashIters = &hashIters
	err = routes.Register(igts.Gin, igts.Pool, igts.Tracker, c)
	igts.Require().NoError(err, "failed to register Gin routes")
}

func jsonBody(m map[string]any) io.Reader {
	b, err := json.Marshal(m)
	if err != nil {
		panic(err)
	}
	return bytes.NewReader(b)
}

func (igts *IntegrationGinTestSuite) sendReqRecvResp(
	method, path string, body io.Reader, res any,
) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(
		method, "/api/fleetweb/v1/"+path, body,
	)
	igts.Require().NoError(err, "cannot create %s request", method)
	req.Header.Add("Content-Type", "application/json")
	igts.Gin.ServeHTTP(w, req)
	if res != nil {
		b := w.Body.Bytes()
		igts.NoError(json.Unmarshal(b, res), "body is not json")
	}
	return w
}

func (igts *IntegrationGinTestSuite) createVehicle(
	fields map[string]any,
) vehiclesrs.VehicleResp {
	res := vehiclesrs.VehicleResp{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "vehicles", jsonBody(fields), &res,
	)
	igts.Require().Equal(201, w.Code, "failed to create vehicle")
	igts.Require().NotZero(res.ID, "created vehicle must take an id")
	return res
}

func (igts *IntegrationGinTestSuite) TestVehicleBadRequest() {
	for _, tc := range []struct {
		name string
		body map[string]any
	}{
		{
			name: "missing name",
			body: map[string]any{
				"category": "Yol Bakım",
				"model":    "KKA-2022",
				"year":     2022,
			},
		},
		{
			name: "short name",
			body: map[string]any{
				"name":     "K",
				"category": "Yol Bakım",
				"model":    "KKA-2022",
				"year":     2022,
			},
		},
		{
			name: "year too old",
			body: map[string]any{
				"name":     "Kar Küreme Aracı",
				"category": "Yol Bakım",
				"model":    "KKA-2022",
				"year":     1900,
			},
		},
		{
			name: "negative price",
			body: map[string]any{
				"name":     "Kar Küreme Aracı",
				"category": "Yol Bakım",
				"model":    "KKA-2022",
				"year":     2022,
				"price":    -1,
			},
		},
	} {
		igts.Run(tc.name, func() {
			w := igts.sendReqRecvResp(
				http.MethodPost, "vehicles", jsonBody(tc.body), nil,
			)
			igts.Equal(400, w.Code)
		})
	}
}

func (igts *IntegrationGinTestSuite) TestVehicleNotFound() {
	for _, tc := range []struct {
		name, method, path string
		body               io.Reader
	}{
		{
			name:   "get",
			method: http.MethodGet,
			path:   "vehicles/999999",
		},
		{
			name:   "update",
			method: http.MethodPut,
			path:   "vehicles/999999",
			body:   jsonBody(map[string]any{"year": 2020}),
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "vehicles/999999",
		},
		{
			name:   "toggle",
			method: http.MethodPatch,
			path:   "vehicles/999999/favorite",
		},
	} {
		igts.Run(tc.name, func() {
			w := igts.sendReqRecvResp(tc.method, tc.path, tc.body, nil)
			igts.Equal(404, w.Code)
		})
	}
}

func (igts *IntegrationGinTestSuite) TestInvalidVehicleID() {
	w := igts.sendReqRecvResp(http.MethodGet, "vehicles/abc", nil, nil)
	igts.Equal(400, w.Code)
	w = igts.sendReqRecvResp(http.MethodGet, "vehicles/-1", nil, nil)
	igts.Equal(400, w.Code)
}

func (igts *IntegrationGinTestSuite) TestVehicleLifecycle() {
	created := igts.createVehicle(map[string]any{
		"name":        "Vidanjör",
		"category":    "Altyapı",
		"model":       "VD-2019",
		"year":        2019,
		"price":       540000,
		"description": "Kanal açma ve temizleme aracı",
	})
	igts.Equal("Vidanjör", created.Name)
	igts.Require().NotNil(created.Price)
	igts.Equal(540000.0, *created.Price)
	igts.False(created.Favorite)

	fetched := vehiclesrs.VehicleResp{}
	w := igts.sendReqRecvResp(
		http.MethodGet, "vehicles/"+itoa(created.ID), nil, &fetched,
	)
	igts.Equal(200, w.Code)
	igts.Equal(created, fetched)

	updated := vehiclesrs.VehicleResp{}
	w = igts.sendReqRecvResp(
		http.MethodPut, "vehicles/"+itoa(created.ID),
		jsonBody(map[string]any{"year": 2021}),
		&updated,
	)
	igts.Equal(200, w.Code)
	igts.Equal(2021, updated.Year)
	igts.Equal(created.Name, updated.Name, "absent fields unchanged")

	w = igts.sendReqRecvResp(
		http.MethodPut, "vehicles/"+itoa(created.ID),
		jsonBody(map[string]any{}), nil,
	)
	igts.Equal(400, w.Code, "empty update must be rejected")

	toggled := vehiclesrs.VehicleResp{}
	w = igts.sendReqRecvResp(
		http.MethodPatch, "vehicles/"+itoa(created.ID)+"/favorite",
		nil, &toggled,
	)
	igts.Equal(200, w.Code)
	igts.True(toggled.Favorite)

	w = igts.sendReqRecvResp(
		http.MethodDelete, "vehicles/"+itoa(created.ID), nil, nil,
	)
	igts.Equal(200, w.Code)
	w = igts.sendReqRecvResp(
		http.MethodGet, "vehicles/"+itoa(created.ID), nil, nil,
	)
	igts.Equal(404, w.Code)
}

func (igts *IntegrationGinTestSuite) TestListAndSearch() {
	igts.createVehicle(map[string]any{
		"name":     "Asfalt Silindiri",
		"category": "Yol Yapım",
		"model":    "AS-2018",
		"year":     2018,
	})
	sweeper := igts.createVehicle(map[string]any{
		"name":     "Yol Süpürme Aracı",
		"category": "Temizlik Hizmeti",
		"model":    "YS-2023",
		"year":     2023,
	})
	w := igts.sendReqRecvResp(
		http.MethodPatch, "vehicles/"+itoa(sweeper.ID)+"/favorite",
		nil, nil,
	)
	igts.Require().Equal(200, w.Code)

	all := []vehiclesrs.VehicleResp{}
	w = igts.sendReqRecvResp(http.MethodGet, "vehicles", nil, &all)
	igts.Equal(200, w.Code)
	igts.GreaterOrEqual(len(all), 2)

	favs := []vehiclesrs.VehicleResp{}
	w = igts.sendReqRecvResp(
		http.MethodGet, "vehicles?favorite=true", nil, &favs,
	)
	igts.Equal(200, w.Code)
	igts.Require().NotEmpty(favs)
	seen := false
	for _, v := range favs {
		igts.True(v.Favorite, "favorite filter must hold")
		seen = seen || v.ID == sweeper.ID
	}
	igts.True(seen, "toggled vehicle must be listed as favorite")

	igts.Run("search by name", func() {
		vs := []vehiclesrs.VehicleResp{}
		w := igts.sendReqRecvResp(
			http.MethodGet, "vehicles?q=silindir", nil, &vs,
		)
		igts.Equal(200, w.Code)
		igts.Require().Len(vs, 1)
		igts.Equal("Asfalt Silindiri", vs[0].Name)
	})
	igts.Run("search by model", func() {
		vs := []vehiclesrs.VehicleResp{}
		w := igts.sendReqRecvResp(
			http.MethodGet, "vehicles?q=ys-2023", nil, &vs,
		)
		igts.Equal(200, w.Code)
		igts.Len(vs, 1)
	})
	igts.Run("no match", func() {
		vs := []vehiclesrs.VehicleResp{}
		w := igts.sendReqRecvResp(
			http.MethodGet, "vehicles?q=helikopter", nil, &vs,
		)
		igts.Equal(200, w.Code)
		igts.Empty(vs)
	})
	igts.Run("blank term", func() {
		w := igts.sendReqRecvResp(
			http.MethodGet, "vehicles?q=%20%20", nil, nil,
		)
		igts.Equal(400, w.Code)
	})
}

func (igts *IntegrationGinTestSuite) TestUsersAndLogin() {
	res := &struct {
		ID       string
		Username string
		Admin    bool
	}{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "users",
		jsonBody(map[string]any{
			"username": "gin-test-user",
			"password": "user123",
		}),
		res,
	)
	igts.Require().Equal(201, w.Code)
	igts.Equal("gin-test-user", res.Username)
	igts.False(res.Admin)
	igts.NotEmpty(res.ID)

	igts.Run("duplicate username", func() {
		w := igts.sendReqRecvResp(
			http.MethodPost, "users",
			jsonBody(map[string]any{
				"username": "gin-test-user",
				"password": "user456",
			}),
			nil,
		)
		igts.Equal(409, w.Code)
	})
	igts.Run("short password", func() {
		w := igts.sendReqRecvResp(
			http.MethodPost, "users",
			jsonBody(map[string]any{
				"username": "another-user",
				"password": "123",
			}),
			nil,
		)
		igts.Equal(400, w.Code)
	})
	igts.Run("login matching password", func() {
		login := &struct {
			Success bool
			Message string
			User    struct {
				Username string
				Admin    bool
			}
		}{}
		w := igts.sendReqRecvResp(
			http.MethodPost, "login",
			jsonBody(map[string]any{
				"username": "gin-test-user",
				"password": "user123",
			}),
			login,
		)
		igts.Equal(200, w.Code)
		igts.True(login.Success)
		igts.Equal("login successful", login.Message)
		igts.Equal("gin-test-user", login.User.Username)
	})
	igts.Run("login wrong password", func() {
		res := &struct {
			Detail string
		}{}
		w := igts.sendReqRecvResp(
			http.MethodPost, "login",
			jsonBody(map[string]any{
				"username": "gin-test-user",
				"password": "user456",
			}),
			res,
		)
		igts.Equal(401, w.Code)
		igts.Equal("invalid username or password", res.Detail)
	})
	igts.Run("login unknown username", func() {
		res := &struct {
			Detail string
		}{}
		w := igts.sendReqRecvResp(
			http.MethodPost, "login",
			jsonBody(map[string]any{
				"username": "who-is-this",
				"password": "user123",
			}),
			res,
		)
		igts.Equal(401, w.Code)
		igts.Equal(
			"invalid username or password", res.Detail,
			"unknown usernames must not be distinguishable",
		)
	})
}

func (igts *IntegrationGinTestSuite) TestStats() {
	// Tracker ids are independent from catalog rows, so a unique
	// fictional id keeps this test isolated from the others.
	const vid = "777"
	track := func(kind string) {
		res := &struct {
			Tracked bool
		}{}
		w := igts.sendReqRecvResp(
			http.MethodPost, "stats/"+kind+"/"+vid, nil, res,
		)
		igts.Equal(200, w.Code)
		igts.True(res.Tracked)
	}
	track("views")
	track("views")
	track("details")
	track("favorites")

	vs := stats.VehicleStats{}
	w := igts.sendReqRecvResp(
		http.MethodGet, "stats/vehicles/"+vid, nil, &vs,
	)
	igts.Equal(200, w.Code)
	igts.Equal(stats.VehicleStats{
		VehicleID:      777,
		Views:          2,
		FavoriteClicks: 1,
		DetailViews:    1,
		Total:          4,
	}, vs)

	igts.Run("dashboard", func() {
		d := stats.Dashboard{}
		w := igts.sendReqRecvResp(
			http.MethodGet, "stats/dashboard", nil, &d,
		)
		igts.Equal(200, w.Code)
		igts.GreaterOrEqual(d.TotalViews, int64(2))
		igts.GreaterOrEqual(d.TotalDetailViews, int64(1))
		igts.NotEmpty(d.TopVehicles)
		igts.LessOrEqual(len(d.TopVehicles), 5)
		igts.NotEmpty(d.Today.Date)
		igts.NotEmpty(d.Yesterday.Date)
	})
	igts.Run("trends default week", func() {
		ds := []stats.DailyStats{}
		w := igts.sendReqRecvResp(
			http.MethodGet, "stats/trends", nil, &ds,
		)
		igts.Equal(200, w.Code)
		igts.Len(ds, 7)
	})
	igts.Run("trends custom days", func() {
		ds := []stats.DailyStats{}
		w := igts.sendReqRecvResp(
			http.MethodGet, "stats/trends?days=30", nil, &ds,
		)
		igts.Equal(200, w.Code)
		igts.Len(ds, 30)
	})
	igts.Run("trends out of range", func() {
		w := igts.sendReqRecvResp(
			http.MethodGet, "stats/trends?days=0", nil, nil,
		)
		igts.Equal(400, w.Code)
		w = igts.sendReqRecvResp(
			http.MethodGet, "stats/trends?days=1000", nil, nil,
		)
		igts.Equal(400, w.Code)
	})
	igts.Run("invalid vid", func() {
		w := igts.sendReqRecvResp(
			http.MethodPost, "stats/views/abc", nil, nil,
		)
		igts.Equal(400, w.Code)
	})
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
