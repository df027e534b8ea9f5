// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package usersrs realizes the users resource, allowing the account
// related REST APIs to be accepted and delegated to the users use
// case.
package usersrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozkat/fleetweb/pkg/adapter/restful/gin/serdser"
	"github.com/ozkat/fleetweb/pkg/core/usecase/useruc"
)

type resource struct {
	users *useruc.UseCase
}

// Register instantiates a resource adapting the users use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/fleetweb/v1/users
//     in order to create a non-admin user,
//  2. POST request to /api/fleetweb/v1/login
//     in order to authenticate an existing user.
func Register(r *gin.RouterGroup, users *useruc.UseCase) {
	rs := &resource{users: users}
	r.POST("users", rs.CreateUser)
	r.POST("login", rs.Login)
}

func (rs *resource) CreateUser(c *gin.Context) {
	creds := rs.DserCredentials(c)
	if creds == nil {
		return
	}
	u, err := rs.users.Create(c, *creds)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, SerUser(u))
}

func (rs *resource) Login(c *gin.Context) {
	creds := rs.DserCredentials(c)
	if creds == nil {
		return
	}
	u, err := rs.users.Authenticate(c, *creds)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResp{
		Success: true,
		Message: "login successful",
		User:    SerUser(u),
	})
}
