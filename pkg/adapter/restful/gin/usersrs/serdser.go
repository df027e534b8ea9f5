package usersrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/ozkat/fleetweb/pkg/adapter/restful/gin/serdser"
	"github.com/ozkat/fleetweb/pkg/core/model"
)

type rawCredentialsReq struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

// UserResp is the serialized form of one user record. The password
// hash is deliberately not serializable.
type UserResp struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Admin    bool      `json:"admin"`
}

// LoginResp is the response of a successful login request.
type LoginResp struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    UserResp `json:"user"`
}

// SerUser serializes the u user model.
func SerUser(u *model.User) UserResp {
	return UserResp{
		ID:       u.ID,
		Username: u.Username,
		Admin:    u.Admin,
	}
}

func (rs *resource) DserCredentials(c *gin.Context) *model.Credentials {
	req := &rawCredentialsReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.Credentials{
		Username: req.Username,
		Password: req.Password,
	}
}
