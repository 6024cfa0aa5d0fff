//go:build unit || e2e

package builder

import (
	reqdto "room-reservation/internal/handler/dto/request"
	"room-reservation/internal/pkg/config"
)

type AdminAccessBuilder struct {
	Password string
}

func NewAdminAccessBuilder() *AdminAccessBuilder {
	return &AdminAccessBuilder{
		Password: config.TestAdminPassword,
	}
}

func (a *AdminAccessBuilder) WithPassword(password string) *AdminAccessBuilder {
	a.Password = password
	return a
}

func (a *AdminAccessBuilder) BuildDTO() reqdto.AdminAccessRequest {
	return reqdto.AdminAccessRequest{
		Password: a.Password,
	}
}
