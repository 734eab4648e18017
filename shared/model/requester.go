package model

import (
	"strings"

	"vetclinic/shared/constant"
)

// Requester is the authenticated caller of an operation.
type Requester struct {
	Username string
	Role     string
}

func (r Requester) IsClient() bool {
	return strings.EqualFold(r.Role, constant.RoleClient)
}

func (r Requester) IsStaff() bool {
	return strings.EqualFold(r.Role, constant.RoleAdmin) || strings.EqualFold(r.Role, constant.RoleVet)
}
