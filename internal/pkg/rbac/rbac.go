// Package rbac decides which role may perform which action on which resource.
package rbac

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/symplora/lms-backend-go/internal/domain/user"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

type Authorizer interface {
	Can(role user.Role, permission user.Permission) (bool, error)
}

type Enforcer struct {
	enforcer *casbin.SyncedEnforcer
}

// NewEnforcer builds an in-memory casbin enforcer from the role map.
func NewEnforcer(policies map[user.Role][]user.Permission) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("load rbac model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	for role, perms := range policies {
		for _, p := range perms {
			if _, err := e.AddPolicy(string(role), p.Resource, p.Action); err != nil {
				return nil, fmt.Errorf("add policy %s %s:%s: %w", role, p.Resource, p.Action, err)
			}
		}
	}

	return &Enforcer{enforcer: e}, nil
}

func (e *Enforcer) Can(role user.Role, permission user.Permission) (bool, error) {
	return e.enforcer.Enforce(string(role), permission.Resource, permission.Action)
}
