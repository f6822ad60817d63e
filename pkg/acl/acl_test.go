package acl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminHasFullAccessEverywhere(t *testing.T) {
	for _, res := range Resources {
		for _, action := range []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete} {
			assert.True(t, Allowed(RoleAdmin, res, action), "admin %s on %s", action, res)
		}
	}
}

func TestStafCanCreateAndReadOnly(t *testing.T) {
	for _, res := range Resources {
		assert.True(t, Allowed(RoleStaf, res, ActionCreate))
		assert.True(t, Allowed(RoleStaf, res, ActionRead))
		assert.False(t, Allowed(RoleStaf, res, ActionUpdate))
		assert.False(t, Allowed(RoleStaf, res, ActionDelete))
	}
}

func TestViewerIsReadOnly(t *testing.T) {
	for _, res := range Resources {
		assert.True(t, Allowed(RoleViewer, res, ActionRead))
		assert.False(t, Allowed(RoleViewer, res, ActionCreate))
		assert.False(t, Allowed(RoleViewer, res, ActionUpdate))
		assert.False(t, Allowed(RoleViewer, res, ActionDelete))
	}
}

func TestUnknownRoleAndResourceDenied(t *testing.T) {
	assert.False(t, Allowed(Role("kepala"), "kendaraan", ActionRead))
	assert.False(t, Allowed(RoleAdmin, "gudang", ActionRead))
}

func TestRoleValidation(t *testing.T) {
	assert.True(t, Role("admin").IsValid())
	assert.True(t, Role("staf").IsValid())
	assert.True(t, Role("viewer").IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}
