package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic/permissions"
)

func TestGet_VisitRoutes(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	create := data.FindPermissions("/v1/visits/", "POST")
	assert.True(t, create.Allows("client"))
	assert.True(t, create.Allows("Admin"))

	finalize := data.FindPermissions("/v1/visits/{id}", "PATCH")
	assert.True(t, finalize.Allows("vet"))
	assert.False(t, finalize.Allows("client"))

	assert.True(t, data.FindPermissions("/health", "GET").Skip)
}

func TestFindPermissions_Unknown(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/a","method":"GET","permissions":["admin"]}]}`))
	require.NoError(t, err)

	missing := data.FindPermissions("/b", "GET")
	assert.Empty(t, missing.Path)
	assert.True(t, missing.Allows("anyone"))

	_, err = permissions.Parse([]byte(`{`))
	assert.Error(t, err)
}
