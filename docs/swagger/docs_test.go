package swagger_test

import (
	"encoding/json"
	"testing"

	"artifact-planner/docs/swagger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocument(t *testing.T) {
	doc, err := swag.ReadDoc(swagger.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "Artifact Planner API", parsed["info"].(map[string]any)["title"])

	paths := parsed["paths"].(map[string]any)
	assert.Contains(t, paths, "/loadout/plan")
	assert.Contains(t, paths, "/loadout/earnings")
	assert.Contains(t, paths, "/loadout/strategies")
	assert.Contains(t, paths, "/integrity/structure")
	assert.Contains(t, paths, "/integrity/catalog/refresh")
}
