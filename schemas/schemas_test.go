package schemas

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-chat/internal/cvparser"
	"github.com/jonathan/cv-chat/internal/schemas"
	"github.com/jonathan/cv-chat/internal/store"
	"github.com/jonathan/cv-chat/internal/types"
)

const profileSchema = "cv_profile.schema.json"

func TestProfileSchema_ValidJSONSchema(t *testing.T) {
	data, err := os.ReadFile(profileSchema)
	require.NoError(t, err)

	var schemaObj map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schemaObj))

	assert.Equal(t, "object", schemaObj["type"])
	assert.Contains(t, schemaObj, "$schema")
	assert.Contains(t, schemaObj, "definitions")
}

func TestProfileSchema_AcceptsDefaultProfile(t *testing.T) {
	doc, err := json.Marshal(store.DefaultProfile(time.Now()))
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateBytes(profileSchema, doc))
}

func TestProfileSchema_AcceptsParsedProfile(t *testing.T) {
	patch, err := cvparser.Parse("# Jane Smith\n\nTitle: Data Analyst\n\n## Skills\n- SQL, Python\n\n## Experience\n- Analyst at Acme - 2020 - 2022\n  - Built dashboards\n\n## Languages\n- German (Basic)\n")
	require.NoError(t, err)

	profile := &types.Profile{}
	profile.Apply(patch)

	doc, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NoError(t, schemas.ValidateBytes(profileSchema, doc))
}

func TestProfileSchema_RejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing lists", `{"name":"A","title":"B","location":"","bio":""}`},
		{"empty name", `{"name":"","title":"B","location":"","bio":"","experience":[],"skills":[],"certificates":[],"languages":[],"memberships":[]}`},
		{"experience missing company", `{"name":"A","title":"B","location":"","bio":"","experience":[{"title":"x","period":"y","description":""}],"skills":[],"certificates":[],"languages":[],"memberships":[]}`},
		{"language extra field", `{"name":"A","title":"B","location":"","bio":"","experience":[],"skills":[],"certificates":[],"languages":[{"name":"x","level":"y","context":"","extra":1}],"memberships":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.ValidateBytes(profileSchema, []byte(tt.doc))
			var validationErr *schemas.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}
