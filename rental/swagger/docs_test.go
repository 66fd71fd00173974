package swagger

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDoc_Paths(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	require.Equal(t, "/api/v1", parsed.BasePath)

	paths := make([]string, 0, len(parsed.Paths))
	for p := range parsed.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	require.Equal(t, []string{
		"/movies",
		"/rentals",
		"/rentals/{rentalUid}/extend",
		"/rentals/{rentalUid}/return",
	}, paths)
}
