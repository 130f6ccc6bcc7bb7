package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todohawk/todohawk/internal/types"
)

func TestWriteJSONEmitsArrayForNil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestWriteJSONKeepsScanOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample()))

	var decoded []types.Finding
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "web/app.js", decoded[0].Path, "JSON preserves scan order, unlike the table")
	assert.Equal(t, sample(), decoded)
}

func TestWriteJSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []types.Finding{
		{Path: "a.go", Line: 2, Text: "// TODO x", Kind: types.KindTODO},
	}))
	out := buf.String()
	for _, key := range []string{`"path"`, `"line"`, `"content"`, `"kind"`} {
		assert.Contains(t, out, key)
	}
}

func TestDetailsJSONCompact(t *testing.T) {
	s, err := DetailsJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", s)

	s, err = DetailsJSON([]types.Finding{{Path: "a.go", Line: 1, Text: "// TODO x", Kind: types.KindTODO}})
	require.NoError(t, err)
	assert.NotContains(t, s, "\n")
	assert.Contains(t, s, `"path":"a.go"`)
}
