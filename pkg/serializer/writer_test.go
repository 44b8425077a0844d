package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Name  string         `json:"name" yaml:"name"`
	Count int            `json:"count" yaml:"count"`
	Tags  map[string]int `json:"tags" yaml:"tags"`
}

func TestWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)
	defer w.Close()

	in := sample{Name: "core-sw1", Count: 2, Tags: map[string]int{"vlan": 100}}
	require.NoError(t, w.Serialize(context.Background(), in))

	var out sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

func TestWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)
	defer w.Close()

	in := sample{Name: "core-sw1", Count: 2}
	require.NoError(t, w.Serialize(context.Background(), in))

	var out sample
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

func TestWriterTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	in := sample{Name: "core-sw1", Count: 2, Tags: map[string]int{"vlan": 100}}
	require.NoError(t, w.Serialize(context.Background(), in))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "core-sw1")
	assert.Contains(t, out, "Tags.vlan")
}

func TestWriterTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)
	require.NoError(t, w.Serialize(context.Background(), struct{}{}))
	assert.Contains(t, buf.String(), "<empty>")
}

func TestWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)
	require.NoError(t, w.Serialize(context.Background(), sample{Name: "x"}))
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestSupportedFormats(t *testing.T) {
	assert.ElementsMatch(t, []string{"json", "yaml", "table"}, SupportedFormats())
	assert.False(t, FormatJSON.IsUnknown())
	assert.True(t, Format("xml").IsUnknown())
}

func TestFileWriterFallsBackToStdout(t *testing.T) {
	w := NewFileWriterOrStdout(FormatJSON, "")
	require.NotNil(t, w)
	assert.NoError(t, w.Close())
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, 200, sample{Name: "core-sw1"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var out sample
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "core-sw1", out.Name)
}
