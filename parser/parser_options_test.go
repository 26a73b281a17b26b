package parser

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWithOptions_FilePath(t *testing.T) {
	result, err := ParseWithOptions(WithFilePath("../testdata/petstore-2.0.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "2.0", result.Version)
	assert.Equal(t, "Petstore API", result.Document.Info.Title)
}

func TestParseWithOptions_Reader(t *testing.T) {
	file, err := os.Open("../testdata/petstore-2.0.yaml")
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	result, err := ParseWithOptions(WithReader(file))
	require.NoError(t, err)
	assert.Equal(t, "ParseReader.yaml", result.SourcePath)
}

func TestParseWithOptions_Bytes(t *testing.T) {
	data, err := os.ReadFile("../testdata/petstore-2.0.json")
	require.NoError(t, err)

	result, err := ParseWithOptions(WithBytes(data))
	require.NoError(t, err)
	assert.Equal(t, "ParseBytes.json", result.SourcePath)
}

func TestParseWithOptions_SourceName(t *testing.T) {
	data := []byte(`{"swagger":"2.0","info":{"title":"t","version":"1"},"paths":{}}`)
	result, err := ParseWithOptions(
		WithBytes(data),
		WithSourceName("users-api"),
	)
	require.NoError(t, err)
	assert.Equal(t, "users-api", result.SourcePath)
}

func TestParseWithOptions_Logger(t *testing.T) {
	var buf strings.Builder
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	data := []byte(`{"swagger":"2.0","info":{"title":"t","version":"1"},"paths":{}}`)

	_, err := ParseWithOptions(
		WithBytes(data),
		WithLogger(NewSlogAdapter(slog.New(handler))),
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "parsed document")
}

func TestParseWithOptions_Validation(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr string
	}{
		{
			name:    "no input source",
			opts:    nil,
			wantErr: "must specify an input source",
		},
		{
			name: "multiple input sources",
			opts: []Option{
				WithBytes([]byte("{}")),
				WithReader(strings.NewReader("{}")),
			},
			wantErr: "exactly one input source",
		},
		{
			name:    "nil reader",
			opts:    []Option{WithReader(nil)},
			wantErr: "reader cannot be nil",
		},
		{
			name:    "nil bytes",
			opts:    []Option{WithBytes(nil)},
			wantErr: "bytes cannot be nil",
		},
		{
			name: "empty source name",
			opts: []Option{
				WithBytes([]byte("{}")),
				WithSourceName(""),
			},
			wantErr: "source name cannot be empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWithOptions(tt.opts...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
