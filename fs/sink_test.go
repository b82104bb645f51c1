package fs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/newswire"
	"github.com/fwojciec/newswire/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_Append(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := fs.NewSink(&buf)

	batch := &newswire.Batch{
		RunID: "run-1",
		Articles: []*newswire.Article{
			{Title: "First", Link: "https://example.com/1"},
			{Title: "Second", Link: "https://example.com/2"},
		},
	}

	require.NoError(t, sink.Append(context.Background(), batch))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first struct {
		RunID string `json:"runId"`
		Title string `json:"title"`
		Link  string `json:"link"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "run-1", first.RunID)
	assert.Equal(t, "First", first.Title)
	assert.Equal(t, "https://example.com/1", first.Link)
}

func TestSink_Append_RejectsInvalidArticle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := fs.NewSink(&buf)

	batch := &newswire.Batch{
		RunID:    "run-1",
		Articles: []*newswire.Article{{Title: "No link"}},
	}

	err := sink.Append(context.Background(), batch)

	require.Error(t, err)
	assert.Equal(t, newswire.EINVALID, newswire.ErrorCode(err))
}

func TestSink_Append_EmptyBatchWritesNothing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := fs.NewSink(&buf)

	require.NoError(t, sink.Append(context.Background(), &newswire.Batch{RunID: "run-1"}))
	assert.Zero(t, buf.Len())
}
