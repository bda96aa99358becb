package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glance/internal/domain"
)

const sampleFeed = `
[[items]]
id = 1
kind = "text"
title = "Go Tips"
description = "Small idioms"

[[items]]
id = 2
kind = "image"
image_url = "https://example.com/gopher.png"
caption = "A gopher"
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFeed), 0644))

	items, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.FeedItem{
		domain.TextItem{ID: 1, Title: "Go Tips", Description: "Small idioms"},
		domain.ImageItem{ID: 2, ImageURL: "https://example.com/gopher.png", Caption: "A gopher"},
	}, items)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read feed file")
}

func TestParseRejectsBadData(t *testing.T) {
	_, err := Parse([]byte("[[items]]\nid = 1\nkind = \"video\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")

	_, err = Parse([]byte("[[items]]\nid = 1\nkind = \"text\"\n[[items]]\nid = 1\nkind = \"image\"\n"))
	require.ErrorIs(t, err, ErrDuplicateID)

	_, err = Parse([]byte("items = ["))
	require.Error(t, err)
}

func TestEncodeThenParseDefaultFeed(t *testing.T) {
	data, err := Encode(Default())
	require.NoError(t, err)

	items, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), items)
}
