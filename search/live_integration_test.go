//go:build integration

package search_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/sift"
	sifteetree "github.com/fwojciec/sift/etree"
	sifthtml "github.com/fwojciec/sift/html"
	sifthttp "github.com/fwojciec/sift/http"
	"github.com/fwojciec/sift/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liveService(allow sift.AllowList) *search.Service {
	normalizer := sifthtml.NewNormalizer()
	return &search.Service{
		Fetcher:    sifthttp.NewFetcher(sifthttp.WithTimeout(20 * time.Second)),
		Results:    sifthtml.NewResultParser(),
		Feeds:      sifteetree.NewFeedParser(normalizer),
		Normalizer: normalizer,
		AllowList:  allow,
	}
}

func TestService_Integration_SearchWeb(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	out, err := liveService(sift.NewAllowList("go.dev")).SearchWeb(ctx, "go modules reference", 3)

	require.NoError(t, err)
	require.NotEqual(t, sift.NoResults, out, "results page markup may have changed")
	assert.True(t, strings.HasPrefix(out, "Search results for: go modules reference"))
	assert.Contains(t, out, "go.dev")
	assert.NotContains(t, out, "uddg=")
}

func TestService_Integration_SearchNews(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	out, err := liveService(sift.NewAllowList()).SearchNews(ctx, "golang", 3)

	require.NoError(t, err)
	assert.Contains(t, out, "News for: golang")
	assert.Contains(t, out, "URL: https://")
}

func TestService_Integration_FetchContent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	out, err := liveService(sift.NewAllowList()).FetchContent(ctx, "https://go.dev/doc/", 500)

	require.NoError(t, err)
	assert.NotContains(t, out, "<script")
	assert.True(t, strings.HasSuffix(out, sift.TruncationMarker))
}
