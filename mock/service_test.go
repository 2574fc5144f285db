package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/sift"
	"github.com/fwojciec/sift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where Service is expected
	var _ sift.Service = &mock.Service{}
}

func TestService_SearchWeb(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SearchWebFn", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		var gotMax int
		s := &mock.Service{
			SearchWebFn: func(_ context.Context, query string, maxResults int) (string, error) {
				gotQuery, gotMax = query, maxResults
				return "report", nil
			},
		}

		out, err := s.SearchWeb(context.Background(), "golang", 3)

		require.NoError(t, err)
		assert.Equal(t, "report", out)
		assert.Equal(t, "golang", gotQuery)
		assert.Equal(t, 3, gotMax)
	})
}
