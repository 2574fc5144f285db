package mock

import (
	"context"

	"github.com/fwojciec/sift"
)

var _ sift.Service = (*Service)(nil)

// Service is a mock implementation of sift.Service.
type Service struct {
	SearchWebFn    func(ctx context.Context, query string, maxResults int) (string, error)
	SearchNewsFn   func(ctx context.Context, query string, maxResults int) (string, error)
	FetchContentFn func(ctx context.Context, url string, maxLength int) (string, error)
}

func (s *Service) SearchWeb(ctx context.Context, query string, maxResults int) (string, error) {
	return s.SearchWebFn(ctx, query, maxResults)
}

func (s *Service) SearchNews(ctx context.Context, query string, maxResults int) (string, error) {
	return s.SearchNewsFn(ctx, query, maxResults)
}

func (s *Service) FetchContent(ctx context.Context, url string, maxLength int) (string, error) {
	return s.FetchContentFn(ctx, url, maxLength)
}
