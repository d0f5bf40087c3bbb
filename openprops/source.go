package openprops

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/basetoken/basetoken/log"
	"github.com/basetoken/basetoken/network"
)

// Source provides the raw text of an Open Props file by its logical name, e.g. "sizes".
type Source interface {
	Fetch(ctx context.Context, name string) (string, error)
}

// HTTPSource downloads files from a mirror of the Open Props src directory.
type HTTPSource struct {
	baseURL string
}

// NewHTTPSource returns a source reading {baseURL}/props.{name}.css.
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *HTTPSource) url(name string) string {
	return fmt.Sprintf("%s/props.%s.css", s.baseURL, name)
}

// Fetch downloads a file. Some upstream files are singular ("easing"), so a
// 404 for a plural name is retried without the trailing "s".
func (s *HTTPSource) Fetch(ctx context.Context, name string) (string, error) {
	log.Debugf("fetching open props %q", name)

	body, err := network.GetText(ctx, s.url(name))
	if err == nil {
		return body, nil
	}

	var status *network.StatusError
	if singular, ok := strings.CutSuffix(name, "s"); ok && errors.As(err, &status) && status.StatusCode == http.StatusNotFound {
		log.Debugf("open props %q not found, trying %q", name, singular)
		if body, retryErr := network.GetText(ctx, s.url(singular)); retryErr == nil {
			return body, nil
		}
	}

	return "", fmt.Errorf("fetch open props %s: %w", name, err)
}
