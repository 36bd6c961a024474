package whiskybaseweb

import (
	"net/url"

	"go.uber.org/zap"
)

const IntegrationName = "whiskybase_web"

const defaultBaseURL = "https://www.whiskybase.com"

type WhiskybaseWebIntegration struct {
	logger *zap.Logger

	// BaseURL can be pointed at a test server; the allowed domain for the
	// collector is derived from it.
	BaseURL string
}

func NewWhiskybaseWebIntegration(logger *zap.Logger) *WhiskybaseWebIntegration {
	return &WhiskybaseWebIntegration{logger: logger, BaseURL: defaultBaseURL}
}

func (w *WhiskybaseWebIntegration) allowedDomain() string {
	parsed, err := url.Parse(w.BaseURL)
	if err != nil {
		return ""
	}

	return parsed.Hostname()
}
