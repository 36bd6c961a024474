// Package integrations looks up bottle details from external whiskey
// databases. Integrations are selected by name from the configuration.
package integrations

import (
	"go.uber.org/zap"

	"mortlach.dev/Rickhouse/pkg/integrations/whiskybase-web"
	"mortlach.dev/Rickhouse/pkg/model"
)

type Integration interface {
	FindBottle(name string) ([]model.Bottle, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == whiskybaseweb.IntegrationName {
		return whiskybaseweb.NewWhiskybaseWebIntegration(logger)
	}

	return nil
}
