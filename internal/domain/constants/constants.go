// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal selects the local HTTP push publisher for development.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// EnvDevelop is the development environment name. Push authentication is
	// skipped there even for the Google provider.
	EnvDevelop = "develop"

	// EnvProduction is the production environment name.
	EnvProduction = "production"
)
