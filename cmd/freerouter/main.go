// FreeRouter aggregates model catalogs from free LLM providers into a
// single LiteLLM proxy configuration and supervises the proxy process.
//
// Usage:
//
//	# Initialize a provider configuration
//	freerouter init
//
//	# Fetch model catalogs and generate config.yaml
//	freerouter fetch
//
//	# Start / stop / inspect the proxy
//	freerouter start
//	freerouter stop
//	freerouter status
//
//	# Follow the proxy log, optionally reformatted
//	freerouter logs --filter
package main

import (
	"github.com/joho/godotenv"
	"github.com/mmdsnb/freerouter/internal/logger"

	// Import providers to trigger init() registration
	_ "github.com/mmdsnb/freerouter/internal/provider/iflow"
	_ "github.com/mmdsnb/freerouter/internal/provider/modelscope"
	_ "github.com/mmdsnb/freerouter/internal/provider/oai"
	_ "github.com/mmdsnb/freerouter/internal/provider/ollama"
	_ "github.com/mmdsnb/freerouter/internal/provider/openrouter"
	_ "github.com/mmdsnb/freerouter/internal/provider/static"
)

func main() {
	_ = godotenv.Load()
	logger.Initialize(logger.DefaultConfig())
	defer logger.Sync()

	Execute()
}
