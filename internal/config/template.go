package config

// defaultProvidersYAML seeds a fresh config directory. Everything ships
// disabled so a bare `freerouter fetch` never hits the network by accident.
const defaultProvidersYAML = `# FreeRouter provider configuration
#
# Set enabled: true for the providers you want, then run:
#   freerouter fetch
#   freerouter start
#
# API keys can reference environment variables with the ENV: prefix.

providers:
  - type: openrouter
    enabled: false
    api_key: ENV:OPENROUTER_API_KEY

  - type: ollama
    enabled: false
    api_base: http://localhost:11434

  - type: modelscope
    enabled: false
    api_key: ENV:MODELSCOPE_API_KEY

  - type: iflow
    enabled: false
    api_key: ENV:IFLOW_API_KEY

  # Generic OpenAI-compatible service with a custom name.
  - type: oai
    enabled: false
    name: myservice
    api_base: https://api.example.com/v1
    api_key: ENV:MYSERVICE_API_KEY

  # Fixed single-model route, no catalog endpoint needed.
  - type: static
    enabled: false
    model_name: gpt-4o
    provider: openai
    api_base: https://api.openai.com/v1
    api_key: ENV:OPENAI_API_KEY
`
