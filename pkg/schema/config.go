package schema

// RawModel is a single model entry as returned by an upstream catalog.
// The shape varies per provider; only "id" is commonly present.
type RawModel map[string]interface{}

// ID returns the model identifier, or "unknown" when the upstream
// omitted the field.
func (m RawModel) ID() string {
	if id, ok := m["id"].(string); ok && id != "" {
		return id
	}
	return "unknown"
}

// Service is one normalized routing entry in the generated LiteLLM config.
type Service struct {
	ModelName     string        `yaml:"model_name" json:"model_name"`
	LiteLLMParams LiteLLMParams `yaml:"litellm_params" json:"litellm_params"`
}

// LiteLLMParams tells the proxy how to reach the upstream model.
type LiteLLMParams struct {
	Model   string `yaml:"model" json:"model"`
	APIBase string `yaml:"api_base,omitempty" json:"api_base,omitempty"`
	APIKey  string `yaml:"api_key,omitempty" json:"api_key,omitempty"`
}

// Document is the complete config consumed by `litellm --config`.
// Field order here fixes the section order in the serialized YAML.
type Document struct {
	LiteLLMSettings LiteLLMSettings `yaml:"litellm_settings"`
	ModelList       []Service       `yaml:"model_list"`
	RouterSettings  RouterSettings  `yaml:"router_settings"`
}

type LiteLLMSettings struct {
	DropParams bool   `yaml:"drop_params"`
	SetVerbose bool   `yaml:"set_verbose"`
	MasterKey  string `yaml:"master_key"`
}

type RouterSettings struct {
	NumRetries int `yaml:"num_retries"`
	Timeout    int `yaml:"timeout"`
}
