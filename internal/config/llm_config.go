package config

import "time"

type LLMConfig interface {
	GetLLMAPIKey() string
	GetLLMBaseURL() string
	GetLLMModel() string
	GetLLMTemperature() float64
	GetLLMTimeout() time.Duration
}

type NotebookConfig interface {
	GetNotebookAPIURL() string
	GetNotebookTimeout() time.Duration
}

type LLM struct {
	APIKey      string        `env:"OPENAI_API_KEY"`
	BaseURL     string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model       string        `env:"MODEL" envDefault:"gpt-4o-mini"`
	Temperature float64       `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	Timeout     time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
}

var _ LLMConfig = LLM{}

func (l LLM) GetLLMAPIKey() string { return l.APIKey }
func (l LLM) GetLLMBaseURL() string { return l.BaseURL }
func (l LLM) GetLLMModel() string { return l.Model }
func (l LLM) GetLLMTemperature() float64 { return l.Temperature }
func (l LLM) GetLLMTimeout() time.Duration { return l.Timeout }

type Notebook struct {
	APIURL  string        `env:"NOTEBOOK_API_URL" envDefault:"https://graph.microsoft.com/v1.0/me/onenote"`
	Timeout time.Duration `env:"NOTEBOOK_TIMEOUT" envDefault:"10s"`
}

var _ NotebookConfig = Notebook{}

func (n Notebook) GetNotebookAPIURL() string {
	return n.APIURL
}

func (n Notebook) GetNotebookTimeout() time.Duration {
	return n.Timeout
}
