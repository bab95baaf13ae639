package config

import (
	"fmt"
	"strings"
)

type EnvVars struct {
	Port    string `env:"PORT" envDefault:"8002"`
	AppName string `env:"APP_NAME" envDefault:"NoteBridge"`
	Env     string `env:"ENV" envDefault:"DEV"`
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetPort() string {
	if strings.HasPrefix(e.Port, ":") {
		return e.Port
	}
	return fmt.Sprintf(":%s", e.Port)
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	return e.Env
}
