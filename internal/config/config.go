package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del bot.
type Config struct {
	HTTPPort           string `env:"HTTP_PORT" envDefault:"8080"`
	CopperxAPIURL      string `env:"COPPERX_API_URL,required"`
	HTTPTimeoutSeconds int    `env:"HTTP_TIMEOUT_SECONDS" envDefault:"10"`
	PusherAppKey       string `env:"PUSHER_APP_KEY" envDefault:"e089376087cac1a62785"`
	PusherCluster      string `env:"PUSHER_APP_CLUSTER" envDefault:"ap1"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
