package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"15"`

	// Zona de visualización para las etiquetas de día del chat. Los
	// timestamps se guardan siempre en UTC.
	ChatTimezone string `env:"CHAT_TIMEZONE" envDefault:"Asia/Jakarta"`

	// Tarifa por revelación de contacto, en unidades menores de IDR.
	ContactFee int64 `env:"CONTACT_FEE" envDefault:"10000"`

	// Ventana de sesión durante la cual una revelación otorgada no se
	// vuelve a cobrar.
	RevealGrantTTLMinutes int `env:"REVEAL_GRANT_TTL_MINUTES" envDefault:"720"`

	SendRateWindowSeconds int `env:"SEND_RATE_WINDOW_SECONDS" envDefault:"60"`
	SendRateMax           int `env:"SEND_RATE_MAX" envDefault:"20"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
