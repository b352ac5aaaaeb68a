package config

import (
	"fmt"
	"strings"
	"time"

	"nextpdv/internal/models"

	"github.com/kelseyhightower/envconfig"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=nextpdv port=5432 sslmode=disable"

type Config struct {
	Env               string        `envconfig:"ENV" default:"production"`
	LogLevel          string        `envconfig:"LOG_LEVEL"`
	HTTPPort          string        `envconfig:"HTTP_PORT" default:"3001"`
	DatabaseDSN       string        `envconfig:"DATABASE_DSN" default:"host=localhost user=postgres password=postgres dbname=nextpdv port=5432 sslmode=disable"`
	AuthEnabled       bool          `envconfig:"AUTH_ENABLED" default:"false"`
	JWTSecret         string        `envconfig:"JWT_SECRET"`
	CORSOrigins       string        `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	UploadPath        string        `envconfig:"UPLOAD_PATH" default:"./uploads"` // pasta das imagens de produto
	PublicBaseURL     string        `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3001"`
	DeliveryTag       string        `envconfig:"DELIVERY_TAG" default:"entrega"`
	ReferenceCapacity int           `envconfig:"REFERENCE_CAPACITY" default:"12"` // pares de uma grade completa
	APIURL            string        `envconfig:"API_URL" default:"http://localhost:3001"`
	APITimeout        time.Duration `envconfig:"API_TIMEOUT" default:"15s"`
}

// Load lê as variáveis com prefixo PDV_ (ex: PDV_HTTP_PORT).
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("pdv", &cfg); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.AuthEnabled {
		if c.JWTSecret == "" {
			return fmt.Errorf("PDV_JWT_SECRET não definido com autenticação habilitada")
		}
		if len(c.JWTSecret) < 32 {
			return fmt.Errorf("PDV_JWT_SECRET deve ter pelo menos 32 caracteres")
		}
	}
	if c.ReferenceCapacity <= 0 {
		return fmt.Errorf("PDV_REFERENCE_CAPACITY deve ser maior que zero")
	}
	if strings.TrimSpace(c.DeliveryTag) == "" {
		return fmt.Errorf("PDV_DELIVERY_TAG não pode ser vazio")
	}
	c.DeliveryTag = models.NormalizeDeliveryTag(c.DeliveryTag)
	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	return nil
}

// Warnings lista configurações padrão que não devem ir para produção.
func (c *Config) Warnings() []string {
	var out []string
	if c.DatabaseDSN == defaultDSN {
		out = append(out, "PDV_DATABASE_DSN usando valor padrão, defina a conexão Postgres de produção")
	}
	if c.CORSOrigins == "http://localhost:5173" {
		out = append(out, "PDV_CORS_ALLOWED_ORIGINS usando valor padrão, defina o domínio do front-end")
	}
	if !c.AuthEnabled {
		out = append(out, "autenticação desabilitada (PDV_AUTH_ENABLED=false)")
	}
	return out
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// CORSOriginList normaliza a lista separada por vírgulas.
func (c *Config) CORSOriginList() string {
	parts := strings.Split(c.CORSOrigins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ",")
}
