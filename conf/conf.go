package conf

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string     `env:"ENV" envDefault:"dev"`
	HttpAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	JwtKey   string     `env:"JWT_KEY"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	CorsOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	AwsRegion string `env:"AWS_REGION" envDefault:"eu-central-1"`

	Postgres PgConf

	// empty means rules are evaluated in-process
	ValidationURL     string        `env:"VALIDATION_URL"`
	ValidationTimeout time.Duration `env:"VALIDATION_TIMEOUT" envDefault:"5s"`

	// empty means certificate events are only logged
	CertEventsQueueURL string `env:"CERT_EVENTS_QUEUE_URL"`
	// bucket for archived certificate records, see skilldev-admin events
	CertArchiveBucket string `env:"CERT_ARCHIVE_BUCKET"`
}

type PgConf struct {
	Host               string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port               string `env:"POSTGRES_PORT" envDefault:"5432"`
	User               string `env:"POSTGRES_USER" envDefault:"skilldev"`
	Password           string `env:"POSTGRES_PW"`
	PasswordSecretName string `env:"POSTGRES_PASSWORD_SECRET_NAME"`
	DB                 string `env:"POSTGRES_DB" envDefault:"skilldev"`
	SslMode            string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// Load reads an optional .env file and parses the environment into Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ConnString resolves the postgres password and builds a libpq style
// connection string. Outside localhost the password is read from AWS
// Secrets Manager.
func (c Config) ConnString(ctx context.Context) (string, error) {
	pg := c.Postgres
	pw, err := c.resolvePgPassword(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		pg.Host, pg.Port, pg.User, quoteConnValue(pw), pg.DB, pg.SslMode), nil
}

// MigrateURL is the pgx5:// form golang-migrate expects.
func (c Config) MigrateURL(ctx context.Context) (string, error) {
	pg := c.Postgres
	pw, err := c.resolvePgPassword(ctx)
	if err != nil {
		return "", err
	}
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(pg.User, pw),
		Host:     pg.Host + ":" + pg.Port,
		Path:     "/" + pg.DB,
		RawQuery: "sslmode=" + pg.SslMode,
	}
	return u.String(), nil
}

func (c Config) resolvePgPassword(ctx context.Context) (string, error) {
	pg := c.Postgres
	if pg.Host == "localhost" || pg.PasswordSecretName == "" {
		return pg.Password, nil
	}
	secretValue, err := getSecretFromAWS(ctx, c.AwsRegion, pg.PasswordSecretName)
	if err != nil {
		return "", fmt.Errorf("failed to get postgres password from AWS: %w", err)
	}
	var secret struct {
		Password string `json:"password"`
	}
	if err := json.Unmarshal([]byte(secretValue), &secret); err != nil {
		return "", fmt.Errorf("failed to parse postgres password secret: %w", err)
	}
	return secret.Password, nil
}

func quoteConnValue(v string) string {
	if v == "" || strings.ContainsAny(v, ` '\`) {
		v = strings.ReplaceAll(v, `\`, `\\`)
		v = strings.ReplaceAll(v, `'`, `\'`)
		return "'" + v + "'"
	}
	return v
}

func getSecretFromAWS(ctx context.Context, region string, secretName string) (string, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return "", err
	}
	svc := secretsmanager.NewFromConfig(cfg)
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	result, err := svc.GetSecretValue(ctx, input)
	if err != nil {
		return "", err
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %q has no string value", secretName)
	}
	return *result.SecretString, nil
}
