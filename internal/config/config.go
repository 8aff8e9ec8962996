package config

import (
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpPort        int      `yaml:"http_port" validate:"required"`
	LogLevel        string   `yaml:"log_level"`
	LogJSON         bool     `yaml:"log_json"`
	AccessTokenTTL  Duration `yaml:"access_token_ttl" validate:"required"`
	RefreshTokenTTL Duration `yaml:"refresh_token_ttl" validate:"required"`
	Pg              Pg       `yaml:"pg"`
}

// Duration accepts values like "15m" or "720h" in yaml.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

type Pg struct {
	Host   string `yaml:"host" validate:"required"`
	Port   int    `yaml:"port" validate:"required"`
	User   string `yaml:"user" validate:"required"`
	Dbname string `yaml:"dbname" validate:"required"`
}

type Private struct {
	PgPassword      string `yaml:"pg_password" validate:"required"`
	AccessTokenKey  string `yaml:"access_token_key" validate:"required"`
	RefreshTokenKey string `yaml:"refresh_token_key" validate:"required"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder. Panics on
// any problem; the process cannot run without config.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		panic("config is incomplete: " + err.Error())
	}

	return cfg
}
