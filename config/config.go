package config

import (
	"errors"
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	Certifier  Certifier
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

// Certifier holds the issuer's signing identity and the certificate
// templates this process issues. PrivateKey is a 32-byte hex secret and is
// validated at startup; the process refuses to serve with a missing or
// placeholder key.
type Certifier struct {
	PrivateKey string
	Types      []CertificateTypeConfig
}

// CertificateTypeConfig declares one issuable certificate type: a unique
// 32-byte base64 identifier and the ordered list of required field names.
type CertificateTypeConfig struct {
	TypeID string
	Fields []string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	return &c, nil
}
