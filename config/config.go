package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"jailoo/internal/infrastructure/broker"
	"jailoo/internal/infrastructure/database"
	"jailoo/internal/infrastructure/minio"
	"jailoo/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Address         string                 `yaml:"address"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Auth            AuthConfig             `yaml:"auth"`
	Logger          logger.Config          `yaml:"logger"`
}

type AuthConfig struct {
	Secret string
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Auth.Secret = os.Getenv("AUTH_JWT_SECRET")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Address == "" {
		return Error{reason: "address is not set"}
	}
	if c.Auth.Secret == "" {
		return Error{reason: "AUTH_JWT_SECRET is not set"}
	}

	return nil
}
