package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// placeholder value shipped in the sample config; running with it means the
// user never set a real key
const placeholderAPIKey = "your_api_key_here"

type Config struct {
	TMDB    TMDB    `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	Images  Images  `json:"images" yaml:"images" mapstructure:"images"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
}

type TMDB struct {
	Scheme      string        `json:"scheme" yaml:"scheme" mapstructure:"scheme" validate:"required,oneof=http https"`
	Host        string        `json:"host" yaml:"host" mapstructure:"host" validate:"required"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey" validate:"required"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

// Images configures where poster paths are resolved against.
type Images struct {
	BaseURL string `json:"baseURL" yaml:"baseURL" mapstructure:"baseURL" validate:"required,url"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"required,gt=0,lte=65535"`
}

// Storage configuration is for the sqlite response cache only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

// Validate checks the configuration before anything starts serving. A missing
// or placeholder API key is a startup failure, not a runtime degradation.
func (c Config) Validate() error {
	if c.TMDB.APIKey == placeholderAPIKey {
		return fmt.Errorf("tmdb.apiKey is still the placeholder value, set a real API key")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}
