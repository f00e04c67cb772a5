package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the print agent.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the local callback server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// API holds the order-management API configuration.
	API APIConfig `mapstructure:",squash"`

	// Printing holds label output and dispatch configuration.
	Printing PrintConfig `mapstructure:",squash"`

	// RedisURL enables the printed-order guard when set.
	// Format: redis://[:password@]host[:port][/database]
	RedisURL string `mapstructure:"REDIS_URL"`
	// PrintedGuardTTLSeconds is how long a dispatched order id is remembered.
	PrintedGuardTTLSeconds int `mapstructure:"PRINTED_GUARD_TTL_SECONDS" default:"600"`
}

// APIConfig holds the connection details for the order-management API.
// URL and Token carry no defaults on purpose: startup must fail when they
// are missing instead of silently falling back to a baked-in value.
type APIConfig struct {
	// URL is the base URL of the API, e.g. https://example.com/api.
	URL string `mapstructure:"API_URL" required:"true"`
	// Token is the bearer token sent on every request.
	Token string `mapstructure:"API_TOKEN" required:"true"`
	// PollIntervalSeconds is the delay between poll cycles.
	PollIntervalSeconds int `mapstructure:"POLL_INTERVAL_SECONDS" default:"5"`
	// OrderDelayMS is the pause between orders within one cycle.
	OrderDelayMS int `mapstructure:"ORDER_DELAY_MS" default:"1000"`
}

// PrintConfig holds rendering and dispatch settings.
type PrintConfig struct {
	// OutputDir is where rendered label artifacts are written.
	OutputDir string `mapstructure:"LABEL_OUTPUT_DIR" default:"labels"`
	// AssetDir is where label images (logo, icons) are read from.
	AssetDir string `mapstructure:"LABEL_ASSET_DIR" default:"assets"`
	// BrowserBin overrides the probed headless browser binary.
	BrowserBin string `mapstructure:"BROWSER_BIN"`
	// TimeoutSeconds bounds PDF generation and external print processes.
	TimeoutSeconds int `mapstructure:"PRINT_TIMEOUT_SECONDS" default:"60"`
	// KeepIntermediatePDF retains the generated PDF even after a silent print.
	KeepIntermediatePDF bool `mapstructure:"KEEP_INTERMEDIATE_PDF" default:"false"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
