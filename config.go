package luminary

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// configFilename is the dashboard settings file, looked up in the data directory.
const configFilename = ".lum.toml"

// Config holds the dashboard settings.
type Config struct {
	// Currency is the display currency for every money figure.
	Currency string `toml:"currency"`
	// BlueprintPassword is the access-gate password. A plain string compare,
	// not real authentication.
	BlueprintPassword string `toml:"blueprint-password"`
	// Model is the text-generation model used to draft the weekly menu.
	Model string `toml:"model"`
	// QuoteEndpoint overrides the stock quote service.
	QuoteEndpoint string `toml:"quote-endpoint"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Currency:          "USD",
		BlueprintPassword: "Akira123=",
		Model:             "gemini-2.5-flash",
	}
}

// LoadConfig reads the settings file from the data directory, returning the
// defaults when the file doesn't exist. It also loads a .env file, if any,
// so the text-generation credentials can live next to the data.
func LoadConfig(dir string) (Config, error) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))
	_ = godotenv.Load()

	cfg := DefaultConfig()
	data, err := os.ReadFile(filepath.Join(dir, configFilename))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
