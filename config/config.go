package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the crop tool. Fields may be
// loaded from a JSON file next to the binary; defaults match the
// interactive tool's built-in behavior.
type Config struct {
	Debug bool `json:"debug"`

	// Preview constraints
	MaxPreviewWidth  int `json:"max_preview_width"`
	MaxPreviewHeight int `json:"max_preview_height"`

	// Selection handles
	HandleRadius int `json:"handle_radius"` // marker radius in preview pixels

	// Output
	JPEGQuality int `json:"jpeg_quality"`

	// Redraw tick of the event loop in milliseconds.
	TickMillis int `json:"tick_millis"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		MaxPreviewWidth:  1800,
		MaxPreviewHeight: 900,
		HandleRadius:     8,
		JPEGQuality:      95,
		TickMillis:       33,
	}
}

// GrabRadius is the distance within which a click grabs an existing
// handle, twice the drawn marker radius.
func (c *Config) GrabRadius() int { return c.HandleRadius * 2 }

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.MaxPreviewWidth < 100 {
		c.MaxPreviewWidth = 1800
	}
	if c.MaxPreviewHeight < 100 {
		c.MaxPreviewHeight = 900
	}
	if c.HandleRadius < 2 {
		c.HandleRadius = 8
	}
	if c.JPEGQuality <= 0 || c.JPEGQuality > 100 {
		c.JPEGQuality = 95
	}
	if c.TickMillis < 5 || c.TickMillis > 1000 {
		c.TickMillis = 33
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
