package config

import (
	"fmt"
	"os"
)

// Model artifact sources.
const (
	ModelSourceFile = "file"
	ModelSourceBlob = "blob"
)

const (
	EnvModelSource  = "PULSE_MODEL_SOURCE"
	EnvModelPath    = "PULSE_MODEL_PATH"
	EnvModelBlobKey = "PULSE_MODEL_BLOB_KEY"
)

// ModelConfig locates the trained classifier artifact. A file source reads
// Path from the local filesystem; a blob source downloads BlobKey from the
// configured storage container.
type ModelConfig struct {
	Source  string `toml:"source"`
	Path    string `toml:"path"`
	BlobKey string `toml:"blob_key"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ModelConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ModelConfig) Merge(overlay *ModelConfig) {
	if overlay.Source != "" {
		c.Source = overlay.Source
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if overlay.BlobKey != "" {
		c.BlobKey = overlay.BlobKey
	}
}

func (c *ModelConfig) loadDefaults() {
	if c.Source == "" {
		c.Source = ModelSourceFile
	}
	if c.Path == "" {
		c.Path = "model.json"
	}
	if c.BlobKey == "" {
		c.BlobKey = "model.json"
	}
}

func (c *ModelConfig) loadEnv() {
	if v := os.Getenv(EnvModelSource); v != "" {
		c.Source = v
	}
	if v := os.Getenv(EnvModelPath); v != "" {
		c.Path = v
	}
	if v := os.Getenv(EnvModelBlobKey); v != "" {
		c.BlobKey = v
	}
}

func (c *ModelConfig) validate() error {
	switch c.Source {
	case ModelSourceFile, ModelSourceBlob:
		return nil
	default:
		return fmt.Errorf("invalid source: %q", c.Source)
	}
}
