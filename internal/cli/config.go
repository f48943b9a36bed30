package cli

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/metaboclass/metaboclass/pkg/errors"
	"github.com/metaboclass/metaboclass/pkg/pipeline"
)

// config holds optional overrides for endpoints and politeness delays,
// loaded from a TOML file:
//
//	[hmdb]
//	base_url = "https://hmdb.ca"
//	delay = "1s"
//
//	[kegg]
//	base_url = "http://rest.kegg.jp"
//	delay = "500ms"
type config struct {
	HMDB sourceConfig `toml:"hmdb"`
	KEGG sourceConfig `toml:"kegg"`
}

type sourceConfig struct {
	BaseURL string   `toml:"base_url"`
	Delay   duration `toml:"delay"`
}

// duration wraps time.Duration so TOML values can use Go duration syntax
// ("1s", "500ms").
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// defaultConfig returns the production endpoints and delays.
func defaultConfig() config {
	return config{
		HMDB: sourceConfig{Delay: duration{pipeline.DefaultHMDBDelay}},
		KEGG: sourceConfig{Delay: duration{pipeline.DefaultKEGGDelay}},
	}
}

// loadConfig reads a TOML config file over the defaults. An empty path
// returns the defaults unchanged.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}
