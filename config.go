package studydash

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"

	"studydash/chart"
	"studydash/logger"
	"studydash/store/api"
	"studydash/util"
)

const (
	apiBaseEnv   = "STUDYDASH_API_BASE"
	chartBaseEnv = "STUDYDASH_CHART_BASE"
	logLevelEnv  = "STUDYDASH_LOG_LEVEL"
)

//go:embed sample.yaml
var SampleConfig []byte

// Config is the dashboard configuration.
type Config struct {
	API       api.Config    `yaml:"api"`
	ChartBase string        `yaml:"chart_base"`
	Log       logger.Config `yaml:"log"`
	Layout    Layout        `yaml:"layout"`
	Charts    []chart.Spec  `yaml:"charts"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() *Config {
	return &Config{
		API:       api.Config{Base: "https://harm-status-api.onrender.com"},
		ChartBase: "http://127.0.0.1:8000",
		Log:       logger.Config{Level: "info"},
		Layout:    DefaultLayout(),
		Charts:    chart.DefaultSpecs(),
	}
}

// Load reads the yaml at path over the defaults, when present, then applies
// environment overrides.
func Load(path string) (cfg *Config, err error) {

	cfg = Defaults()

	if path != "" {
		_, err = os.Stat(path)
		switch {
		case err == nil:
			err = util.LoadConfig(cfg, path)
			if err != nil {
				return
			}
		case os.IsNotExist(err):
			err = nil
		default:
			err = errors.Wrapf(err, "failed to stat config %s", path)
			return
		}
	}

	cfg.applyEnv()
	return
}

// ChartConfig returns the api config for chart series.
func (cfg *Config) ChartConfig() *api.Config {
	return &api.Config{
		Base:    cfg.ChartBase,
		Timeout: cfg.API.Timeout,
	}
}

// unexported

func (cfg *Config) applyEnv() {

	if base := os.Getenv(apiBaseEnv); base != "" {
		cfg.API.Base = base
	}
	if base := os.Getenv(chartBaseEnv); base != "" {
		cfg.ChartBase = base
	}
	if level := os.Getenv(logLevelEnv); level != "" {
		cfg.Log.Level = level
	}
}
