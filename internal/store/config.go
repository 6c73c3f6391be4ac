package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataSource string `yaml:"data_source"` // MOCK or LIVE

	UniverseFile   string   `yaml:"universe_file"`
	UniverseStatic []string `yaml:"universe_static"` // overrides the file when set

	ManualESGFile string `yaml:"manual_esg_file"`
	OutputFile    string `yaml:"output_file"`

	Screener struct {
		Concurrency      int `yaml:"concurrency"`
		MinHistoryPoints int `yaml:"min_history_points"`
	} `yaml:"screener"`

	Indicators struct {
		RSIPeriod  int   `yaml:"rsi_period"`
		SMAWindows []int `yaml:"sma_windows"`
		MACDShort  int   `yaml:"macd_short"`
		MACDLong   int   `yaml:"macd_long"`
		MACDSignal int   `yaml:"macd_signal"`
	} `yaml:"indicators"`

	Provider struct {
		BaseURL        string  `yaml:"base_url"`
		HistoryRange   string  `yaml:"history_range"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		RatePerMinute  float64 `yaml:"rate_per_minute"`
	} `yaml:"provider"`
}

func (c *Config) Validate() error {
	if c.DataSource != "MOCK" && c.DataSource != "LIVE" {
		return fmt.Errorf("invalid data_source '%s': must be 'MOCK' or 'LIVE'", c.DataSource)
	}
	if c.Screener.Concurrency < 1 {
		return fmt.Errorf("screener.concurrency must be >= 1, got %d", c.Screener.Concurrency)
	}
	if c.Indicators.RSIPeriod <= 0 {
		return fmt.Errorf("indicators.rsi_period must be positive, got %d", c.Indicators.RSIPeriod)
	}
	if len(c.Indicators.SMAWindows) != 3 {
		return fmt.Errorf("indicators.sma_windows must list exactly 3 windows, got %d", len(c.Indicators.SMAWindows))
	}
	for _, w := range c.Indicators.SMAWindows {
		if w <= 0 {
			return fmt.Errorf("indicators.sma_windows entries must be positive, got %d", w)
		}
	}
	if c.Indicators.MACDShort >= c.Indicators.MACDLong {
		return fmt.Errorf("indicators.macd_short (%d) must be below macd_long (%d)",
			c.Indicators.MACDShort, c.Indicators.MACDLong)
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output_file cannot be empty")
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

// DefaultConfig returns a config with every default applied, for callers
// running without a config file.
func DefaultConfig() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

func (c *Config) applyDefaults() {
	if c.DataSource == "" {
		c.DataSource = "MOCK"
	}
	if c.UniverseFile == "" {
		c.UniverseFile = "tickers.csv"
	}
	if c.ManualESGFile == "" {
		c.ManualESGFile = "manual_esg.csv"
	}
	if c.OutputFile == "" {
		c.OutputFile = "out/stock_report.csv"
	}
	if c.Screener.Concurrency == 0 {
		c.Screener.Concurrency = 1
	}
	if c.Screener.MinHistoryPoints == 0 {
		c.Screener.MinHistoryPoints = 200
	}
	if c.Indicators.RSIPeriod == 0 {
		c.Indicators.RSIPeriod = 14
	}
	if len(c.Indicators.SMAWindows) == 0 {
		c.Indicators.SMAWindows = []int{20, 50, 200}
	}
	if c.Indicators.MACDShort == 0 {
		c.Indicators.MACDShort = 12
	}
	if c.Indicators.MACDLong == 0 {
		c.Indicators.MACDLong = 26
	}
	if c.Indicators.MACDSignal == 0 {
		c.Indicators.MACDSignal = 9
	}
	if c.Provider.HistoryRange == "" {
		c.Provider.HistoryRange = "5y"
	}
	if c.Provider.TimeoutSeconds == 0 {
		c.Provider.TimeoutSeconds = 45
	}
	if c.Provider.RatePerMinute == 0 {
		c.Provider.RatePerMinute = 30
	}
}
