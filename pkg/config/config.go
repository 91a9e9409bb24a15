package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ivaaaan/candlestream/pkg/candle"
	"github.com/ivaaaan/candlestream/pkg/errors"
	"github.com/ivaaaan/candlestream/pkg/questdb"
)

// Config represents the application configuration.
type Config struct {
	App         AppConfig         `envPrefix:"APP_"`
	QuestDB     questdb.Config    `envPrefix:"QUESTDB_"`
	TradeKafka  TradeKafkaConfig  `envPrefix:"TRADE_KAFKA_"`
	Aggregation AggregationConfig `envPrefix:"AGGREGATION_"`
	Sink        SinkConfig        `envPrefix:"SINK_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"candlestream"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// TradeKafkaConfig represents the Kafka configuration for the trade topic.
type TradeKafkaConfig struct {
	Brokers       []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic         string   `env:"TOPIC" envDefault:"trades"`
	ConsumerGroup string   `env:"CONSUMER_GROUP" envDefault:"candlestream"`
}

// AggregationConfig selects the boundary rule driving bar construction.
type AggregationConfig struct {
	// Rule is one of: time, aligned_time, volume, tick, relative_price.
	Rule            string        `env:"RULE" envDefault:"time"`
	Period          time.Duration `env:"PERIOD" envDefault:"1m"`
	Resolution      string        `env:"RESOLUTION" envDefault:"ns"`
	VolumeThreshold float64       `env:"VOLUME_THRESHOLD" envDefault:"100"`
	TickThreshold   int64         `env:"TICK_THRESHOLD" envDefault:"500"`
	BasisPoints     float64       `env:"BASIS_POINTS" envDefault:"25"`
}

// SinkConfig configures the optional file sink for emitted bars.
type SinkConfig struct {
	Enabled   bool   `env:"ENABLED" envDefault:"false"`
	Format    string `env:"FORMAT" envDefault:"parquet"`
	Directory string `env:"DIRECTORY" envDefault:"./data"`
	FlushSize int    `env:"FLUSH_SIZE" envDefault:"500"`
}

// ParseResolution returns the timestamp resolution configured for
// time-based rules.
func (c AggregationConfig) ParseResolution() (candle.Resolution, error) {
	return candle.ParseResolution(c.Resolution)
}

// NewRule constructs the configured boundary rule. Invalid thresholds
// and periods surface here, before any aggregator exists.
func (c AggregationConfig) NewRule() (candle.Rule, error) {
	switch c.Rule {
	case "time":
		res, err := c.ParseResolution()
		if err != nil {
			return nil, err
		}
		return candle.NewTimeRule(c.Period, res)
	case "aligned_time":
		res, err := c.ParseResolution()
		if err != nil {
			return nil, err
		}
		return candle.NewAlignedTimeRule(c.Period, res)
	case "volume":
		return candle.NewVolumeRule(c.VolumeThreshold)
	case "tick":
		return candle.NewTickRule(c.TickThreshold)
	case "relative_price":
		return candle.NewRelativePriceRule(c.BasisPoints)
	default:
		return nil, fmt.Errorf("unsupported aggregation rule: %s", c.Rule)
	}
}

// Window returns the persisted label for bars produced under this rule,
// e.g. "1m0s", "vol:100", "tick:500", "bps:25".
func (c AggregationConfig) Window() string {
	switch c.Rule {
	case "time":
		return c.Period.String()
	case "aligned_time":
		return "aligned:" + c.Period.String()
	case "volume":
		return fmt.Sprintf("vol:%v", c.VolumeThreshold)
	case "tick":
		return fmt.Sprintf("tick:%d", c.TickThreshold)
	case "relative_price":
		return fmt.Sprintf("bps:%v", c.BasisPoints)
	default:
		return c.Rule
	}
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.TracerFromError(errors.NewErrorDetails(
			err.Error(), string(errors.ConfigParseError), "env",
		))
	}

	return cfg, nil
}
