package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ivaaaan/candlestream/pkg/candle"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "candlestream", cfg.App.Name)
	assert.Equal(t, "time", cfg.Aggregation.Rule)
	assert.Equal(t, time.Minute, cfg.Aggregation.Period)
	assert.Equal(t, []string{"localhost:9092"}, cfg.TradeKafka.Brokers)
	assert.False(t, cfg.Sink.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("AGGREGATION_RULE", "volume")
	t.Setenv("AGGREGATION_VOLUME_THRESHOLD", "250")
	t.Setenv("TRADE_KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "volume", cfg.Aggregation.Rule)
	assert.Equal(t, 250.0, cfg.Aggregation.VolumeThreshold)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.TradeKafka.Brokers)
}

func TestAggregationConfig_NewRule(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       AggregationConfig
		expectErr bool
	}{
		{
			name:      "time rule",
			cfg:       AggregationConfig{Rule: "time", Period: time.Second, Resolution: "ms"},
			expectErr: false,
		},
		{
			name:      "aligned time rule",
			cfg:       AggregationConfig{Rule: "aligned_time", Period: 15 * time.Minute, Resolution: "ns"},
			expectErr: false,
		},
		{
			name:      "volume rule",
			cfg:       AggregationConfig{Rule: "volume", VolumeThreshold: 100},
			expectErr: false,
		},
		{
			name:      "tick rule",
			cfg:       AggregationConfig{Rule: "tick", TickThreshold: 500},
			expectErr: false,
		},
		{
			name:      "relative price rule",
			cfg:       AggregationConfig{Rule: "relative_price", BasisPoints: 25},
			expectErr: false,
		},
		{
			name:      "invalid period rejected at construction",
			cfg:       AggregationConfig{Rule: "time", Period: 0, Resolution: "ms"},
			expectErr: true,
		},
		{
			name:      "invalid threshold rejected at construction",
			cfg:       AggregationConfig{Rule: "volume", VolumeThreshold: -1},
			expectErr: true,
		},
		{
			name:      "unknown rule",
			cfg:       AggregationConfig{Rule: "renko2"},
			expectErr: true,
		},
		{
			name:      "unknown resolution",
			cfg:       AggregationConfig{Rule: "time", Period: time.Second, Resolution: "weeks"},
			expectErr: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			rule, err := testCase.cfg.NewRule()
			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, rule)
		})
	}
}

func TestAggregationConfig_ParseResolution(t *testing.T) {
	cfg := AggregationConfig{Resolution: "ms"}
	res, err := cfg.ParseResolution()
	assert.NoError(t, err)
	assert.Equal(t, candle.Millisecond, res)
}

func TestAggregationConfig_Window(t *testing.T) {
	assert.Equal(t, "1m0s", AggregationConfig{Rule: "time", Period: time.Minute}.Window())
	assert.Equal(t, "vol:100", AggregationConfig{Rule: "volume", VolumeThreshold: 100}.Window())
	assert.Equal(t, "tick:500", AggregationConfig{Rule: "tick", TickThreshold: 500}.Window())
}
