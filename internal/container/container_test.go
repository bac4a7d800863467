package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"school-activities/internal/config"
	"school-activities/internal/service"
	"school-activities/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name          string
		config        *config.Config
		expectRedis   bool
		expectMetrics bool
	}{
		{
			name:          "Container with Redis configured",
			config:        &config.Config{Environment: "test", RedisURL: "redis://" + mr.Addr(), MetricsEnabled: true},
			expectRedis:   true,
			expectMetrics: true,
		},
		{
			name:   "Container without Redis configured",
			config: &config.Config{Environment: "test"},
		},
		{
			name:          "Container with invalid Redis URL",
			config:        &config.Config{Environment: "test", RedisURL: "invalid://redis-url", MetricsEnabled: true},
			expectMetrics: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testLogger := logger.NewNop()

			c, err := New(tt.config, testLogger)
			require.NoError(t, err)
			require.NotNil(t, c)
			t.Cleanup(func() { _ = c.Close() })

			assert.Equal(t, tt.config, c.GetConfig())
			assert.Equal(t, testLogger, c.GetLogger())
			assert.Len(t, c.GetActivityService().ListActivities(context.Background()), 9)
			assert.Implements(t, (*service.ActivityService)(nil), c.GetActivityService())

			assert.Equal(t, tt.expectRedis, c.HasRedis())
			if tt.expectRedis {
				assert.NotNil(t, c.GetRedisClient())
				assert.Equal(t, "staging", c.GetRedisClient().KeyBuilder.GetPrefix())
			} else {
				assert.Nil(t, c.GetRedisClient())
			}

			assert.Equal(t, tt.expectMetrics, c.MetricsRegistry != nil)
		})
	}
}

func TestNew_SeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"Robotics": {"description": "Build robots", "schedule": "Mondays", "max_participants": 2, "participants": []}
	}`), 0o600))

	c, err := New(&config.Config{SeedFile: path}, logger.NewNop())
	require.NoError(t, err)

	list := c.GetActivityService().ListActivities(context.Background())
	assert.Len(t, list, 1)
	assert.Contains(t, list, "Robotics")
}

func TestNew_InvalidSeedFile(t *testing.T) {
	c, err := New(&config.Config{SeedFile: filepath.Join(t.TempDir(), "missing.json")}, logger.NewNop())
	assert.Error(t, err)
	assert.Nil(t, c)
}
