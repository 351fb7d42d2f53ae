package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axitpadasala108/roven-global/internal/config"
	"github.com/axitpadasala108/roven-global/internal/eventbus"
)

func TestConfigChangeIsPersisted(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	svc := config.NewService()
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.DefaultConfig()

	unsub := persistConfigChanges(bus, svc, cfg, path)
	defer unsub()

	bus.Publish(eventbus.ConfigChangedEvent{
		APIBaseURL:  "http://staging:9000",
		SearchLimit: 25,
	})

	require.Eventually(t, func() bool {
		loaded, err := svc.LoadFromPath(path)
		return err == nil && loaded.APIBaseURL == "http://staging:9000"
	}, 2*time.Second, 10*time.Millisecond, "change never reached disk")

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://staging:9000", loaded.APIBaseURL)
	assert.Equal(t, 25, loaded.SearchLimit)
	// Fields absent from the event keep their values.
	assert.Equal(t, config.DefaultSearchDebounceMS, loaded.SearchDebounceMS)
}

func TestPartialConfigChangeKeepsOtherSettings(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	svc := config.NewService()
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.DefaultConfig()

	unsub := persistConfigChanges(bus, svc, cfg, path)
	defer unsub()

	bus.Publish(eventbus.ConfigChangedEvent{SearchDebounceMS: 200})

	require.Eventually(t, func() bool {
		loaded, err := svc.LoadFromPath(path)
		return err == nil && loaded.SearchDebounceMS == 200
	}, 2*time.Second, 10*time.Millisecond, "change never reached disk")

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAPIBaseURL, loaded.APIBaseURL)
	assert.Equal(t, config.DefaultSearchLimit, loaded.SearchLimit)
}
