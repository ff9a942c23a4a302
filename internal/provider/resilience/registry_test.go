package resilience_test

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaplan/vitaplan/internal/provider/resilience"
)

func TestRegistry_RegisterAndGetHealth(t *testing.T) {
	registry := resilience.NewRegistry()
	registry.Register("video-directory", newTestClient("video-directory"))

	health := registry.GetHealth("video-directory")
	require.NotNil(t, health)
	assert.Equal(t, "video-directory", health.Name)
	assert.Equal(t, gobreaker.StateClosed, health.CircuitState)
	assert.True(t, health.IsHealthy())
	assert.False(t, health.IsDegraded())
}

func TestRegistry_UnknownDependency(t *testing.T) {
	registry := resilience.NewRegistry()
	assert.Nil(t, registry.GetHealth("nope"))
}

func TestRegistry_RecordsOutcomes(t *testing.T) {
	registry := resilience.NewRegistry()
	registry.Register("dir", newTestClient("dir"))

	registry.RecordSuccess("dir")
	registry.RecordFailure("dir", errors.New("connection refused"))

	health := registry.GetHealth("dir")
	require.NotNil(t, health)
	assert.NotNil(t, health.LastSuccessAt)
	assert.NotNil(t, health.LastFailureAt)
	assert.Equal(t, "connection refused", health.LastError)
}

func TestRegistry_GetAllHealth(t *testing.T) {
	registry := resilience.NewRegistry()
	registry.Register("a", newTestClient("a"))
	registry.Register("b", newTestClient("b"))

	all := registry.GetAllHealth()
	assert.Len(t, all, 2)
}
