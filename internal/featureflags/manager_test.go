package featureflags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabled_BooleanValues(t *testing.T) {
	m := NewManager("a=on,b=off,c=true,d=false,e=1,f=0")

	for _, name := range []string{"a", "c", "e"} {
		assert.True(t, m.Enabled(name, 1), name)
	}
	for _, name := range []string{"b", "d", "f", "missing"} {
		assert.False(t, m.Enabled(name, 1), name)
	}
}

func TestEnabled_PercentageValues(t *testing.T) {
	m := NewManager("always=100%,never=0%,canary=25%,junk=abc%")

	assert.True(t, m.Enabled("always", 1))
	assert.False(t, m.Enabled("never", 1))
	assert.False(t, m.Enabled("junk", 1))
	assert.False(t, m.Enabled("canary", 0), "percentage rollout requires a subject")

	first := m.Enabled("canary", 42)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, m.Enabled("canary", 42))
	}

	enabled := 0
	for subject := uint(1); subject <= 1000; subject++ {
		if m.Enabled("canary", subject) {
			enabled++
		}
	}
	assert.InDelta(t, 250, enabled, 80)
}

func TestParseAndSnapshot(t *testing.T) {
	m := NewManager(" bad ,Post_Cache=ON, post_events = 20% ,z=off,=on,k= ")

	assert.Equal(t, map[string]string{"post_cache": "on", "post_events": "20%", "z": "off"}, m.Raw())
	assert.Equal(t, []string{"post_cache", "post_events", "z"}, m.Names())
	assert.True(t, m.Enabled(PostCache, 0))

	snap := m.Snapshot(123)
	assert.Len(t, snap, 3)
	assert.True(t, snap["post_cache"])
	assert.False(t, snap["z"])
}

func TestNilManager(t *testing.T) {
	var m *Manager
	assert.False(t, m.Enabled(PostEvents, 1))
}
