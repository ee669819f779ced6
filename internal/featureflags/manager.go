// Package featureflags evaluates runtime toggles from a "name=value" list.
package featureflags

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
)

const (
	// PostCache enables the Redis read-through cache for single posts and users.
	PostCache = "post_cache"
	// PostEvents enables publishing post lifecycle events.
	PostEvents = "post_events"
)

// Manager evaluates flags such as "post_cache=on,post_events=25%".
type Manager struct {
	flags map[string]string
}

// NewManager parses raw; malformed pairs are skipped.
func NewManager(raw string) *Manager {
	flags := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key, value = normalize(key), normalize(value)
		if key == "" || value == "" {
			continue
		}
		flags[key] = value
	}
	return &Manager{flags: flags}
}

// Enabled reports whether name is on for subject. Values on/true/1 and
// off/false/0 are absolute; "N%" enables a deterministic N percent of
// subjects, and never subject 0.
func (m *Manager) Enabled(name string, subject uint) bool {
	if m == nil {
		return false
	}
	value, ok := m.flags[normalize(name)]
	if !ok {
		return false
	}

	switch value {
	case "on", "true", "1":
		return true
	case "off", "false", "0":
		return false
	}

	pctRaw, isPct := strings.CutSuffix(value, "%")
	if !isPct {
		return false
	}
	pct, err := strconv.Atoi(pctRaw)
	switch {
	case err != nil || pct <= 0:
		return false
	case pct >= 100:
		return true
	case subject == 0:
		return false
	}
	return rolloutBucket(name, subject) < pct
}

// Names returns the configured flag names in sorted order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.flags))
	for name := range m.flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Raw returns a copy of the configured values.
func (m *Manager) Raw() map[string]string {
	out := make(map[string]string, len(m.flags))
	for k, v := range m.flags {
		out[k] = v
	}
	return out
}

// Snapshot evaluates every flag for one subject.
func (m *Manager) Snapshot(subject uint) map[string]bool {
	out := make(map[string]bool, len(m.flags))
	for name := range m.flags {
		out[name] = m.Enabled(name, subject)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func rolloutBucket(name string, subject uint) int {
	h := fnv.New32a()
	_, _ = fmt.Fprintf(h, "%s:%d", normalize(name), subject)
	return int(h.Sum32() % 100)
}
