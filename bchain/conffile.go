package bchain

import "strings"

// ConfMap holds settings of a daemon conf file, setting name -> raw value
type ConfMap map[string]string

// ParseConfFile parses key=value lines of a daemon conf file.
// A line is split at the first '='; lines without '=' are ignored.
// If a key repeats, the last value wins.
func ParseConfFile(contents string) ConfMap {
	m := make(ConfMap)
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSuffix(line, "\r")
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 {
			continue
		}
		m[kv[0]] = kv[1]
	}
	return m
}

// Get returns value of the setting and whether it is present
func (m ConfMap) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
