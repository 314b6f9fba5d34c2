package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Entry is one `key: value` row of the config file.
type Entry struct {
	Key   string
	Value string
	Line  int
}

// File is the parsed content of a config file.
type File struct {
	Delay   *time.Duration
	Entries []Entry
}

// yamlFile is the structured alternative to the line format.
type yamlFile struct {
	Delay   string            `yaml:"delay"`
	Corners map[string]string `yaml:"corners"`
}

// Parse decodes config data. Files ending in .yaml or .yml are YAML
// documents; anything else uses the line format.
func Parse(path string, data []byte) (File, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(path, data)
	default:
		return File{Entries: ParseLines(string(data))}, nil
	}
}

// ParseLines parses `key: value` rows. The first colon separates key and
// value; rows without one, with an empty side, or starting with # are skipped.
func ParseLines(data string) []Entry {
	var entries []Entry
	for i, line := range strings.Split(data, "\n") {
		key, value, ok := parseLine(line)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Key: key, Value: value, Line: i + 1})
	}
	return entries
}

// parseLine splits a single row into key/value.
func parseLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return "", "", false
	}
	return key, value, true
}

// parseYAML decodes the structured format.
func parseYAML(path string, data []byte) (File, error) {
	var doc yamlFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return File{}, fmt.Errorf("parse %s: %w", path, err)
	}

	var f File
	if doc.Delay != "" {
		delay, err := ParseDelay(doc.Delay)
		if err != nil {
			return File{}, fmt.Errorf("%s: delay: %w", path, err)
		}
		f.Delay = &delay
	}

	keys := make([]string, 0, len(doc.Corners))
	for k := range doc.Corners {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := strings.TrimSpace(doc.Corners[k])
		if v == "" {
			continue
		}
		f.Entries = append(f.Entries, Entry{Key: k, Value: v})
	}
	return f, nil
}
