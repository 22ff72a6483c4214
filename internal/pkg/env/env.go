// Package env provides environment variables as a map,
// with optional values from a ".env" file.
package env

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

type Map struct {
	data map[string]string
}

func Empty() *Map {
	return &Map{data: map[string]string{}}
}

func FromMap(data map[string]string) *Map {
	m := Empty()
	for k, v := range data {
		m.Set(k, v)
	}
	return m
}

// FromOs loads environment variables from the OS.
func FromOs() *Map {
	m := Empty()
	for _, pair := range os.Environ() {
		key, value, found := strings.Cut(pair, "=")
		if found {
			m.Set(key, value)
		}
	}
	return m
}

func (m *Map) Get(key string) string {
	return m.data[strings.ToUpper(key)]
}

func (m *Map) Lookup(key string) (string, bool) {
	value, found := m.data[strings.ToUpper(key)]
	return value, found
}

func (m *Map) Set(key, value string) {
	m.data[strings.ToUpper(key)] = value
}

func (m *Map) Keys() []string {
	out := make([]string, 0, len(m.data))
	for k := range m.data {
		out = append(out, k)
	}
	return out
}

// Merge sets all variables from the other map.
// Already defined variables are kept, unless overwrite is set.
func (m *Map) Merge(other *Map, overwrite bool) {
	for _, key := range other.Keys() {
		if _, found := m.Lookup(key); found && !overwrite {
			continue
		}
		m.Set(key, other.Get(key))
	}
}

// LoadDotEnv reads the ".env" file from the dir, if it exists.
// Values from the file have a lower priority than the OS environment,
// so they are merged without overwrite.
func LoadDotEnv(envs *Map, dir string) error {
	path := filepath.Join(dir, dotEnvFile)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		// Nothing to load
		return nil // nolint: nilerr
	}

	fileEnvs, err := godotenv.Read(path)
	if err != nil {
		return err
	}

	envs.Merge(FromMap(fileEnvs), false)
	return nil
}
