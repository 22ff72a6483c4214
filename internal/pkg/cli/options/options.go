// Package options holds the parsed CLI options.
// Value priority: flag > OS environment variable > default.
// Environment variables use the MAPS_ prefix, for example MAPS_BASE_PATH.
package options

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"

	"github.com/mapsbench/mapsload/internal/pkg/env"
	"github.com/mapsbench/mapsload/internal/pkg/utils/errors"
)

const envPrefix = "MAPS_"

// DefaultBasePath is used when no flag or environment variable is set.
const DefaultBasePath = "datasets/MAPS"

type Options struct {
	BasePath      string
	Languages     []string
	Tasks         []string
	Output        string
	ListLanguages bool
	ListTasksFor  string
	NoMetadata    bool
	Verbose       bool
	Head          int
	Layout        string
	LogFilePath   string

	values map[string]any // parsed values for Dump
}

func NewOptions() *Options {
	return &Options{values: make(map[string]any)}
}

// Load the values from the parsed flags and the environment.
func (o *Options) Load(envs *env.Map, flags *pflag.FlagSet) error {
	o.BasePath = o.stringOpt(flags, envs, "base-path")
	o.Languages = o.sliceOpt(flags, envs, "languages")
	o.Tasks = o.sliceOpt(flags, envs, "tasks")
	o.Output = o.stringOpt(flags, envs, "output")
	o.ListLanguages = o.boolOpt(flags, envs, "list-languages")
	o.ListTasksFor = o.stringOpt(flags, envs, "list-tasks")
	o.NoMetadata = o.boolOpt(flags, envs, "no-metadata")
	o.Verbose = o.boolOpt(flags, envs, "verbose")
	o.Head = o.intOpt(flags, envs, "head")
	o.Layout = o.stringOpt(flags, envs, "layout")
	o.LogFilePath = o.stringOpt(flags, envs, "log-file")
	return nil
}

// Validate the combination of the loaded values.
// Languages and tasks are required, unless a listing mode is requested.
func (o *Options) Validate() error {
	if o.ListLanguages || o.ListTasksFor != "" {
		return nil
	}

	e := errors.NewMultiError()
	e.SetPrefix("invalid parameters:")
	if len(o.Languages) == 0 {
		e.AddRaw(`- missing --languages, or use a --list-* option`)
	}
	if len(o.Tasks) == 0 {
		e.AddRaw(`- missing --tasks, or use a --list-* option`)
	}
	return e.ErrorOrNil()
}

// Dump the parsed options, for the verbose output.
func (o *Options) Dump() string {
	var out strings.Builder
	out.WriteString("Parsed options:")

	keys := make([]string, 0, len(o.values))
	for k := range o.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		out.WriteString(fmt.Sprintf("\n  %s = %#v", k, o.values[k]))
	}
	return out.String()
}

func (o *Options) stringOpt(flags *pflag.FlagSet, envs *env.Map, flag string) string {
	if value, found := o.envValue(flags, envs, flag); found {
		o.values[flag] = value
		return value
	}
	value, _ := flags.GetString(flag)
	o.values[flag] = value
	return value
}

func (o *Options) sliceOpt(flags *pflag.FlagSet, envs *env.Map, flag string) []string {
	if value, found := o.envValue(flags, envs, flag); found {
		var out []string
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		o.values[flag] = out
		return out
	}
	value, _ := flags.GetStringSlice(flag)
	o.values[flag] = value
	return value
}

func (o *Options) boolOpt(flags *pflag.FlagSet, envs *env.Map, flag string) bool {
	if value, found := o.envValue(flags, envs, flag); found {
		o.values[flag] = cast.ToBool(value)
		return cast.ToBool(value)
	}
	value, _ := flags.GetBool(flag)
	o.values[flag] = value
	return value
}

func (o *Options) intOpt(flags *pflag.FlagSet, envs *env.Map, flag string) int {
	if value, found := o.envValue(flags, envs, flag); found {
		o.values[flag] = cast.ToInt(value)
		return cast.ToInt(value)
	}
	value, _ := flags.GetInt(flag)
	o.values[flag] = value
	return value
}

// envValue returns the environment value for the flag, if the flag itself is not set.
func (o *Options) envValue(flags *pflag.FlagSet, envs *env.Map, flag string) (string, bool) {
	if flags.Changed(flag) {
		return "", false
	}
	return envs.Lookup(envPrefix + strings.ReplaceAll(strings.ToUpper(flag), "-", "_"))
}
