package options

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapsbench/mapsload/internal/pkg/env"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet(`test`, pflag.ContinueOnError)
	flags.StringP(`base-path`, `b`, DefaultBasePath, ``)
	flags.StringSliceP(`languages`, `l`, nil, ``)
	flags.StringSliceP(`tasks`, `t`, nil, ``)
	flags.StringP(`output`, `o`, ``, ``)
	flags.Bool(`list-languages`, false, ``)
	flags.String(`list-tasks`, ``, ``)
	flags.Bool(`no-metadata`, false, ``)
	flags.BoolP(`verbose`, `v`, false, ``)
	flags.Int(`head`, 0, ``)
	flags.String(`layout`, `standard`, ``)
	flags.String(`log-file`, ``, ``)
	return flags
}

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()
	flags := testFlags()
	require.NoError(t, flags.Parse(nil))

	o := NewOptions()
	require.NoError(t, o.Load(env.Empty(), flags))
	assert.Equal(t, DefaultBasePath, o.BasePath)
	assert.Empty(t, o.Languages)
	assert.Equal(t, `standard`, o.Layout)
	assert.False(t, o.Verbose)
}

func TestOptions_ValuesPriority(t *testing.T) {
	t.Parallel()
	flags := testFlags()
	require.NoError(t, flags.Parse(nil))

	// 1. Lowest priority, the default value
	o := NewOptions()
	require.NoError(t, o.Load(env.Empty(), flags))
	assert.Equal(t, DefaultBasePath, o.BasePath)

	// 2. Higher priority, ENV
	envs := env.FromMap(map[string]string{`MAPS_BASE_PATH`: `from-env`})
	o = NewOptions()
	require.NoError(t, o.Load(envs, flags))
	assert.Equal(t, `from-env`, o.BasePath)

	// 3. The highest priority, flag
	require.NoError(t, flags.Set(`base-path`, `from-flag`))
	o = NewOptions()
	require.NoError(t, o.Load(envs, flags))
	assert.Equal(t, `from-flag`, o.BasePath)
}

func TestOptions_SliceFromEnv(t *testing.T) {
	t.Parallel()
	flags := testFlags()
	require.NoError(t, flags.Parse(nil))

	envs := env.FromMap(map[string]string{
		`MAPS_LANGUAGES`: `english, arabic ,`,
		`MAPS_HEAD`:      `5`,
		`MAPS_VERBOSE`:   `true`,
	})

	o := NewOptions()
	require.NoError(t, o.Load(envs, flags))
	assert.Equal(t, []string{`english`, `arabic`}, o.Languages)
	assert.Equal(t, 5, o.Head)
	assert.True(t, o.Verbose)
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()
	o := NewOptions()
	err := o.Validate()
	require.Error(t, err)
	assert.Equal(t, "invalid parameters:\n- missing --languages, or use a --list-* option\n- missing --tasks, or use a --list-* option", err.Error())

	o.Languages = []string{`english`}
	err = o.Validate()
	require.Error(t, err)
	assert.Equal(t, "invalid parameters:\n- missing --tasks, or use a --list-* option", err.Error())

	o.Tasks = []string{`gaia`}
	assert.NoError(t, o.Validate())
}

func TestOptions_ValidateListingMode(t *testing.T) {
	t.Parallel()
	o := NewOptions()
	o.ListLanguages = true
	assert.NoError(t, o.Validate())

	o = NewOptions()
	o.ListTasksFor = `english`
	assert.NoError(t, o.Validate())
}

func TestOptions_Dump(t *testing.T) {
	t.Parallel()
	flags := testFlags()
	require.NoError(t, flags.Parse(nil))
	require.NoError(t, flags.Set(`base-path`, `my-data`))

	o := NewOptions()
	require.NoError(t, o.Load(env.Empty(), flags))
	assert.Contains(t, o.Dump(), `Parsed options:`)
	assert.Contains(t, o.Dump(), `base-path = "my-data"`)
}
