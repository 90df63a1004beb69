// Package config is the environment configuration of the nostrcore command,
// loaded with go-simpler.org/env from the process environment and, when
// NOSTRCORE_ENV_FILE names one, a .env file.
package config

import (
	"fmt"
	"io"
	"runtime"

	"go-simpler.org/env"

	"realy.lol/nostrcore/chk"
	"realy.lol/nostrcore/config/keyvalue"
	env2 "realy.lol/nostrcore/env"
	"realy.lol/nostrcore/lol"
)

// C is the configuration. The library packages take no configuration, these
// only shape how the command line host drives them.
type C struct {
	LogLevel   string `env:"NOSTRCORE_LOG_LEVEL" default:"info" usage:"log level: off fatal error warn info debug trace"`
	EnvFile    string `env:"NOSTRCORE_ENV_FILE" usage:"path of a .env file to read settings from, the environment overrides it"`
	Workers    int    `env:"NOSTRCORE_WORKERS" default:"0" usage:"number of events verified in parallel, 0 means one per CPU"`
	StrictTags bool   `env:"NOSTRCORE_STRICT_TAGS" default:"false" usage:"fail the build command on an invalid tag instead of dropping it"`
}

// New loads the configuration from the process environment and the .env file
// it points at.
func New() (c *C, err error) { return Load(env2.Process) }

// Load reads the configuration from a source, following NOSTRCORE_ENV_FILE if
// it is set. Values in src take precedence over the file.
func Load(src env2.Source) (c *C, err error) {
	c = &C{}
	if err = env.Load(c, &env.Options{Source: src, SliceSep: ","}); chk.E(err) {
		return
	}
	if c.EnvFile != "" {
		var e env2.Env
		if e, err = env2.GetEnv(c.EnvFile); chk.E(err) {
			return
		}
		file := c.EnvFile
		c = &C{}
		if err = env.Load(c, &env.Options{Source: env2.Chain{src, e}, SliceSep: ","}); chk.E(err) {
			return
		}
		c.EnvFile = file
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return
}

// Apply sets the process wide log level from the configuration.
func (c *C) Apply() {
	if lol.GetLogLevel(c.LogLevel) == lol.Info && c.LogLevel != "info" {
		lol.Main.Log.W.F("unknown log level %q, using info", c.LogLevel)
	}
	lol.SetLogLevel(c.LogLevel)
}

// PrintEnv writes the configuration as a shell script.
func (c *C) PrintEnv(w io.Writer) { keyvalue.PrintEnv(c, w) }

// PrintHelp outputs a help text listing the configuration options and default
// values to a provided io.Writer (usually os.Stderr or os.Stdout).
func (c *C) PrintHelp(appName string, w io.Writer) {
	_, _ = fmt.Fprintf(w, "Environment variables that configure %s:\n\n", appName)
	env.Usage(c, w, &env.Options{SliceSep: ","})
	_, _ = fmt.Fprintf(w,
		"\nuse the command 'env' to print out the current configuration, "+
			"the output can be saved and loaded back by pointing "+
			"NOSTRCORE_ENV_FILE at it\n")
}
