// Package env provides sources of configuration values for go-simpler.org/env:
// a .env file in KEY=value form, the process environment, and a chain of the
// two so that a file can supply values the environment leaves unset.
package env

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"realy.lol/nostrcore/chk"
)

// Source is the interface go-simpler.org/env reads values through.
type Source interface {
	LookupEnv(key string) (value string, ok bool)
}

// Env is a key/value map used to represent environment variables. This is
// implemented for go-simpler.org library.
type Env map[string]string

// GetEnv reads a file expected to represent a collection of KEY=value in
// standard shell environment variable format - ie, key usually in all upper
// case no spaces and words separated by underscore, value can have any
// separator, but usually comma, for an array of values.
//
// Blank lines, comments starting with # and an "export " prefix are accepted,
// so the output of keyvalue.PrintEnv reads back in unchanged. Lines without an
// = are skipped.
func GetEnv(path string) (env Env, err error) {
	var s []byte
	if s, err = os.ReadFile(path); chk.T(err) {
		return
	}
	return Parse(s), nil
}

// Parse reads KEY=value lines from the contents of a .env file.
func Parse(b []byte) (env Env) {
	env = make(Env)
	scanner := bufio.NewScanner(bytes.NewReader(b))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		env[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}
	return
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// LookupEnv returns the raw string value associated with a provided key name,
// used as a custom environment variable loader for go-simpler.org/env to enable
// .env file loading.
func (env Env) LookupEnv(key string) (value string, ok bool) {
	value, ok = env[key]
	return
}

type process struct{}

func (process) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// Process reads the environment of the running process.
var Process Source = process{}

// Chain looks a key up in each Source in order and returns the first hit.
type Chain []Source

func (c Chain) LookupEnv(key string) (value string, ok bool) {
	for _, s := range c {
		if value, ok = s.LookupEnv(key); ok {
			return
		}
	}
	return
}
