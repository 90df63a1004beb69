// Package keyvalue turns a go-simpler.org/env tagged configuration struct into
// a sorted list of key/values, and prints them as a shell script that sets the
// same configuration when sourced or read back with env.GetEnv.
package keyvalue

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
)

// KV is a key/value pair with the usage text of its field.
type KV struct{ Key, Value, Usage string }

// KVSlice is a collection of key/value pairs.
type KVSlice []KV

func (kv KVSlice) Len() int           { return len(kv) }
func (kv KVSlice) Less(i, j int) bool { return kv[i].Key < kv[j].Key }
func (kv KVSlice) Swap(i, j int)      { kv[i], kv[j] = kv[j], kv[i] }

// EnvKV collects the `env` tagged fields of a struct, or a pointer to one.
// Embedded structs are walked so an extended configuration prints its base
// fields too. Slices are joined with commas.
func EnvKV(cfg any) (m KVSlice) { return envKV(reflect.Indirect(reflect.ValueOf(cfg))) }

func envKV(v reflect.Value) (m KVSlice) {
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			m = append(m, envKV(reflect.Indirect(v.Field(i)))...)
			continue
		}
		k := f.Tag.Get("env")
		if k == "" || !f.IsExported() {
			continue
		}
		m = append(m, KV{Key: k, Value: format(v.Field(i)), Usage: f.Tag.Get("usage")})
	}
	return
}

func format(v reflect.Value) string {
	if v.Kind() == reflect.Slice {
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(v.Index(i))
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

// PrintEnv renders the key/values of a configuration to a provided io.Writer
// as a bash script, each preceded by its usage as a comment.
func PrintEnv(cfg any, printer io.Writer) {
	_, _ = fmt.Fprintln(printer, "#!/usr/bin/env bash")
	kvs := EnvKV(cfg)
	sort.Sort(kvs)
	for _, v := range kvs {
		if v.Usage != "" {
			_, _ = fmt.Fprintf(printer, "# %s\n", v.Usage)
		}
		_, _ = fmt.Fprintf(printer, "export %s=%s\n", v.Key, quote(v.Value))
	}
}

func quote(s string) string {
	if strings.ContainsAny(s, " \t'\"$`;&|<>") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}
