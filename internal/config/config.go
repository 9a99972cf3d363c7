// Package config loads environment configuration into tagged structs.
//
// A .env file in the working directory is read once before the first load;
// variables already present in the environment win. Each struct type is parsed
// once and cached, so repeated loads of the same type are cheap. Every Load hands
// out its own copy: slice and map fields are cloned, so editing one loaded
// config never leaks into the cache or other callers.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNotPointer is returned when Load receives something other than a struct pointer.
var ErrNotPointer = errors.New("config: target must be a non-nil pointer to a struct")

var (
	dotenvOnce sync.Once
	cacheMu    sync.Mutex
	cache      = make(map[reflect.Type]any)
)

// Load fills cfg from the environment, honoring `env` and `envDefault` tags.
func Load[T any](cfg *T) error {
	if cfg == nil || reflect.TypeOf(cfg).Elem().Kind() != reflect.Struct {
		return ErrNotPointer
	}

	dotenvOnce.Do(loadDotenv)

	typ := reflect.TypeOf(cfg).Elem()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[typ]; ok {
		*cfg = clone(cached.(T))
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", typ, err)
	}
	cache[typ] = parsed
	*cfg = clone(parsed)
	return nil
}

// clone copies v, giving every exported slice and map field, in nested
// structs too, its own backing storage.
func clone[T any](v T) T {
	out := v
	deepen(reflect.ValueOf(&out).Elem())
	return out
}

func deepen(v reflect.Value) {
	switch v.Kind() {
	case reflect.Struct:
		for i := range v.NumField() {
			if f := v.Field(i); f.CanSet() {
				deepen(f)
			}
		}
	case reflect.Slice:
		if v.IsNil() {
			return
		}
		c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(c, v)
		for i := range c.Len() {
			deepen(c.Index(i))
		}
		v.Set(c)
	case reflect.Map:
		if v.IsNil() {
			return
		}
		c := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			c.SetMapIndex(iter.Key(), iter.Value())
		}
		v.Set(c)
	}
}

// MustLoad is Load that panics on error. Use it at program start.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Reset drops cached values so the next Load re-reads the environment.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = make(map[reflect.Type]any)
}

// loadDotenv reads .env if present. A missing or malformed file is ignored.
func loadDotenv() {
	_ = godotenv.Load()
}
