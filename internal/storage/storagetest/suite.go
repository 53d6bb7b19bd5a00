// Package storagetest holds the behaviour every storage.Provider must share.
package storagetest

import (
	"reflect"
	"testing"

	"github.com/julianstephens/lifeos/internal/storage"
)

// Run exercises an initialized provider. The provider must start empty for
// the "lifeos_" and "other_" prefixes.
func Run(t *testing.T, p storage.Provider) {
	t.Helper()

	t.Run("GetMissing", func(t *testing.T) {
		v, ok, err := p.Get("lifeos_missing")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if ok || v != "" {
			t.Errorf("Get() = (%q, %v), want absent", v, ok)
		}
	})

	t.Run("SetGetOverwrite", func(t *testing.T) {
		if err := p.Set("lifeos_theme", `"dark"`); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := p.Set("lifeos_theme", `"light"`); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		v, ok, err := p.Get("lifeos_theme")
		if err != nil || !ok {
			t.Fatalf("Get() = (%q, %v, %v), want present", v, ok, err)
		}
		if v != `"light"` {
			t.Errorf("Get() = %q, want %q", v, `"light"`)
		}
	})

	t.Run("KeysAndClear", func(t *testing.T) {
		for _, k := range []string{"lifeos_tasks", "lifeos_habits", "other_key"} {
			if err := p.Set(k, "[]"); err != nil {
				t.Fatalf("Set(%s) error = %v", k, err)
			}
		}

		keys, err := p.Keys("lifeos_")
		if err != nil {
			t.Fatalf("Keys() error = %v", err)
		}
		want := []string{"lifeos_habits", "lifeos_tasks", "lifeos_theme"}
		if !reflect.DeepEqual(keys, want) {
			t.Errorf("Keys() = %v, want %v", keys, want)
		}

		if err := p.Clear("lifeos_"); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		keys, err = p.Keys("lifeos_")
		if err != nil {
			t.Fatalf("Keys() error = %v", err)
		}
		if len(keys) != 0 {
			t.Errorf("Keys() after Clear = %v, want none", keys)
		}
		if _, ok, _ := p.Get("other_key"); !ok {
			t.Error("Clear() removed a key outside the prefix")
		}
		if err := p.Delete("other_key"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := p.Set("lifeos_vault_pin", `"1234"`); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := p.Delete("lifeos_vault_pin"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, ok, _ := p.Get("lifeos_vault_pin"); ok {
			t.Error("key still present after Delete")
		}
		if err := p.Delete("lifeos_vault_pin"); err != nil {
			t.Errorf("Delete() of absent key error = %v", err)
		}
	})
}
