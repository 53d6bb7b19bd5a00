package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestConnectionString_RoundTrip(t *testing.T) {
	gokeyring.MockInit()

	want := "redis://cache.internal:6379/0"
	if err := SetConnectionString(want); err != nil {
		t.Fatalf("SetConnectionString() error = %v", err)
	}
	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() error = %v", err)
	}
	if got != want {
		t.Errorf("GetConnectionString() = %q, want %q", got, want)
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() error = %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete error = %v, want ErrNotFound", err)
	}
}

func TestSet_Empty(t *testing.T) {
	gokeyring.MockInit()
	if err := SetConnectionString(""); err == nil {
		t.Error("SetConnectionString(\"\") should fail")
	}
}

func TestDelete_Missing(t *testing.T) {
	gokeyring.MockInit()
	if err := (Entry{Service: "lifeos-test", User: "nobody"}).Delete(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestEntriesAreIndependent(t *testing.T) {
	gokeyring.MockInit()
	a := Entry{Service: "lifeos-test", User: "a"}
	b := Entry{Service: "lifeos-test", User: "b"}
	if err := a.Set("one"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Get(); !errors.Is(err, ErrNotFound) {
		t.Errorf("b.Get() error = %v, want ErrNotFound", err)
	}
}

func TestIsAvailable_Mock(t *testing.T) {
	gokeyring.MockInit()
	if !IsAvailable() {
		t.Error("mock keyring should be available")
	}
}

func TestUnavailableBackend(t *testing.T) {
	gokeyring.MockInitWithError(errors.New("dbus down"))
	defer gokeyring.MockInit()

	if _, err := GetConnectionString(); !errors.Is(err, ErrKeyringUnavailable) {
		t.Errorf("GetConnectionString() error = %v, want ErrKeyringUnavailable", err)
	}
	if IsAvailable() {
		t.Error("IsAvailable() should be false when the backend errors")
	}
}
