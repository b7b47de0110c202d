package mailglass

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.Load("ck"); !errors.Is(err, ErrNoStoredCredentials) {
		t.Errorf("Load on empty store: %v, want ErrNoStoredCredentials", err)
	}

	want := TokenBundle{Token: "T", TokenSecret: "S", AccountID: "a"}
	if err := store.Save("ck", want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load("ck")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}

	if err := store.Delete("ck"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load("ck"); !errors.Is(err, ErrNoStoredCredentials) {
		t.Errorf("Load after Delete: %v, want ErrNoStoredCredentials", err)
	}
	if err := store.Delete("ck"); err != nil {
		t.Errorf("Delete on missing entry: %v", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "creds")
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	want := TokenBundle{Token: "T", TokenSecret: "S", AccountID: "acct1"}
	if err := store.Save("consumer/key", want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load("consumer/key")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}

	// Files carry the restrictive permissions credentials need.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	info, err := entries[0].Info()
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file permissions = %o, want 0600", perm)
	}

	if err := store.Delete("consumer/key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load("consumer/key"); !errors.Is(err, ErrNoStoredCredentials) {
		t.Errorf("Load after Delete: %v, want ErrNoStoredCredentials", err)
	}
}

func TestFileStoreLoadMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Load("nope"); !errors.Is(err, ErrNoStoredCredentials) {
		t.Errorf("Load: %v, want ErrNoStoredCredentials", err)
	}
	if err := store.Delete("nope"); err != nil {
		t.Errorf("Delete on missing entry: %v", err)
	}
}

func TestFileStoreCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ck.json"), []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load("ck"); err == nil {
		t.Error("Load of corrupt entry should fail")
	}
}
