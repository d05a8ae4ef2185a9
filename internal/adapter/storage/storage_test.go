package storage

import (
	"testing"

	"cmsadmin/internal/domain"
)

func tiers(t *testing.T) map[string]domain.TokenStorage {
	t.Helper()
	file, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return map[string]domain.TokenStorage{
		"memory": NewMemory(),
		"file":   file,
	}
}

func TestStorage_RoundTrip(t *testing.T) {
	for name, s := range tiers(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.Get("cms_access_token"); err != nil || ok {
				t.Fatalf("Get on empty store = ok=%v err=%v", ok, err)
			}

			if err := s.Set("cms_access_token", "tok-1"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			v, ok, err := s.Get("cms_access_token")
			if err != nil || !ok || v != "tok-1" {
				t.Fatalf("Get = %q, %v, %v", v, ok, err)
			}

			// Overwrite
			if err := s.Set("cms_access_token", "tok-2"); err != nil {
				t.Fatalf("Set: %v", err)
			}
			v, _, _ = s.Get("cms_access_token")
			if v != "tok-2" {
				t.Fatalf("Get after overwrite = %q", v)
			}

			if err := s.Delete("cms_access_token"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, ok, _ := s.Get("cms_access_token"); ok {
				t.Fatal("value survived Delete")
			}

			// Deleting an absent key is not an error.
			if err := s.Delete("cms_access_token"); err != nil {
				t.Fatalf("Delete absent key: %v", err)
			}
		})
	}
}

func TestFile_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	first, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := first.Set("cms_access_token", "persisted"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	second, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile (reopen): %v", err)
	}
	v, ok, err := second.Get("cms_access_token")
	if err != nil || !ok || v != "persisted" {
		t.Fatalf("Get after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestFile_RejectsPathEscapingKeys(t *testing.T) {
	file, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	for _, key := range []string{"", "..", "a/b", `a\b`} {
		if err := file.Set(key, "x"); err == nil {
			t.Errorf("Set(%q) accepted an unsafe key", key)
		}
	}
}
