package storage

import (
	"strings"
	"testing"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("prescriptions", "My Scan.PNG")
	if !strings.HasPrefix(key, "prescriptions/") {
		t.Fatalf("key %q not under folder", key)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Fatalf("key %q did not keep a lowercased extension", key)
	}
	if key == ObjectKey("prescriptions", "My Scan.PNG") {
		t.Fatal("keys must be unique per upload")
	}
}

func TestObjectKeyNoExtension(t *testing.T) {
	key := ObjectKey("lab-requisitions", "scan")
	if strings.Contains(strings.TrimPrefix(key, "lab-requisitions/"), ".") {
		t.Fatalf("key %q should have no extension", key)
	}
}

func TestIsPDF(t *testing.T) {
	cases := map[string]bool{
		"form.pdf":  true,
		"FORM.PDF":  true,
		"form.png":  false,
		"form":      false,
		"pdf":       false,
		"a.pdf.jpg": false,
	}
	for name, want := range cases {
		if got := IsPDF(name); got != want {
			t.Errorf("IsPDF(%q) = %v, want %v", name, got, want)
		}
	}
}
