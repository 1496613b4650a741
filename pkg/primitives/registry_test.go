package primitives

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func noopRenderer(*bytes.Buffer, Control, Data) error { return nil }

func TestRegistry_RegisterNormalizesNames(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("  Slider ", Descriptor{Renderer: noopRenderer}); err != nil {
		t.Fatalf("register: %v", err)
	}
	desc, ok := reg.Descriptor("slider")
	if !ok || desc.Name != "slider" {
		t.Fatalf("expected normalized descriptor, got %#v (found=%v)", desc, ok)
	}
}

func TestRegistry_RegisterValidates(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(" ", Descriptor{Renderer: noopRenderer}); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if err := reg.Register("slider", Descriptor{}); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestRegistry_CloneIsolated(t *testing.T) {
	base := NewDefaultRegistry()
	clone := base.Clone()
	clone.MustRegister("slider", Descriptor{Renderer: noopRenderer})

	if _, ok := base.Descriptor("slider"); ok {
		t.Fatalf("clone registration leaked into base registry")
	}
}

func TestNewDefaultRegistry_Names(t *testing.T) {
	want := []string{"date", "email", "label", "number", "password", "select", "text", "textarea", "time_zone"}
	if diff := cmp.Diff(want, NewDefaultRegistry().Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestControlIdentifiers(t *testing.T) {
	cases := []struct {
		object, field, id, name string
	}{
		{"user", "email", "user_email", "user[email]"},
		{"user[profile]", "bio", "user_profile_bio", "user[profile][bio]"},
		{"", "email", "email", "email"},
		{"user", "admin?", "user_admin", "user[admin?]"},
	}
	for _, tc := range cases {
		if got := ControlID(tc.object, tc.field); got != tc.id {
			t.Fatalf("ControlID(%q, %q) = %q, want %q", tc.object, tc.field, got, tc.id)
		}
		if got := ControlName(tc.object, tc.field); got != tc.name {
			t.Fatalf("ControlName(%q, %q) = %q, want %q", tc.object, tc.field, got, tc.name)
		}
	}
}
