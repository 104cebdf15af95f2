package contact

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	if err != nil {
		t.Fatalf("NewRecord(%q): %v", name, err)
	}
	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q): %v", p, err)
		}
	}
	return r
}

func TestNewRecord(t *testing.T) {
	t.Run("starts without phones", func(t *testing.T) {
		r := newTestRecord(t, "john")
		if r.Name().Value() != "john" {
			t.Errorf("Name().Value() = %q, want %q", r.Name().Value(), "john")
		}
		if got := r.Phones(); len(got) != 0 {
			t.Errorf("Phones() = %v, want empty", got)
		}
	})

	t.Run("empty name fails", func(t *testing.T) {
		r, err := NewRecord("")
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("NewRecord(\"\") error = %v, want *ValidationError", err)
		}
		if r != nil {
			t.Errorf("NewRecord(\"\") = %v, want nil record", r)
		}
	})
}

func TestRecord_AddPhone(t *testing.T) {
	t.Run("appends in order", func(t *testing.T) {
		r := newTestRecord(t, "john", "123456789", "+987654321")
		want := []string{"123456789", "+987654321"}
		if diff := cmp.Diff(want, r.Phones()); diff != "" {
			t.Errorf("Phones() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid phone is rejected and not stored", func(t *testing.T) {
		r := newTestRecord(t, "john")
		err := r.AddPhone("bad")
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("AddPhone(bad) error = %v, want *ValidationError", err)
		}
		if got := r.Phones(); len(got) != 0 {
			t.Errorf("Phones() = %v, want empty", got)
		}
	})
}

func TestRecord_RemovePhone(t *testing.T) {
	t.Run("removes existing phone", func(t *testing.T) {
		r := newTestRecord(t, "john", "123456789", "987654321")
		if !r.RemovePhone("123456789") {
			t.Fatal("RemovePhone(existing) = false, want true")
		}
		if diff := cmp.Diff([]string{"987654321"}, r.Phones()); diff != "" {
			t.Errorf("Phones() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("removes only the first duplicate", func(t *testing.T) {
		r := newTestRecord(t, "john", "123456789", "555555555", "123456789")
		r.RemovePhone("123456789")
		want := []string{"555555555", "123456789"}
		if diff := cmp.Diff(want, r.Phones()); diff != "" {
			t.Errorf("Phones() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("absent phone leaves record unchanged", func(t *testing.T) {
		r := newTestRecord(t, "john", "123456789")
		if r.RemovePhone("000000000") {
			t.Error("RemovePhone(absent) = true, want false")
		}
		if diff := cmp.Diff([]string{"123456789"}, r.Phones()); diff != "" {
			t.Errorf("Phones() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRecord_EditPhone(t *testing.T) {
	t.Run("updates in place", func(t *testing.T) {
		r := newTestRecord(t, "john", "111111111", "222222222")
		found, err := r.EditPhone("222222222", "333333333")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatal("EditPhone(existing) found = false, want true")
		}
		want := []string{"111111111", "333333333"}
		if diff := cmp.Diff(want, r.Phones()); diff != "" {
			t.Errorf("Phones() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing old phone", func(t *testing.T) {
		r := newTestRecord(t, "john", "111111111")
		found, err := r.EditPhone("999999999", "333333333")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("EditPhone(missing) found = true, want false")
		}
		if diff := cmp.Diff([]string{"111111111"}, r.Phones()); diff != "" {
			t.Errorf("Phones() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid new value is kept after validation error", func(t *testing.T) {
		r := newTestRecord(t, "john", "111111111")
		found, err := r.EditPhone("111111111", "bad")
		if !found {
			t.Error("found = false, want true")
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("error = %v, want *ValidationError", err)
		}
		if diff := cmp.Diff([]string{"bad"}, r.Phones()); diff != "" {
			t.Errorf("Phones() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRecord_FirstPhone(t *testing.T) {
	r := newTestRecord(t, "john")
	if _, err := r.FirstPhone(); !errors.Is(err, ErrNoPhones) {
		t.Errorf("FirstPhone() on empty record error = %v, want ErrNoPhones", err)
	}

	_ = r.AddPhone("123456789")
	_ = r.AddPhone("987654321")
	p, err := r.FirstPhone()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Value() != "123456789" {
		t.Errorf("FirstPhone().Value() = %q, want %q", p.Value(), "123456789")
	}
}

func TestRecord_String(t *testing.T) {
	tests := []struct {
		name   string
		phones []string
		want   string
	}{
		{name: "no phones", want: "Name: john\n"},
		{name: "one phone", phones: []string{"123456789"}, want: "Name: john\nPhone: 123456789"},
		{
			name:   "two phones",
			phones: []string{"123456789", "+987654321"},
			want:   "Name: john\nPhone: 123456789, Phone: +987654321",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecord(t, "john", tt.phones...)
			if got := r.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecord_PhonesReturnsCopy(t *testing.T) {
	r := newTestRecord(t, "john", "123456789")
	got := r.Phones()
	got[0] = "mutated"
	if r.Phones()[0] != "123456789" {
		t.Error("mutating Phones() result changed the record")
	}
}
