package util

import "testing"

func TestFirstSelection(t *testing.T) {
	t.Run("returns first of several files", func(t *testing.T) {
		got, err := firstSelection([]string{"/tmp/a.obj", "/tmp/b.obj"})
		if err != nil {
			t.Fatalf("expected no error but got %v", err)
		}
		if got != "/tmp/a.obj" {
			t.Errorf("expected /tmp/a.obj but got %v", got)
		}
	})
	t.Run("cancelled dialog yields error", func(t *testing.T) {
		_, err := firstSelection(nil)
		if err == nil {
			t.Fatal("expected an error but got nil")
		}
		expected := "no model chosen"
		if err.Error() != expected {
			t.Errorf("expected %q but got %q", expected, err.Error())
		}
	})
}
