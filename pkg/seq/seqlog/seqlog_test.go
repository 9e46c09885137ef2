package seqlog

import "testing"

func TestNew_FallsBackToInfoOnBadLevel(t *testing.T) {
	t.Parallel()

	l := New(Config{Level: "no-such-level"}, "test")
	if l == nil {
		t.Fatal("expected a logger")
	}
}

func TestWithComponent(t *testing.T) {
	t.Parallel()

	l := NewDefault("root").WithComponent("child")
	if l.component != "child" {
		t.Errorf("expected child, got %q", l.component)
	}
}

func TestSetDefault(t *testing.T) {
	replacement := NewDefault("replacement")
	SetDefault(replacement)
	if Default() != replacement {
		t.Error("default logger was not replaced")
	}
	SetDefault(nil) // ignored
	if Default() != replacement {
		t.Error("nil must not clear the default")
	}
}
