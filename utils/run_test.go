package utils

import (
	"errors"
	"testing"
)

func TestRun(t *testing.T) {
	var calls []string
	record := func(name string, err error) Runnable {
		return func() error {
			calls = append(calls, name)
			return err
		}
	}
	boom := errors.New("boom")

	err := Run(record("a", nil), Step("parse", record("b", boom)), record("c", nil))
	if !errors.Is(err, boom) {
		t.Fatalf("Got %v, want %v", err, boom)
	}
	if err.Error() != "parse: boom" {
		t.Errorf("Got %q, want %q", err.Error(), "parse: boom")
	}
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Errorf("Got calls %v, want [a b]", calls)
	}
}

func TestRun_Empty(t *testing.T) {
	if err := Run(); err != nil {
		t.Errorf("Got %v, want nil", err)
	}
	if err := Step("noop", func() error { return nil })(); err != nil {
		t.Errorf("Got %v, want nil", err)
	}
}
