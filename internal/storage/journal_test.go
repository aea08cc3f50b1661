package storage

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type failingBackend struct{}

var errBroken = errors.New("disk on fire")

func (failingBackend) Get(context.Context, string) (string, bool, error) {
	return "", false, errBroken
}
func (failingBackend) Set(context.Context, string, string) error { return errBroken }
func (failingBackend) Remove(context.Context, string) error      { return errBroken }
func (failingBackend) Close() error                              { return nil }

func TestJournalWriteAndReadParsed(t *testing.T) {
	ctx := context.Background()
	j := NewJournal(NewFileBackend(newTempManager(t)), zap.NewNop())

	if got := j.ReadParsed(ctx); len(got) != 0 {
		t.Fatalf("ReadParsed on empty store = %d entries, want 0", len(got))
	}

	j.Write(ctx, "01.02.24,a\nnone\n\n02.02.24,b\n1 beer\n")
	entries := j.ReadParsed(ctx)
	if len(entries) != 2 {
		t.Fatalf("ReadParsed = %d entries, want 2", len(entries))
	}
	if entries[0].Date.Day() != 2 || entries[1].Date.Day() != 1 {
		t.Fatalf("entries not newest block first: %v, %v", entries[0].Date, entries[1].Date)
	}

	j.Write(ctx, "03.02.24")
	if got := j.ReadParsed(ctx); len(got) != 1 {
		t.Fatalf("Write did not replace text, got %d entries", len(got))
	}

	j.Clear(ctx)
	if got := j.Raw(ctx); got != "" {
		t.Fatalf("Raw after Clear = %q, want empty", got)
	}
	if got := j.ReadParsed(ctx); got == nil || len(got) != 0 {
		t.Fatalf("ReadParsed after Clear = %#v, want empty slice", got)
	}
}

func TestJournalAppend(t *testing.T) {
	ctx := context.Background()
	j := NewJournal(NewFileBackend(newTempManager(t)), nil)

	j.Append(ctx, "01.02.24,a\nnone\n")
	j.Append(ctx, "\n\n")
	j.Append(ctx, "02.02.24,b\nno")

	if got, want := j.Raw(ctx), "01.02.24,a\nnone\n\n02.02.24,b\nno"; got != want {
		t.Fatalf("Raw = %q, want %q", got, want)
	}
	entries := j.ReadParsed(ctx)
	if len(entries) != 2 || entries[0].Date.Day() != 2 {
		t.Fatalf("unexpected entries after append: %+v", entries)
	}
}

func TestJournalSwallowsBackendErrors(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)
	j := NewJournal(failingBackend{}, zap.New(core))

	j.Write(ctx, "01.02.24")
	j.Clear(ctx)
	if got := j.ReadParsed(ctx); got == nil || len(got) != 0 {
		t.Fatalf("ReadParsed with broken backend = %#v, want empty slice", got)
	}

	errorsLogged := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	if len(errorsLogged) != 3 {
		t.Fatalf("logged %d errors, want 3", len(errorsLogged))
	}
	want := []string{"Error updating journal", "Error removing journal", "Error getting journal data"}
	for i, entry := range errorsLogged {
		if entry.Message != want[i] {
			t.Fatalf("log[%d] = %q, want %q", i, entry.Message, want[i])
		}
	}
}
