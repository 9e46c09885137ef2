package agg

import (
	"context"
	"testing"

	"github.com/ib-77/seq3/pkg/seq"
	"github.com/ib-77/seq3/pkg/seq/seqlog"
)

func TestToArray(t *testing.T) {
	t.Parallel()

	got, err := ToArray(seq.From([]int{1, 2, 3}).Reverse())
	if err != nil {
		t.Fatalf("toArray: %v", err)
	}
	if len(got) != 3 || got[0] != 3 || got[2] != 1 {
		t.Errorf("expected [3 2 1], got %v", got)
	}
}

func TestToArrayAsync_DrainsChannelSequence(t *testing.T) {
	t.Parallel()

	ch := make(chan int)
	go func() {
		defer close(ch)
		ch <- 1
		ch <- 2
	}()

	got, err := ToArrayAsync(context.Background(), seq.FromChan(ch))
	if err != nil {
		t.Fatalf("toArrayAsync: %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("expected [1 2], got %v", got)
	}
}

func TestToArrayAsync_LegalForSyncSequences(t *testing.T) {
	t.Parallel()

	got, err := ToArrayAsync(context.Background(), seq.From([]int{4, 5}))
	if err != nil {
		t.Fatalf("toArrayAsync: %v", err)
	}
	if len(got) != 2 || got[0] != 4 {
		t.Errorf("expected [4 5], got %v", got)
	}
}

func TestToSet(t *testing.T) {
	t.Parallel()

	got, err := ToSet(seq.From([]string{"a", "b", "a"}))
	if err != nil {
		t.Fatalf("toSet: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 members, got %v", got)
	}
	if _, ok := got["a"]; !ok {
		t.Error("expected member a")
	}
}

func TestToMap_LastWriteWins(t *testing.T) {
	t.Parallel()

	type user struct {
		ID   int
		Name string
	}

	got, err := ToMap(
		seq.From([]user{{1, "ann"}, {2, "bob"}, {1, "late ann"}}),
		func(u user) int { return u.ID },
		func(u user) string { return u.Name },
	)
	if err != nil {
		t.Fatalf("toMap: %v", err)
	}
	if len(got) != 2 || got[1] != "late ann" || got[2] != "bob" {
		t.Errorf("expected last write to win, got %v", got)
	}
}

func TestToMap_DuplicateWarningIsNonFatal(t *testing.T) {
	t.Parallel()

	got, err := ToMap(
		seq.From([]int{1, 1, 1}),
		func(v int) int { return v },
		func(v int) int { return v },
		WarnOnDuplicates(),
		WithLogger(seqlog.NewDefault("test")),
	)
	if err != nil {
		t.Fatalf("duplicates must not fail the pull: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected one entry, got %v", got)
	}
}
