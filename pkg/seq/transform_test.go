package seq

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	got := drain(t, Select(From([]int{1, 2, 3}), strconv.Itoa))
	if !equalSlices(got, []string{"1", "2", "3"}) {
		t.Errorf("expected [1 2 3] as strings, got %v", got)
	}
}

func TestTry_ErrorStopsPull(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	calls := 0

	s := Try(From([]int{1, 2, 3, 4}), func(v int) (int, error) {
		calls++
		if v == 3 {
			return 0, errBoom
		}
		return v * 10, nil
	})

	it, err := s.Pull()
	if err != nil {
		t.Fatalf("pull: %v", err)
	}

	var out []int
	var pullErr error
	for {
		v, ok, err := it.Next(context.Background())
		if err != nil {
			pullErr = err
			break
		}
		if !ok {
			break
		}
		out = append(out, v)
	}

	if !errors.Is(pullErr, errBoom) {
		t.Fatalf("expected the transform error, got %v", pullErr)
	}
	if !equalSlices(out, []int{10, 20}) {
		t.Errorf("no output past the failing element, got %v", out)
	}
	if calls != 3 {
		t.Errorf("the transform must not be retried, got %d calls", calls)
	}
}

func TestDistinctBy(t *testing.T) {
	t.Parallel()

	type user struct {
		Name string
		Role string
	}

	s := DistinctBy(
		From([]user{{"ann", "admin"}, {"bob", "admin"}, {"cal", "guest"}}),
		func(u user) string { return u.Role },
	)

	got := drain(t, s)
	if len(got) != 2 || got[0].Name != "ann" || got[1].Name != "cal" {
		t.Errorf("expected first-seen per role [ann cal], got %v", got)
	}
}

func TestUnionBy(t *testing.T) {
	t.Parallel()

	got := drain(t, UnionBy(
		From([]int{1, 2, 3}),
		From([]int{11, 12, 14}),
		func(v int) int { return v % 10 },
	))
	if !equalSlices(got, []int{1, 2, 3, 14}) {
		t.Errorf("expected [1 2 3 14], got %v", got)
	}
}

func TestIntersectBy(t *testing.T) {
	t.Parallel()

	got := drain(t, IntersectBy(
		From([]int{1, 2, 3, 4}),
		From([]int{13, 14}),
		func(v int) int { return v % 10 },
	))
	if !equalSlices(got, []int{3, 4}) {
		t.Errorf("expected [3 4], got %v", got)
	}
}
