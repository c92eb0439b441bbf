package leaderboard_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/annamandarin/gamify/internal/leaderboard"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) leaderboard.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return leaderboard.NewStore(rdb)
}

func TestAddPointsAccumulates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.AddPoints(ctx, "student-a", 35); err != nil {
		t.Fatalf("AddPoints failed: %v", err)
	}
	if err := store.AddPoints(ctx, "student-a", 50); err != nil {
		t.Fatalf("AddPoints failed: %v", err)
	}

	top, err := store.Top(ctx, 10)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("expected one entry, got %d", len(top))
	}
	if top[0].StudentID != "student-a" || top[0].Points != 85 {
		t.Fatalf("expected student-a with 85 points, got %+v", top[0])
	}
}

func TestTopOrdersByPointsDescending(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for id, points := range map[string]int{
		"student-a": 40,
		"student-b": 120,
		"student-c": 75,
	} {
		if err := store.AddPoints(ctx, id, points); err != nil {
			t.Fatalf("AddPoints(%s) failed: %v", id, err)
		}
	}

	top, err := store.Top(ctx, 2)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected the top 2 entries, got %d", len(top))
	}
	if top[0].StudentID != "student-b" || top[1].StudentID != "student-c" {
		t.Fatalf("expected [student-b, student-c], got %+v", top)
	}
}

func TestTopDefaultsLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.AddPoints(ctx, "student-a", 10); err != nil {
		t.Fatalf("AddPoints failed: %v", err)
	}

	top, err := store.Top(ctx, 0)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("expected the non-positive limit to fall back to a default, got %d entries", len(top))
	}
}
