package watcher

import (
	"testing"
	"time"
)

func Test_Debouncer_CollapsesSamePath(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	d.Add("/docs/a.md", false)
	d.Add("/docs/a.md", false)
	d.Add("/docs/a.md", true)

	select {
	case batch := <-d.Output():
		if len(batch) != 1 {
			t.Fatalf("expected 1 collapsed change, got %d", len(batch))
		}
		if !batch[0].Removed {
			t.Error("expected the latest change to win")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for batch")
	}
}

func Test_Debouncer_BatchesDistinctPaths(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	d.Add("/docs/a.md", false)
	d.Add("/docs/b.md", false)

	select {
	case batch := <-d.Output():
		if len(batch) != 2 {
			t.Errorf("expected 2 changes, got %d", len(batch))
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for batch")
	}
}

func Test_Debouncer_QuietPeriodRestarts(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	d.Add("/docs/a.md", false)
	time.Sleep(20 * time.Millisecond)
	d.Add("/docs/b.md", false)

	select {
	case batch := <-d.Output():
		// Both changes arrive in one batch because the second Add restarted
		// the timer before the first flush.
		if len(batch) != 2 {
			t.Errorf("expected both changes in one batch, got %d", len(batch))
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for batch")
	}
}
