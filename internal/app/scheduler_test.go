package app

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/Marshal91/twitter-news-bot/internal/storage"
)

func TestDailyTimeToSpec(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"05:30", "30 05 * * *"},
		{"22:30", "30 22 * * *"},
		{"12:00", "00 12 * * *"},
		{"9:15", "15 9 * * *"},
	}

	for _, tc := range cases {
		got, err := dailyTimeToSpec(tc.in)
		if err != nil {
			t.Errorf("dailyTimeToSpec(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("dailyTimeToSpec(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := dailyTimeToSpec("noon"); err == nil {
		t.Error("expected error for a time without a colon")
	}
}

func TestNewScheduler_RejectsMalformedTimes(t *testing.T) {
	o := testOrchestrator(t)

	if _, err := NewScheduler(o, []string{"banana"}, time.Hour); err == nil {
		t.Error("expected error for a malformed daily time")
	}

	if _, err := NewScheduler(o, []string{"05:30", "22:30"}, 2*time.Hour); err != nil {
		t.Errorf("valid schedule rejected: %v", err)
	}
}

func testOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	store, err := storage.OpenFileStore(filepath.Join(t.TempDir(), "l.txt"), filepath.Join(t.TempDir(), "h.txt"))
	if err != nil {
		t.Fatal(err)
	}
	return NewOrchestrator(fixedPicker{category: "F1"}, &scriptedSelector{}, passthroughComposer{}, &refusingGate{}, store, multiTable(), rand.New(rand.NewSource(1)))
}
