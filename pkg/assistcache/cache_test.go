package assistcache

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func streamOf(chunks ...Chunk) <-chan Chunk {
	ch := make(chan Chunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	return ch
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"  Warranty on Lucid Air?  ", "warranty on lucid air?"},
		{"HELLO", "hello"},
		{"\t spaced \n", "spaced"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestRecordStreamed_RoundTrip(t *testing.T) {
	t.Parallel()

	c := New(time.Hour)

	var forwarded string
	answer, err := c.RecordStreamed(
		"What is the warranty on the Air?",
		streamOf(Chunk{Content: "The Lucid Air "}, Chunk{Content: "carries a 4-year warranty."}),
		func(s string) error {
			forwarded += s
			return nil
		},
	)
	if err != nil {
		t.Fatalf("RecordStreamed error: %v", err)
	}

	want := "The Lucid Air carries a 4-year warranty."
	if answer != want {
		t.Errorf("answer = %q, want %q", answer, want)
	}
	if forwarded != want {
		t.Errorf("forwarded = %q, want %q", forwarded, want)
	}

	got, ok := c.Lookup("what is the warranty on the air?")
	if !ok || got != want {
		t.Errorf("Lookup after commit = (%q, %v), want (%q, true)", got, ok, want)
	}
}

func TestRecordStreamed_PartialStreamNotCommitted(t *testing.T) {
	t.Parallel()

	c := New(time.Hour)

	_, err := c.RecordStreamed(
		"tell me about the gravity",
		streamOf(Chunk{Content: "The Gravity is "}, Chunk{Err: errors.New("upstream reset")}),
		nil,
	)
	if err == nil {
		t.Fatal("expected stream error")
	}

	if _, ok := c.Lookup("tell me about the gravity"); ok {
		t.Error("partial answer must not be cached")
	}
}

func TestRecordStreamed_ForwardFailureDiscards(t *testing.T) {
	t.Parallel()

	c := New(time.Hour)

	_, err := c.RecordStreamed(
		"financing options",
		streamOf(Chunk{Content: "We offer "}, Chunk{Content: "leasing."}),
		func(string) error { return errors.New("client disconnected") },
	)
	if err == nil {
		t.Fatal("expected forward error")
	}
	if _, ok := c.Lookup("financing options"); ok {
		t.Error("answer must not be cached when the client is gone")
	}
}

func TestLookup_FuzzyMatch(t *testing.T) {
	t.Parallel()

	c := New(time.Hour)
	c.Set("what's the warranty on the lucid air?", "Four years or 50,000 miles.")

	// Paraphrased repeat, close enough to clear the ratio threshold.
	got, ok := c.Lookup("whats the warranty on the lucid air")
	if !ok {
		t.Fatal("expected fuzzy hit")
	}
	if got != "Four years or 50,000 miles." {
		t.Errorf("fuzzy answer = %q", got)
	}

	// Unrelated query stays a miss.
	if _, ok := c.Lookup("do you sell motorcycles"); ok {
		t.Error("unrelated query must miss")
	}
}

func TestSet_IdempotentOverwrite(t *testing.T) {
	t.Parallel()

	c := New(time.Hour)
	c.Set("test drive", "first")
	c.Set("test drive", "second")

	if got, _ := c.Lookup("test drive"); got != "second" {
		t.Errorf("answer = %q, want %q", got, "second")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCapacityEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	const capacity = 3
	c := New(time.Hour, WithCapacity(capacity))

	c.Set("query zero", "a0")
	c.Set("query one", "a1")
	c.Set("query two", "a2")

	// Touch the oldest so "query one" becomes least recently used.
	if _, ok := c.Lookup("query zero"); !ok {
		t.Fatal("expected hit on query zero")
	}

	c.Set("query three", "a3")

	if c.Len() != capacity {
		t.Fatalf("Len = %d, want %d", c.Len(), capacity)
	}
	if _, ok := c.Lookup("query one"); ok {
		t.Error("least-recently-used entry should have been evicted")
	}
	for _, q := range []string{"query zero", "query two", "query three"} {
		if _, ok := c.Lookup(q); !ok {
			t.Errorf("%q should have survived eviction", q)
		}
	}
}

func TestCapacityIgnoresExpiredEntries(t *testing.T) {
	t.Parallel()

	// An expired-but-unswept entry must not count against capacity and
	// must never cause a live entry to be evicted in its place.
	c := New(150*time.Millisecond, WithCapacity(2))

	c.Set("first question", "stale answer")
	time.Sleep(200 * time.Millisecond)

	c.Set("second question", "live answer")
	time.Sleep(50 * time.Millisecond)

	c.Set("third question", "new answer")

	if _, ok := c.Lookup("second question"); !ok {
		t.Fatal("live entry evicted while an expired entry held its slot")
	}
	if _, ok := c.Lookup("third question"); !ok {
		t.Fatal("expected hit on the fresh insert")
	}
}

func TestEntriesExpire(t *testing.T) {
	t.Parallel()

	c := New(50 * time.Millisecond)
	c.Set("short lived", "answer")

	if _, ok := c.Lookup("short lived"); !ok {
		t.Fatal("expected hit before expiry")
	}

	time.Sleep(80 * time.Millisecond)

	if _, ok := c.Lookup("short lived"); ok {
		t.Error("entry should have expired")
	}
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := New(time.Hour, WithCapacity(10))
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("query %d", (n+j)%20)
				c.Set(key, "answer")
				c.Lookup(key)
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
