package queue

import (
	"context"
	"sync"
	"testing"

	"github.com/okian/matchday/internal/domain/model"
)

func job(i int) Job {
	return Job{
		Index: i,
		Home:  &model.Team{ID: "home"},
		Away:  &model.Team{ID: "away"},
		Seed:  int64(i),
	}
}

func TestInMemoryQueue_BasicOperations(t *testing.T) {
	q := NewInMemoryQueue(WithCapacity(2))
	ctx := context.Background()

	if l := q.Len(ctx); l != 0 {
		t.Errorf("expected length 0, got %d", l)
	}

	if !q.Enqueue(ctx, job(7)) {
		t.Error("expected enqueue to succeed")
	}
	if l := q.Len(ctx); l != 1 {
		t.Errorf("expected length 1, got %d", l)
	}

	j := <-q.Dequeue(ctx)
	if j.Index != 7 || j.Seed != 7 || j.Home.ID != "home" {
		t.Errorf("unexpected job %+v", j)
	}
	if l := q.Len(ctx); l != 0 {
		t.Errorf("expected length 0, got %d", l)
	}
}

func TestInMemoryQueue_Capacity(t *testing.T) {
	q := NewInMemoryQueue(WithCapacity(2))
	ctx := context.Background()

	if !q.Enqueue(ctx, job(1)) || !q.Enqueue(ctx, job(2)) {
		t.Fatal("expected enqueue to succeed below capacity")
	}
	if q.Enqueue(ctx, job(3)) {
		t.Error("expected enqueue to fail when full")
	}

	<-q.Dequeue(ctx)
	if !q.Enqueue(ctx, job(3)) {
		t.Error("expected enqueue to succeed after a dequeue")
	}
}

func TestInMemoryQueue_Close(t *testing.T) {
	q := NewInMemoryQueue(WithCapacity(4))
	ctx := context.Background()
	q.Enqueue(ctx, job(1))

	if err := q.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !q.IsClosed() {
		t.Error("expected queue to report closed")
	}
	if err := q.Close(); err != nil {
		t.Errorf("second close should be a no-op, got %v", err)
	}
	if q.Enqueue(ctx, job(2)) {
		t.Error("expected enqueue to fail after close")
	}

	// Buffered jobs drain, then the channel closes.
	var got []int
	for j := range q.Dequeue(ctx) {
		got = append(got, j.Index)
	}
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("expected to drain job 1, got %v", got)
	}
}

func TestInMemoryQueue_CancelledContext(t *testing.T) {
	q := NewInMemoryQueue(WithCapacity(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q.Enqueue(context.Background(), job(1))
	if q.Enqueue(ctx, job(2)) {
		t.Error("expected enqueue to fail on a full queue with a cancelled context")
	}
}

func TestInMemoryQueue_ConcurrentProducers(t *testing.T) {
	const producers, perProducer = 8, 16
	q := NewInMemoryQueue(WithCapacity(producers * perProducer))
	ctx := context.Background()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				if !q.Enqueue(ctx, job(p*perProducer+i)) {
					t.Errorf("enqueue %d failed", p*perProducer+i)
				}
			}
		}(p)
	}
	wg.Wait()

	if l := q.Len(ctx); l != producers*perProducer {
		t.Errorf("expected %d jobs, got %d", producers*perProducer, l)
	}
}

func TestWithCapacity_IgnoresInvalid(t *testing.T) {
	q := NewInMemoryQueue(WithCapacity(0), WithCapacity(-3))
	if q.capacity != defaultQueueCapacity {
		t.Errorf("expected default capacity %d, got %d", defaultQueueCapacity, q.capacity)
	}
}
