package sse

import (
	"testing"
	"time"
)

func TestSubscribeAndPublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("presensi")
	defer cleanup()

	hub.Publish("presensi", Event{Event: "check-in", Data: "row"})

	select {
	case ev := <-ch:
		if ev.Topic != "presensi" {
			t.Errorf("event topic = %q, want %q", ev.Topic, "presensi")
		}
		if ev.Event != "check-in" {
			t.Errorf("event name = %q, want %q", ev.Event, "check-in")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for published event")
	}
}

func TestPublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("presensi")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("presensi")
	defer cleanup2()

	hub.Publish("presensi", Event{Event: "check-in"})

	for i, ch := range []chan Event{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d did not receive the event", i+1)
		}
	}
}

func TestPublishOtherTopicNotDelivered(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("presensi")
	defer cleanup()

	hub.Publish("izin", Event{Event: "verified"})

	select {
	case ev := <-ch:
		t.Fatalf("received event %+v from a different topic", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishFullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("presensi")
	defer cleanup()

	done := make(chan struct{})
	go func() {
		// Channel buffer is 16; publish past it with no reader.
		for i := 0; i < 32; i++ {
			hub.Publish("presensi", Event{Event: "check-in"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber channel")
	}
}

func TestCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup1 := hub.Subscribe("presensi")
	_, cleanup2 := hub.Subscribe("presensi")

	if got := hub.SubscriberCount("presensi"); got != 2 {
		t.Fatalf("SubscriberCount = %d, want 2", got)
	}

	cleanup1()
	if got := hub.SubscriberCount("presensi"); got != 1 {
		t.Errorf("SubscriberCount after one cleanup = %d, want 1", got)
	}

	cleanup2()
	if got := hub.SubscriberCount("presensi"); got != 0 {
		t.Errorf("SubscriberCount after all cleanups = %d, want 0", got)
	}
	if got := hub.TotalSubscribers(); got != 0 {
		t.Errorf("TotalSubscribers = %d, want 0", got)
	}
}
