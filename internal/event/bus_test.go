package event

import "testing"

func TestBusDeliversInOrder(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(func(Announcement) { got = append(got, "first") })
	bus.Subscribe(func(Announcement) { got = append(got, "second") })

	bus.Announce(Announcement{Topic: TopicMoved})

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("delivery order = %v, want [first second]", got)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	unsubscribe := bus.Subscribe(func(Announcement) { calls++ })

	bus.Announce(Announcement{Topic: TopicMoved})
	unsubscribe()
	bus.Announce(Announcement{Topic: TopicMoved})

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestBusReentrantSubscribe(t *testing.T) {
	bus := NewBus()
	lateCalls := 0
	bus.Subscribe(func(Announcement) {
		bus.Subscribe(func(Announcement) { lateCalls++ })
	})

	bus.Announce(Announcement{Topic: TopicMoved})
	if lateCalls != 0 {
		t.Error("a handler subscribed mid-delivery must not receive the in-flight announcement")
	}

	bus.Announce(Announcement{Topic: TopicMoved})
	if lateCalls != 1 {
		t.Errorf("late handler called %d times after the next announcement, want 1", lateCalls)
	}
}

func TestBusReentrantAnnounce(t *testing.T) {
	bus := NewBus()
	var topics []Topic
	bus.Subscribe(func(a Announcement) {
		topics = append(topics, a.Topic)
		if a.Topic == TopicMoved {
			bus.Announce(Announcement{Topic: TopicPlonk})
		}
	})

	bus.Announce(Announcement{Topic: TopicMoved})

	if len(topics) != 2 || topics[0] != TopicMoved || topics[1] != TopicPlonk {
		t.Errorf("topics = %v, want [caret.moved caret.plonk]", topics)
	}
}

func TestFuncAdapter(t *testing.T) {
	var got Announcement
	var a Announcer = Func(func(ann Announcement) { got = ann })

	a.Announce(Announcement{Topic: TopicDeleted, Position: 4})

	if got.Topic != TopicDeleted || got.Position != 4 {
		t.Errorf("adapter delivered %+v", got)
	}
}
