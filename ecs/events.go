package ecs

// EventKind identifies a collision event type.
type EventKind uint8

const (
	EventPlayerBulletHitEnemy EventKind = iota
	EventEnemyBulletHitPlayer
	EventBombHitEnemy
	EventBombClearedEnemyBullet
	EventPlayerPickupItem
	EventPlayerGrazeEnemyBullet
)

func (k EventKind) String() string {
	switch k {
	case EventPlayerBulletHitEnemy:
		return "PlayerBulletHitEnemy"
	case EventEnemyBulletHitPlayer:
		return "EnemyBulletHitPlayer"
	case EventBombHitEnemy:
		return "BombHitEnemy"
	case EventBombClearedEnemyBullet:
		return "BombClearedEnemyBullet"
	case EventPlayerPickupItem:
		return "PlayerPickupItem"
	case EventPlayerGrazeEnemyBullet:
		return "PlayerGrazeEnemyBullet"
	}
	return "Unknown"
}

// Event is one overlap detected by the collision engine this tick. Source
// is the entity on the tested layer (bullet, bomb field, player), Target the
// entity it overlapped.
type Event struct {
	Kind   EventKind
	Source Entity
	Target Entity
}

// EventLog is the frame-scoped collision event log. The collision engine
// resets and rebuilds it every tick; resolution systems drain their event
// kinds out of it, so no event can be consumed twice and none survives the
// tick.
type EventLog struct {
	events []Event
}

// Reset clears the log at the start of a collision pass.
func (l *EventLog) Reset() {
	l.events = l.events[:0]
}

// Push appends an event.
func (l *EventLog) Push(evt Event) {
	l.events = append(l.events, evt)
}

// Drain removes and returns all events matching the given kinds, keeping
// their relative order. Each resolution system owns a disjoint set of kinds.
func (l *EventLog) Drain(kinds ...EventKind) []Event {
	if len(l.events) == 0 {
		return nil
	}
	var out []Event
	kept := l.events[:0]
	for _, evt := range l.events {
		matched := false
		for _, k := range kinds {
			if evt.Kind == k {
				matched = true
				break
			}
		}
		if matched {
			out = append(out, evt)
		} else {
			kept = append(kept, evt)
		}
	}
	l.events = kept
	return out
}

// Len returns the number of undrained events.
func (l *EventLog) Len() int {
	return len(l.events)
}
