package events

import (
	"battleforge/internal/logging"
)

// Type names one structured notification kind.
type Type string

const (
	CharacterCreated  Type = "character-created"
	CharacterHealed   Type = "character-healed"
	BattleCreated     Type = "battle-created"
	StanceCommitted   Type = "stance-committed"
	WildcardTriggered Type = "wildcard-triggered"
	WildcardDecided   Type = "wildcard-decided"
	BattleEnded       Type = "battle-ended"
	BattleAbandoned   Type = "battle-abandoned"
	BattleFinalized   Type = "battle-finalized"
)

// Event is one structured notification. BattleUUID is empty for pure
// character events.
type Event struct {
	Type          Type                   `json:"type"`
	BattleUUID    string                 `json:"battle_uuid,omitempty"`
	CharacterUUID string                 `json:"character_uuid,omitempty"`
	At            int64                  `json:"at"`
	Payload       map[string]interface{} `json:"payload,omitempty"`
}

// Sink receives events as they happen. Publish must not block the caller
// for long; slow consumers are a sink implementation problem.
type Sink interface {
	Publish(e Event)
}

// LogSink writes every event to the structured log. Used when no live
// stream consumer is wired, and as the fan-in behind the websocket hub.
type LogSink struct{}

func (LogSink) Publish(e Event) {
	fields := logging.Fields{"event": string(e.Type)}
	if e.BattleUUID != "" {
		fields["battle_uuid"] = e.BattleUUID
	}
	if e.CharacterUUID != "" {
		fields["character_uuid"] = e.CharacterUUID
	}
	for k, v := range e.Payload {
		fields[k] = v
	}
	logging.Info("event", fields)
}

// MultiSink fans one event out to several sinks.
type MultiSink []Sink

func (m MultiSink) Publish(e Event) {
	for _, s := range m {
		s.Publish(e)
	}
}
