package planner

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
)

// Event types published on the bus. The build is the event source.
const (
	EventBuildCreated          = "planner.build.created"
	EventBuildDeleted          = "planner.build.deleted"
	EventBuildReset            = "planner.build.reset"
	EventAllocationChanged     = "planner.allocation.changed"
	EventCharacterLevelChanged = "planner.build.level_changed"
	EventModeChanged           = "planner.build.mode_changed"
)

// Event context keys
const (
	ContextKeySkillID       = "skill_id"
	ContextKeyAction        = "action"
	ContextKeyLevel         = "level"
	ContextKeyPreviousLevel = "previous_level"
	ContextKeyMode          = "mode"
)

// publish notifies subscribers after a change is stored. Subscriber errors
// are logged only; the change has already been saved.
func (o *Orchestrator) publish(ctx context.Context, eventType string, build *skillbook.Build, data map[string]any) {
	event := events.NewGameEvent(eventType, build, nil)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("event handler failed",
			"event", eventType,
			"build_id", build.ID,
			"error", err)
	}
}
