package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/morpheuslabs/sleepmesh/core"
)

const storytellerStyle = "You are a gentle bedtime storyteller. " +
	"Write in simple, calming language suitable for winding down. " +
	"Aim for ~180-300 words. " +
	"No horror, no high-adrenaline action, no disturbing content. " +
	"Keep it cozy, safe, hopeful. End softly."

const fallbackStory = "As the evening breeze drifted through the quiet room, a small lantern " +
	"glowed like a sleepy firefly on the windowsill. Outside, a calm lake " +
	"held the sky's last colors—lavender and soft silver—while reeds swayed " +
	"like they were listening to a familiar lullaby. A traveler paused on the " +
	"shore, toes in the cool sand, breathing with the water's slow rhythm. " +
	"They imagined each ripple as a thought passing by, kind and unhurried. " +
	"A gentle owl blinked from a pine branch, then tucked its head beneath a " +
	"wing. The lantern's glow softened, and the traveler wrapped a blanket a " +
	"little tighter, feeling warm and safe. The world settled into the hush " +
	"of night, and the lake drew a curtain of stars across its surface. With " +
	"one last easy breath, the traveler smiled, letting the quiet carry them " +
	"toward rest—unfolding like a cloud, drifting into dream."

// StorytellerAgent generates short calming bedtime stories. The raw message
// steers the theme; the caller's display name is worked in gently when known.
type StorytellerAgent struct {
	deps Deps
}

// NewStorytellerAgent builds the storyteller agent.
func NewStorytellerAgent(deps Deps) *StorytellerAgent {
	return &StorytellerAgent{deps: deps.withDefaults()}
}

// Name implements core.Agent.
func (a *StorytellerAgent) Name() string { return "storyteller" }

// ActionType implements core.Agent. Stories carry no mandatory transparency
// disclosure.
func (a *StorytellerAgent) ActionType() string { return "general_response" }

// HandleCore generates the story, falling back to a fixed one when the
// provider declines.
func (a *StorytellerAgent) HandleCore(ctx context.Context, message string, actx core.Context) (*core.Response, error) {
	topic := strings.TrimSpace(message)

	text, ok := a.deps.Generator.GenerateText(ctx, a.buildPrompt(topic, actx.DisplayName()))
	if !ok || text == "" {
		text = fallbackStory
	}

	data := map[string]any{}
	if topic != "" {
		data["topic"] = topic
	}
	return &core.Response{Agent: a.Name(), Text: strings.TrimSpace(text), Data: data}, nil
}

func (a *StorytellerAgent) buildPrompt(topic, name string) string {
	var b strings.Builder
	b.WriteString(storytellerStyle)
	b.WriteString("\nWrite a short bedtime story that helps a person relax for sleep.")
	if topic != "" {
		fmt.Fprintf(&b, " Topic or vibe: %s.", topic)
	}
	if name != "" {
		fmt.Fprintf(&b, " The listener's name is %s. Work it in gently once.", name)
	}
	b.WriteString("\nKeep sentences smooth and imagery soft (nature, warm light, calm water, " +
		"quiet rooms). Avoid screens and caffeine references. No lists—just a single, " +
		"flowing story. End with a gentle closing line.")
	return b.String()
}
