package debate

import (
	"fmt"

	"github.com/lorenzotomasdiez/debate-cli/internal/models"
)

// Prompt builders are pure: same inputs, same strings, no I/O. Prior
// responses are embedded verbatim, never summarized, so each step sees the
// full text it is responding to.

// AdvocatePrompt instructs an agent to argue in favor of the topic.
func AdvocatePrompt(topic models.Topic) string {
	return fmt.Sprintf(`You are arguing in favor of the following topic:

Topic: %s
Description: %s

Provide a clear, compelling argument in favor of this topic.
Be specific and evidence-based.
Keep your response focused and substantive.`, topic.Title, topic.Description)
}

// OpponentPrompt instructs an agent to counter the advocate's argument
// point-by-point.
func OpponentPrompt(topic models.Topic, advocateText string) string {
	return fmt.Sprintf(`You are arguing against the following topic:

Topic: %s
Description: %s

The argument in favor of this topic was:
---
%s
---

Provide a clear, compelling counter-argument against this topic.
Address the points made in the FOR argument.
Be specific and evidence-based.
Keep your response focused and substantive.`, topic.Title, topic.Description, advocateText)
}

// SynthesisPrompt instructs an agent to reconcile both prior arguments.
func SynthesisPrompt(topic models.Topic, advocateText, opponentText string) string {
	return fmt.Sprintf(`You are synthesizing a debate on the following topic:

Topic: %s
Description: %s

ARGUMENT IN FAVOR:
---
%s
---

ARGUMENT AGAINST:
---
%s
---

Provide a balanced synthesis that:
1. Acknowledges the strengths of both arguments
2. Identifies the weaknesses in both arguments
3. Synthesizes a nuanced perspective that considers both viewpoints
4. Offers insights on how to resolve the tensions between the two positions

Keep your synthesis thoughtful and balanced.`, topic.Title, topic.Description, advocateText, opponentText)
}
