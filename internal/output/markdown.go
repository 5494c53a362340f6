package output

import (
	"fmt"
	"strings"

	"github.com/lorenzotomasdiez/debate-cli/internal/models"
)

var roleTitles = map[models.Role]string{
	models.RoleAdvocate:    "Affirmative Argument",
	models.RoleOpponent:    "Negative Argument",
	models.RoleSynthesizer: "Synthesis",
}

// FormatMarkdown renders a record as a markdown document.
func FormatMarkdown(record *models.DebateRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", record.Topic.Title)
	fmt.Fprintf(&b, "## Topic Description\n\n%s\n\n", record.Topic.Description)

	for i, resp := range record.AgentResponses {
		title := roleTitles[resp.Role]
		if title == "" {
			title = string(resp.Role)
		}
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, title)
		fmt.Fprintf(&b, "**Agent:** %s\n\n", resp.AgentName)
		fmt.Fprintf(&b, "**Model:** %s\n\n", resp.ModelName)
		fmt.Fprintf(&b, "**Execution Time:** %.1fms\n\n", resp.ExecutionTimeMS)
		if resp.Success {
			fmt.Fprintf(&b, "%s\n\n", resp.ResponseText)
		} else {
			fmt.Fprintf(&b, "_Failed: %s_\n\n", resp.ErrorMessage)
		}
	}

	b.WriteString("---\n## Metadata\n\n")
	fmt.Fprintf(&b, "- **Total Execution Time:** %.1fms\n", record.TotalExecutionTimeMS)
	fmt.Fprintf(&b, "- **Debate ID:** `%s`\n", record.DebateID)
	fmt.Fprintf(&b, "- **Created:** %s\n", record.CreatedAt.Format("2006-01-02 15:04:05"))

	return b.String()
}
