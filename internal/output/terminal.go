// Package output renders debate records for terminals, markdown export and
// listings. It never touches storage or processes.
package output

import (
	"fmt"
	"strings"

	"github.com/lorenzotomasdiez/debate-cli/internal/models"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	AnsiRed    = "\033[31m"
	AnsiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// Colorize wraps s with an ANSI color code and reset.
func Colorize(color, s string) string { return color + s + ansiReset }

// Bold wraps s with ANSI bold and reset.
func Bold(s string) string { return ansiBold + s + ansiReset }

var roleHeadings = map[models.Role]string{
	models.RoleAdvocate:    "FOR ARGUMENT",
	models.RoleOpponent:    "AGAINST ARGUMENT",
	models.RoleSynthesizer: "SYNTHESIS",
}

// FormatDebate renders a full record for terminal display.
func FormatDebate(record *models.DebateRecord) string {
	var b strings.Builder
	rule := strings.Repeat("=", 70)
	thin := strings.Repeat("-", 70)

	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "  DEBATE: %s\n", Bold(record.Topic.Title))
	fmt.Fprintf(&b, "%s\n\n", rule)

	fmt.Fprintf(&b, "TOPIC DESCRIPTION:\n%s\n\n", record.Topic.Description)

	for i, resp := range record.AgentResponses {
		heading := roleHeadings[resp.Role]
		if heading == "" {
			heading = string(resp.Role)
		}
		fmt.Fprintf(&b, "%s\n", thin)
		fmt.Fprintf(&b, "%d. %s\n", i+1, Colorize(ansiCyan, heading))
		fmt.Fprintf(&b, "Agent: %s\n", resp.AgentName)
		fmt.Fprintf(&b, "Model: %s\n", resp.ModelName)
		fmt.Fprintf(&b, "Execution Time: %.1fms\n\n", resp.ExecutionTimeMS)
		if resp.Success {
			fmt.Fprintf(&b, "%s\n\n", resp.ResponseText)
		} else {
			fmt.Fprintf(&b, "FAILED: %s\n\n", resp.ErrorMessage)
		}
	}

	fmt.Fprintf(&b, "%s\n", thin)
	fmt.Fprintf(&b, "SUMMARY\n")
	fmt.Fprintf(&b, "Total Execution Time: %s\n", Colorize(ansiYellow, fmt.Sprintf("%.1fms", record.TotalExecutionTimeMS)))
	fmt.Fprintf(&b, "Created: %s\n", record.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Debate ID: %s\n", record.DebateID)
	fmt.Fprintf(&b, "%s\n", rule)

	return b.String()
}

// FormatList renders a listing of stored debates.
func FormatList(records []*models.DebateRecord) string {
	if len(records) == 0 {
		return "No debates found.\n"
	}

	var b strings.Builder
	b.WriteString("Stored Debates:\n\n")
	for i, record := range records {
		fmt.Fprintf(&b, "%d. %s\n", i+1, Bold(record.Topic.Title))
		fmt.Fprintf(&b, "   ID: %s\n", record.DebateID)
		fmt.Fprintf(&b, "   Created: %s\n", record.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&b, "   Agents: %d\n\n", len(record.AgentResponses))
	}
	return b.String()
}
