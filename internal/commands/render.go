package commands

import (
	"fmt"
	"strings"

	"taskbot/internal/store"
)

// listHeader opens every non-empty /list reply.
const listHeader = "📝 Current tasks in this chat:"

// renderList renders a snapshot as the /list reply body, one numbered
// line per task under the header.
func renderList(tasks []store.Task) string {
	var b strings.Builder
	b.WriteString(listHeader)
	for i, task := range tasks {
		b.WriteString("\n")
		b.WriteString(renderTask(i+1, task))
	}
	return b.String()
}

// renderTask formats one task line.
// Format: "{N}. {TEXT} (by {ADDED_BY})"
func renderTask(num int, task store.Task) string {
	return fmt.Sprintf("%d. %s (by %s)", num, flattenText(task.Text), task.AddedBy)
}

// flattenText collapses newlines so multi-line task text stays a
// single list line.
func flattenText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return text
}
