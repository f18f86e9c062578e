package llm

import (
	"fmt"
	"strings"

	"github.com/sevigo/action-planner/internal/core"
)

// FunctionManual renders one function in the layout used by the planner prompt:
//
//	// Send an email.
//	EmailPlugin.Send
//	Parameter "to": Recipient. (default value: me@example.com)
func FunctionManual(fn core.FunctionView) string {
	var b strings.Builder

	description := strings.TrimSpace(fn.Description)
	if description == "" {
		description = "No description."
	}
	for _, line := range strings.Split(description, "\n") {
		fmt.Fprintf(&b, "// %s\n", strings.TrimSpace(line))
	}
	b.WriteString(fn.FullyQualifiedName())
	b.WriteString("\n")

	if len(fn.Parameters) == 0 {
		b.WriteString("No parameters.\n")
		return b.String()
	}
	for _, p := range fn.Parameters {
		fmt.Fprintf(&b, "Parameter %q:", p.Name)
		if desc := strings.TrimSpace(p.Description); desc != "" {
			b.WriteString(" " + desc)
		}
		if p.DefaultValue != "" {
			fmt.Fprintf(&b, " (default value: %s)", p.DefaultValue)
		}
		if p.Required {
			b.WriteString(" (required)")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FunctionList joins the manuals of fns in order.
func FunctionList(fns []core.FunctionView) string {
	var b strings.Builder
	for _, fn := range fns {
		b.WriteString(FunctionManual(fn))
	}
	return strings.TrimRight(b.String(), "\n")
}
