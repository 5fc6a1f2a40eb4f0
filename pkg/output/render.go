package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scourtool/scour/pkg/types"
)

// kindLabels gives each target kind a stable display name and order.
var kindLabels = []struct {
	kind  types.TargetKind
	label string
}{
	{types.KindPackage, "Packages"},
	{types.KindMachineKey, "Machine registry keys"},
	{types.KindDataPath, "Data paths"},
	{types.KindShortcut, "Shortcuts"},
	{types.KindUserSubkey, "User registry subkeys"},
}

// RenderReport formats the run summary for the terminal. Styling is
// dropped when stdout is not a terminal.
func RenderReport(report *types.RunReport) string {
	return renderReport(report, colorEnabled())
}

func renderReport(report *types.RunReport, styled bool) string {
	render := func(style, text string) string {
		if !styled {
			return text
		}
		return GetStyle(style).Render(text)
	}

	var b strings.Builder
	b.WriteString(render("Header", "Cleanup summary"))
	b.WriteString("\n")

	summary := report.Summary()
	for _, kl := range kindLabels {
		counts, ok := summary[kl.kind]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s: ", render("Kind", kl.label)))
		b.WriteString(render("Removed", fmt.Sprintf("%d removed", counts.Removed)))
		b.WriteString(", ")
		b.WriteString(render("NotFound", fmt.Sprintf("%d not found", counts.NotFound)))
		b.WriteString(", ")
		b.WriteString(render("Failed", fmt.Sprintf("%d failed", counts.Failed)))
		b.WriteString("\n")
	}

	if len(report.Results) == 0 {
		b.WriteString("  no targets attempted\n")
	}

	if failed := collectFailures(report); len(failed) > 0 {
		b.WriteString(render("Failed", "Failures:"))
		b.WriteString("\n")
		for _, line := range failed {
			b.WriteString("  " + line + "\n")
		}
	}

	for _, warning := range report.Warnings {
		b.WriteString(render("Warning", "warning: "+warning))
		b.WriteString("\n")
	}

	return b.String()
}

func collectFailures(report *types.RunReport) []string {
	var out []string
	for _, res := range report.Results {
		if res.Outcome.Status != types.StatusFailed {
			continue
		}
		target := res.Target
		if res.Profile != "" {
			target = res.Profile + ": " + target
		}
		out = append(out, fmt.Sprintf("%s %s (%s)", res.Kind, target, res.Outcome.Reason))
	}
	sort.Strings(out)
	return out
}
