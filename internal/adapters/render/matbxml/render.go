// Package matbxml renders event timelines into the MATB-EVENTS XML dialect
// consumed by the experiment runner. The tag and attribute vocabulary is
// fixed by that consumer; events sit at the root level, their action element
// is indented one tab and leaf values two tabs, with no blank lines.
package matbxml

import (
	"fmt"
	"strings"

	"github.com/ThalesGroup/requin-2023-experiment/internal/domain"
)

const declaration = `<?xml version="1.0" encoding="UTF-8" ?>`

// Render produces the document text for an already-sorted timeline. Events
// sharing a timestamp keep their slice order.
func Render(events []domain.Event) string {
	var b strings.Builder
	b.WriteString(declaration + "\n")
	b.WriteString("<MATB-EVENTS>\n")
	for _, event := range events {
		writeEvent(&b, event)
	}
	b.WriteString("</MATB-EVENTS>\n")
	return b.String()
}

func writeEvent(b *strings.Builder, event domain.Event) {
	fmt.Fprintf(b, "<event startTime=%q>\n", domain.FormatSeconds(event.Seconds))
	if event.Comment != "" {
		fmt.Fprintf(b, "\t<!--%s-->\n", event.Comment)
	}

	switch {
	case event.Sched != nil:
		b.WriteString("\t<sched>\n")
		writeLeaf(b, "task", event.Sched.Task)
		writeLeaf(b, "action", event.Sched.Action)
		writeLeaf(b, "update", event.Sched.Update)
		writeLeaf(b, "response", event.Sched.Response)
		b.WriteString("\t</sched>\n")
	case event.Resman != nil:
		b.WriteString("\t<resman>\n")
		if event.Resman.Fail != "" {
			writeLeaf(b, "fail", event.Resman.Fail)
		} else {
			writeLeaf(b, "fix", event.Resman.Fix)
		}
		b.WriteString("\t</resman>\n")
	case event.Sysmon != nil:
		if event.Sysmon.Activity != "" {
			fmt.Fprintf(b, "\t<sysmon activity=%q>\n", event.Sysmon.Activity)
		} else {
			b.WriteString("\t<sysmon>\n")
		}
		if event.Sysmon.LightType != "" {
			writeLeaf(b, "monitoringLightType", event.Sysmon.LightType)
		} else {
			writeLeaf(b, "monitoringScaleNumber", event.Sysmon.ScaleNumber)
			writeLeaf(b, "monitoringScaleDirection", event.Sysmon.ScaleDirection)
		}
		b.WriteString("\t</sysmon>\n")
	case event.Comm != nil:
		b.WriteString("\t<comm>\n")
		writeLeaf(b, "ship", event.Comm.Ship)
		writeLeaf(b, "radio", event.Comm.Radio)
		writeLeaf(b, "freq", event.Comm.Freq)
		b.WriteString("\t</comm>\n")
	case event.Control != "":
		fmt.Fprintf(b, "\t<control>%s</control>\n", event.Control)
	case event.Rate != "":
		fmt.Fprintf(b, "\t<rate>%s</rate>\n", event.Rate)
	}

	b.WriteString("</event>\n")
}

func writeLeaf(b *strings.Builder, tag, value string) {
	fmt.Fprintf(b, "\t\t<%s>%s</%s>\n", tag, value, tag)
}
