// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package xref

import (
	"regexp"
	"strings"
)

// displayPattern matches "label <target>" role content. The label runs to
// the first '<'; the target runs to the last '>'. Escaping '<' or '>'
// inside targets is not supported.
var displayPattern = regexp.MustCompile(`^(.+?)<(.+)>`)

// RoleContent is the interpreted content of a reference role.
type RoleContent struct {
	// LastComponent reports that the display should show only the final
	// component of a dotted namespace (the role text began with '~').
	LastComponent bool

	// Display is the author's custom display text, empty when the role had
	// no "label <target>" form.
	Display string

	// Ref is the referenced fully-qualified name, never with a '~' prefix.
	Ref string
}

// ParseRole splits the raw content of a reference role into its standard
// components.
//
//	ParseRole("Tables <acme.data.table.Table>")
//	    => RoleContent{LastComponent: false, Display: "Tables", Ref: "acme.data.table.Table"}
//	ParseRole("~acme.data.table.Table")
//	    => RoleContent{LastComponent: true, Display: "", Ref: "acme.data.table.Table"}
func ParseRole(rawText string) RoleContent {
	content := RoleContent{}
	if strings.HasPrefix(rawText, "~") {
		content.LastComponent = true
		rawText = strings.TrimLeft(rawText, "~")
	}

	if m := displayPattern.FindStringSubmatch(rawText); m != nil {
		content.Display = strings.TrimSpace(m[1])
		content.Ref = strings.TrimSpace(m[2])
	} else {
		content.Ref = strings.TrimSpace(rawText)
	}
	return content
}

// DisplayText computes the text shown for the reference: the custom display
// if one was given, the last dotted component when requested, or the full
// reference.
func (c RoleContent) DisplayText() string {
	if c.Display != "" {
		return c.Display
	}
	if c.LastComponent {
		parts := strings.Split(c.Ref, ".")
		return parts[len(parts)-1]
	}
	return c.Ref
}
