// Package render flattens nested rich-text blocks into markdown. It is
// pure text transformation: no I/O, deterministic, single pass.
package render

import (
	"strings"

	"portfolio_sync/internal/domain"
)

// Markdown renders an ordered block sequence into markdown text. Unknown
// block kinds render as paragraphs. Numbered items all render as "1.",
// matching the source system's own flattening; markdown consumers renumber
// ordered lists anyway.
func Markdown(blocks []domain.Block) string {
	var sb strings.Builder

	for _, b := range blocks {
		switch b.Kind {
		case domain.BlockHeading1:
			sb.WriteString("# " + b.Text + "\n\n")
		case domain.BlockHeading2:
			sb.WriteString("## " + b.Text + "\n\n")
		case domain.BlockHeading3:
			sb.WriteString("### " + b.Text + "\n\n")
		case domain.BlockBulleted:
			sb.WriteString("- " + b.Text + "\n")
		case domain.BlockNumbered:
			sb.WriteString("1. " + b.Text + "\n")
		case domain.BlockQuote:
			sb.WriteString("> " + b.Text + "\n")
		case domain.BlockCode:
			sb.WriteString("```" + b.Language + "\n" + b.Text + "\n```\n\n")
		case domain.BlockDivider:
			sb.WriteString("---\n\n")
		default:
			sb.WriteString(b.Text + "\n\n")
		}
	}

	return strings.TrimSpace(sb.String())
}
