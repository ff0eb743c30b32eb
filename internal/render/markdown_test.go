package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio_sync/internal/domain"
)

func TestMarkdownDeterministicFlattening(t *testing.T) {
	blocks := []domain.Block{
		{Kind: domain.BlockHeading2, Text: "The Problem"},
		{Kind: domain.BlockParagraph, Text: "body"},
		{Kind: domain.BlockBulleted, Text: "A"},
		{Kind: domain.BlockBulleted, Text: "B"},
	}

	assert.Equal(t, "## The Problem\n\nbody\n\n- A\n- B", Markdown(blocks))
}

func TestMarkdownHeadingLevels(t *testing.T) {
	blocks := []domain.Block{
		{Kind: domain.BlockHeading1, Text: "One"},
		{Kind: domain.BlockHeading2, Text: "Two"},
		{Kind: domain.BlockHeading3, Text: "Three"},
	}

	assert.Equal(t, "# One\n\n## Two\n\n### Three", Markdown(blocks))
}

func TestMarkdownNumberedItemsAllRenderAsOne(t *testing.T) {
	// Ordinals are not tracked; every numbered item renders as "1.",
	// matching the source system's own flattening.
	blocks := []domain.Block{
		{Kind: domain.BlockNumbered, Text: "first"},
		{Kind: domain.BlockNumbered, Text: "second"},
		{Kind: domain.BlockNumbered, Text: "third"},
	}

	assert.Equal(t, "1. first\n1. second\n1. third", Markdown(blocks))
}

func TestMarkdownQuoteAndDivider(t *testing.T) {
	blocks := []domain.Block{
		{Kind: domain.BlockQuote, Text: "wise words"},
		{Kind: domain.BlockDivider},
		{Kind: domain.BlockParagraph, Text: "after"},
	}

	assert.Equal(t, "> wise words\n---\n\nafter", Markdown(blocks))
}

func TestMarkdownCodeFenceCarriesLanguage(t *testing.T) {
	blocks := []domain.Block{
		{Kind: domain.BlockCode, Text: "fmt.Println(\"hi\")", Language: "go"},
		{Kind: domain.BlockParagraph, Text: "explained"},
	}

	assert.Equal(t, "```go\nfmt.Println(\"hi\")\n```\n\nexplained", Markdown(blocks))
}

func TestMarkdownUnknownKindRendersAsParagraph(t *testing.T) {
	blocks := []domain.Block{
		{Kind: "callout", Text: "note this"},
	}

	assert.Equal(t, "note this", Markdown(blocks))
}

func TestMarkdownEmptyInput(t *testing.T) {
	assert.Equal(t, "", Markdown(nil))
	assert.Equal(t, "", Markdown([]domain.Block{}))
}
