package domain

// BlockKind discriminates one unit of nested rich-text content.
type BlockKind string

const (
	BlockHeading1  BlockKind = "heading_1"
	BlockHeading2  BlockKind = "heading_2"
	BlockHeading3  BlockKind = "heading_3"
	BlockParagraph BlockKind = "paragraph"
	BlockBulleted  BlockKind = "bulleted_list_item"
	BlockNumbered  BlockKind = "numbered_list_item"
	BlockQuote     BlockKind = "quote"
	BlockCode      BlockKind = "code"
	BlockDivider   BlockKind = "divider"
)

// Block is one flattened content block of a long-form document body.
type Block struct {
	Kind     BlockKind
	Text     string
	Language string // set for code blocks only
}
