package manifest

import "github.com/clutterscan/clutterscan/internal/classify"

// Manifest is the document this tool produces. Field order is the
// output key order; $comment annotations travel with the data so the
// generated file stays self-describing.
type Manifest struct {
	Comment          string           `json:"$comment" yaml:"$comment"`
	ContentSelectors ContentSelectors `json:"content_selectors" yaml:"content_selectors"`
	Remove           Remove           `json:"remove" yaml:"remove"`
	Preserve         Preserve         `json:"preserve" yaml:"preserve"`
	Footnotes        Footnotes        `json:"footnotes" yaml:"footnotes"`
	Scoring          Scoring          `json:"scoring" yaml:"scoring"`
}

// ContentSelectors lists selectors for finding main content
type ContentSelectors struct {
	Comment   string   `json:"$comment" yaml:"$comment"`
	Selectors []string `json:"selectors" yaml:"selectors"`
}

// Remove describes elements to strip from a page
type Remove struct {
	Comment         string          `json:"$comment" yaml:"$comment"`
	ExactSelectors  []string        `json:"exact_selectors" yaml:"exact_selectors"`
	PartialPatterns PartialPatterns `json:"partial_patterns" yaml:"partial_patterns"`
}

// PartialPatterns holds substring patterns tested against element attributes
type PartialPatterns struct {
	Comment         string           `json:"$comment" yaml:"$comment"`
	CheckAttributes []string         `json:"check_attributes" yaml:"check_attributes"`
	Patterns        classify.Buckets `json:"patterns" yaml:"patterns"`
}

// Preserve describes elements kept during content extraction
type Preserve struct {
	Comment           string   `json:"$comment" yaml:"$comment"`
	BlockElements     []string `json:"block_elements" yaml:"block_elements"`
	PreserveElements  []string `json:"preserve_elements" yaml:"preserve_elements"`
	InlineElements    []string `json:"inline_elements" yaml:"inline_elements"`
	AllowedEmpty      []string `json:"allowed_empty" yaml:"allowed_empty"`
	AllowedAttributes []string `json:"allowed_attributes" yaml:"allowed_attributes"`
}

// Footnotes describes selectors for footnotes and citations
type Footnotes struct {
	Comment          string   `json:"$comment" yaml:"$comment"`
	InlineReferences []string `json:"inline_references" yaml:"inline_references"`
	ListSelectors    []string `json:"list_selectors" yaml:"list_selectors"`
}

// Scoring holds patterns used for content scoring
type Scoring struct {
	Comment              string   `json:"$comment" yaml:"$comment"`
	ContentIndicators    []string `json:"content_indicators" yaml:"content_indicators"`
	NavigationIndicators []string `json:"navigation_indicators" yaml:"navigation_indicators"`
	NonContentPatterns   []string `json:"non_content_patterns" yaml:"non_content_patterns"`
}
