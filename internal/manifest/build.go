// Package manifest assembles extracted pattern sequences into the fixed
// output document and serializes it.
package manifest

import (
	"github.com/clutterscan/clutterscan/internal/classify"
	"github.com/clutterscan/clutterscan/internal/extract"
	"github.com/clutterscan/clutterscan/internal/source"
)

// Declaration names in Defuddle's constants.ts
const (
	entryPointElements   = "ENTRY_POINT_ELEMENTS"
	exactSelectors       = "EXACT_SELECTORS"
	partialSelectors     = "PARTIAL_SELECTORS"
	testAttributes       = "TEST_ATTRIBUTES"
	blockElements        = "BLOCK_ELEMENTS"
	preserveElements     = "PRESERVE_ELEMENTS"
	inlineElements       = "INLINE_ELEMENTS"
	allowedEmptyElements = "ALLOWED_EMPTY_ELEMENTS"
	allowedAttributes    = "ALLOWED_ATTRIBUTES"
	footnoteInlineRefs   = "FOOTNOTE_INLINE_REFERENCES"
	footnoteListSels     = "FOOTNOTE_LIST_SELECTORS"
)

// Declaration names in Defuddle's scoring.ts
const (
	contentIndicators    = "contentIndicators"
	navigationIndicators = "navigationIndicators"
	nonContentPatterns   = "nonContentPatterns"
)

// Build assembles the manifest from one loaded document set. It is a
// pure function of the input text; running it twice on the same inputs
// produces identical manifests.
func Build(doc *source.Document) *Manifest {
	c := doc.Constants
	s := doc.Scoring

	return &Manifest{
		Comment: "Web clutter patterns extracted from Defuddle (https://github.com/kepano/defuddle)",
		ContentSelectors: ContentSelectors{
			Comment:   "Selectors for finding main content, in priority order",
			Selectors: extract.Exported(entryPointElements, c),
		},
		Remove: Remove{
			Comment:        "Elements to remove from the page",
			ExactSelectors: extract.Exported(exactSelectors, c),
			PartialPatterns: PartialPatterns{
				Comment:         "Substring patterns matched against class/id/data-* attributes (case-insensitive)",
				CheckAttributes: extract.Exported(testAttributes, c),
				Patterns:        classify.Categorize(extract.Exported(partialSelectors, c)),
			},
		},
		Preserve: Preserve{
			Comment:           "Elements to preserve during content extraction",
			BlockElements:     extract.Exported(blockElements, c),
			PreserveElements:  extract.Exported(preserveElements, c),
			InlineElements:    extract.Exported(inlineElements, c),
			AllowedEmpty:      extract.Exported(allowedEmptyElements, c),
			AllowedAttributes: extract.Exported(allowedAttributes, c),
		},
		Footnotes: Footnotes{
			Comment:          "Selectors for identifying footnotes and citations",
			InlineReferences: extract.Exported(footnoteInlineRefs, c),
			ListSelectors:    extract.Exported(footnoteListSels, c),
		},
		Scoring: Scoring{
			Comment:              "Patterns used for content scoring (from scoring.ts)",
			ContentIndicators:    extract.Plain(contentIndicators, s),
			NavigationIndicators: extract.Plain(navigationIndicators, s),
			NonContentPatterns:   extract.Plain(nonContentPatterns, s),
		},
	}
}
