package contentfilter

import (
	"github.com/carnote/contentfilter/utils"
)

// FieldInput is one named text field of a multi-field form.
type FieldInput struct {
	Field string `json:"field"`
	Text  string `json:"text"`
}

// FieldResult is the filter outcome for one field.
type FieldResult struct {
	Field  string              `json:"field"`
	Result ContentFilterResult `json:"result"`
}

// FilterFields filters several fields in one call. When the combined
// length allows, the fields are merged with a separator and filtered in a
// single pass; a clean merged text means every field is clean, because no
// normalization rule joins text across the separator. Only when the merged
// pass finds a violation, or the fields do not fit the merge limit, does
// each field get its own pass to attribute violations precisely.
func (e *Engine) FilterFields(fields []FieldInput, opts FilterOptions) []FieldResult {
	results := make([]FieldResult, len(fields))

	texts := make([]string, len(fields))
	for i, f := range fields {
		texts[i] = f.Text
	}

	strategy := utils.MergeStrategy{
		MaxLen:    DefaultFieldMergeMaxLen,
		Separator: DefaultFieldMergeSeparator,
	}
	if merged, ok := utils.MergeTexts(texts, strategy); ok {
		if res := e.FilterContent(merged.Merged, opts); res.IsValid {
			for i, f := range fields {
				results[i] = FieldResult{
					Field: f.Field,
					Result: ContentFilterResult{
						IsValid:        true,
						NormalizedText: Normalize(f.Text),
						OriginalText:   f.Text,
					},
				}
			}
			return results
		}
	}

	for i, f := range fields {
		results[i] = FieldResult{
			Field:  f.Field,
			Result: e.FilterContent(f.Text, opts),
		}
	}
	return results
}

// FilterFields filters fields with the default engine.
func FilterFields(fields []FieldInput, opts FilterOptions) []FieldResult {
	return defaultEngine.FilterFields(fields, opts)
}
