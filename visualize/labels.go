package visualize

import "github.com/katalvlaran/wfc/rules"

// LabelsFromRules builds the VariantLabel list Render's bar chart needs
// directly from a compiled rule set, naming each variant after the
// authored model it was expanded from. modelNames must be indexed by
// model.Variant.Model (i.e. the order models were added to the
// ModelCollection that produced r); a nil or short slice falls back to the
// variant's index.
func LabelsFromRules(r *rules.Rules, modelNames []string) []VariantLabel {
	labels := make([]VariantLabel, r.NumVariants())
	for _, v := range r.Variants {
		name := ""
		if v.Model >= 0 && v.Model < len(modelNames) {
			name = modelNames[v.Model]
		}
		labels[v.Index] = VariantLabel{Variant: v.Index, Name: name, Weight: v.Weight}
	}
	return labels
}
