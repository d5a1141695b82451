package widget

import "sort"

// Choice is one selectable option of a radio group or select widget.
type Choice struct {
	Label string
	Value string
}

// Values builds a choice list from an ordered sequence; label and value are
// identical and insertion order is preserved.
func Values(values ...string) []Choice {
	choices := make([]Choice, 0, len(values))
	for _, value := range values {
		choices = append(choices, Choice{Label: value, Value: value})
	}
	return choices
}

// Labeled builds a choice list from a display-label → value mapping. Entries
// are sorted by label so output is deterministic regardless of map iteration
// order.
func Labeled(options map[string]string) []Choice {
	labels := make([]string, 0, len(options))
	for label := range options {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	choices := make([]Choice, 0, len(labels))
	for _, label := range labels {
		choices = append(choices, Choice{Label: label, Value: options[label]})
	}
	return choices
}

func cloneChoices(choices []Choice) []Choice {
	return append([]Choice(nil), choices...)
}
