package cli

import (
	"strings"

	"github.com/amp-labs/sortedcollections/set"
	"github.com/manifoldco/promptui"
)

const doneChoice = "[Done]"

// Select asks the user to pick one of choices. Duplicates are dropped and the rest
// are listed in natural order, so "v2" is offered before "v10".
func Select(label string, choices ...string) (string, error) {
	if len(choices) == 0 {
		return "", nil
	}

	names := Choices(choices...)

	sel := &promptui.Select{
		Label:    label,
		Items:    names,
		Searcher: PrefixSearcher(names, 0),
	}

	_, value, err := sel.Run()

	return value, err
}

// MultiSelect lets the user pick any number of choices, one at a time, until they
// pick [Done]. The picks are returned in the order the user made them.
func MultiSelect(label string, choices ...string) ([]string, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	remaining := set.NewNaturalSet(choices...)
	picked := set.NewOrderedSet[string]()

	for remaining.Len() > 0 {
		names := append([]string{doneChoice}, remaining.Entries()...)

		sel := &promptui.Select{
			Label:    label,
			Items:    names,
			Searcher: PrefixSearcher(names, 1),
		}

		idx, value, err := sel.Run()
		if err != nil {
			return nil, err
		}

		if idx == 0 {
			break
		}

		if err := picked.Add(value); err != nil {
			return nil, err
		}

		remaining.Discard(value)
	}

	return picked.Entries(), nil
}

// Choices deduplicates choices and puts them in natural order.
func Choices(choices ...string) []string {
	return set.NewNaturalSet(choices...).Entries()
}

// PrefixSearcher matches names by prefix. The first skip names never match, and
// neither does empty input.
func PrefixSearcher(names []string, skip int) func(input string, index int) bool {
	return func(input string, index int) bool {
		if index < skip || input == "" {
			return false
		}

		return strings.HasPrefix(names[index], input)
	}
}
