package sexy

import "fmt"

// Match reports whether actual has the shape described by pattern.
//
// Atoms match atoms of the same type and text. Lists match item by item,
// except that an ellipsis inside a pattern list matches any run of items
// (including none), and an ellipsis in place of a whole datum matches
// anything. The returned error names the path of the first mismatch.
func Match(pattern, actual *Node) error {
	return match(pattern, actual, "root")
}

// MatchString parses both inputs and matches them.
func MatchString(pattern, actual string) error {
	p, err := Parse(pattern)
	if err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	a, err := Parse(actual)
	if err != nil {
		return fmt.Errorf("actual: %w", err)
	}
	return Match(p, a)
}

func match(pattern, actual *Node, path string) error {
	if pattern.Type == NodeEllipsis {
		return nil
	}
	if pattern.Type != actual.Type {
		return fmt.Errorf("at %s: expected %s %s, got %s %s", path, pattern.Type, pattern, actual.Type, actual)
	}
	if pattern.Type != NodeList {
		if pattern.Text != actual.Text {
			return fmt.Errorf("at %s: expected %s, got %s", path, pattern, actual)
		}
		return nil
	}
	if !matchItems(pattern.Items, actual.Items, path) {
		// Find the first differing item for a useful message.
		for i := range pattern.Items {
			if pattern.Items[i].Type == NodeEllipsis {
				break
			}
			if i >= len(actual.Items) {
				return fmt.Errorf("at %s: expected %s, got %s (missing item %d)", path, pattern, actual, i)
			}
			if err := match(pattern.Items[i], actual.Items[i], fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return fmt.Errorf("at %s: expected %s, got %s", path, pattern, actual)
	}
	return nil
}

func matchItems(patterns, actuals []*Node, path string) bool {
	if len(patterns) == 0 {
		return len(actuals) == 0
	}
	if patterns[0].Type == NodeEllipsis {
		for skip := 0; skip <= len(actuals); skip++ {
			if matchItems(patterns[1:], actuals[skip:], path) {
				return true
			}
		}
		return false
	}
	if len(actuals) == 0 {
		return false
	}
	if match(patterns[0], actuals[0], path) != nil {
		return false
	}
	return matchItems(patterns[1:], actuals[1:], path)
}
