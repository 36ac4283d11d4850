package kernel

import (
	"fmt"
	"strconv"
	"unicode"

	"go.uber.org/zap"
)

// Label alphabets per kind, tried in order before numbered suffixes.
var (
	pointLetters  = []rune("ABCDEFGHIJKLMNOPQRSTUVWZ")
	vectorLetters = []rune("uvwzabcdefghijklmnopqrst")
	pathLetters   = []rune("fghijklmnpqrst")
	numberLetters = []rune("abcdefghijklmnopqrstuvwz")
)

// DefaultLabeler names points A, B, …, vectors u, v, …, paths f, g, …,
// numbers a, b, …, then repeats the alphabet with _1, _2, … suffixes.
// Equations and texts are numbered eq1, text1, ….
func DefaultLabeler(kind Kind, taken func(string) bool) string {
	var letters []rune
	switch kind {
	case KindPoint, KindPoint3D:
		letters = pointLetters
	case KindVector, KindVector3D:
		letters = vectorLetters
	case KindLine, KindRay, KindSegment:
		letters = pathLetters
	case KindNumber:
		letters = numberLetters
	default:
		prefix := "text"
		if kind == KindEquation {
			prefix = "eq"
		}
		for n := 1; ; n++ {
			if l := prefix + strconv.Itoa(n); !taken(l) {
				return l
			}
		}
	}
	for n := 0; ; n++ {
		for _, r := range letters {
			l := string(r)
			if n > 0 {
				l += "_" + strconv.Itoa(n)
			}
			if !taken(l) {
				return l
			}
		}
	}
}

// ValidLabel reports whether s may be used as a label: a letter followed by
// letters, digits or underscores.
func ValidLabel(s string) bool {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == '_'):
		default:
			return false
		}
	}

	return s != ""
}

// SetLabel names node id. An empty label clears the current one.
func (c *Construction) SetLabel(id NodeID, label string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, err := c.get(id)
	if err != nil {
		return err
	}
	if label == "" {
		delete(c.labels, el.label)
		el.label = ""
		return nil
	}
	if err = c.checkLabel(label, id); err != nil {
		return c.reject("label", err)
	}
	c.assignLabel(el, label)

	return nil
}

// Label returns the label of id, or "" when unlabeled or unknown.
func (c *Construction) Label(id NodeID) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if el, err := c.get(id); err == nil {
		return el.label
	}

	return ""
}

// Lookup returns the node carrying label.
func (c *Construction) Lookup(label string) (NodeID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.labels[label]
	return id, ok
}

// EnsureLabel returns the label of id, allocating one with the labeler when
// the node has none.
func (c *Construction) EnsureLabel(id NodeID) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, err := c.get(id)
	if err != nil {
		return "", err
	}
	if el.label != "" {
		return el.label, nil
	}
	label := c.labeler(el.kind, func(s string) bool { _, ok := c.labels[s]; return ok })
	if err = c.checkLabel(label, id); err != nil {
		return "", fmt.Errorf("labeler proposed %q: %w", label, err)
	}
	c.assignLabel(el, label)
	c.log.Debug("label allocated", zap.Int("node", int(id)), zap.String("label", label))

	return label, nil
}

func (c *Construction) checkLabel(label string, owner NodeID) error {
	if !ValidLabel(label) {
		return fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	if other, ok := c.labels[label]; ok && other != owner {
		return fmt.Errorf("%w: %q", ErrLabelTaken, label)
	}

	return nil
}

// checkNewLabels validates output labels. owners holds the adopted node of
// each output, or is nil when every output is a fresh node.
func (c *Construction) checkNewLabels(labels []string, owners []NodeID) error {
	seen := make(map[string]bool, len(labels))
	for i, l := range labels {
		if l == "" {
			continue
		}
		owner := NoNode
		if i < len(owners) {
			owner = owners[i]
		}
		if err := c.checkLabel(l, owner); err != nil {
			return err
		}
		if seen[l] {
			return fmt.Errorf("%w: %q", ErrLabelTaken, l)
		}
		seen[l] = true
	}

	return nil
}

func (c *Construction) assignLabel(el *element, label string) {
	if el.label != "" {
		delete(c.labels, el.label)
	}
	el.label = label
	c.labels[label] = el.id
}
