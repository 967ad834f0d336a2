package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeDefault(t *testing.T) {
	nodes := sample()
	leaf := func(id int, content string) Record[int, string] {
		return Record[int, string]{ID: id, Content: content, Children: []Record[int, string]{}}
	}
	want := Record[int, string]{
		ID:      0,
		Content: "zero",
		Children: []Record[int, string]{
			leaf(1, "one"),
			{
				ID:       2,
				Content:  "two",
				Children: []Record[int, string]{leaf(3, "three"), leaf(4, "four")},
			},
		},
	}
	if diff := cmp.Diff(want, nodes[0].Encode()); diff != "" {
		t.Errorf("Encode mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRoundTrip(t *testing.T) {
	nodes := sample()
	encoded := nodes[0].Encode()

	parsed := Parse(encoded)

	if diff := cmp.Diff(encoded, parsed.Encode()); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
	for n := range parsed.All() {
		for _, original := range nodes {
			if n == original {
				t.Errorf("Parse reused node %v", n.ID())
			}
		}
	}
	checkLinks(t, parsed)
}

type entry struct {
	Key   string
	Value int
	Kids  []entry
}

func buildEntry(n *Node[string, int], children func() []entry) entry {
	return entry{Key: n.ID(), Value: n.Content(), Kids: children()}
}

func destructureEntry(e entry) (string, int, []entry, error) {
	if e.Key == "" {
		return "", 0, nil, errors.New("missing key")
	}
	return e.Key, e.Value, e.Kids, nil
}

func TestCustomRecordRoundTrip(t *testing.T) {
	root := New("a", 1)
	root.Push(New("b", 2), New("c", 3))
	root.Child("c").Add(New("d", 4))

	encoded := EncodeWith(root, buildEntry)
	if encoded.Kids[1].Kids[0].Key != "d" {
		t.Errorf("Expected nested key 'd', got %+v", encoded)
	}

	parsed, err := ParseWith(encoded, destructureEntry)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(root.Encode(), parsed.Encode()); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilderControlsChildren(t *testing.T) {
	nodes := sample()
	calls := 0
	shallow := func(n *Node[int, string], children func() []string) string {
		if n.Depth() >= 1 {
			return n.Content()
		}
		calls++
		kids := ""
		for _, c := range children() {
			kids += " " + c
		}
		return n.Content() + ":" + kids
	}
	if got := EncodeWith(nodes[0], shallow); got != "zero: one two" {
		t.Errorf("Expected 'zero: one two', got %q", got)
	}
	if calls != 1 {
		t.Errorf("Expected the builder to descend once, got %d", calls)
	}
}

func TestParseWithError(t *testing.T) {
	bad := entry{Key: "a", Kids: []entry{{Key: "b"}, {Value: 3}}}
	parsed, err := ParseWith(bad, destructureEntry)
	if !errors.Is(err, ErrBadRecord) {
		t.Errorf("Expected ErrBadRecord, got %v", err)
	}
	if parsed != nil {
		t.Errorf("Expected no tree on error, got %v", parsed)
	}
}
