package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseText_MixedMarkers(t *testing.T) {
	input := "• Milk\n[x] Bread (×2)\n1. Eggs"

	got := ParseText(input)

	want := []ParsedLine{
		{Title: "Milk", IsCrossedOut: false, Quantity: 1},
		{Title: "Bread", IsCrossedOut: true, Quantity: 2},
		{Title: "Eggs", IsCrossedOut: false, Quantity: 1},
	}
	assert.Equal(t, want, got)
}

func TestParseText_Lines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParsedLine
	}{
		{"bare line", "Milk", ParsedLine{Title: "Milk", Quantity: 1}},
		{"dash bullet", "- Bread", ParsedLine{Title: "Bread", Quantity: 1}},
		{"asterisk bullet", "* Butter", ParsedLine{Title: "Butter", Quantity: 1}},
		{"arrow bullet", "→ Coffee", ParsedLine{Title: "Coffee", Quantity: 1}},
		{"numbered dot", "12. Eggs", ParsedLine{Title: "Eggs", Quantity: 1}},
		{"numbered paren", "3) Flour", ParsedLine{Title: "Flour", Quantity: 1}},
		{"numbered colon", "4: Sugar", ParsedLine{Title: "Sugar", Quantity: 1}},
		{"unchecked box", "[ ] Tea", ParsedLine{Title: "Tea", Quantity: 1}},
		{"empty box", "[] Tea", ParsedLine{Title: "Tea", Quantity: 1}},
		{"checked box lower", "[x] Rice", ParsedLine{Title: "Rice", IsCrossedOut: true, Quantity: 1}},
		{"checked box upper", "[X] Rice", ParsedLine{Title: "Rice", IsCrossedOut: true, Quantity: 1}},
		{"checked box tick", "[✓] Rice", ParsedLine{Title: "Rice", IsCrossedOut: true, Quantity: 1}},
		{"quantity suffix", "Apples (×6)", ParsedLine{Title: "Apples", Quantity: 6}},
		{"bullet and quantity", "• Bananas (×3)", ParsedLine{Title: "Bananas", Quantity: 3}},
		{"surrounding whitespace", "   Pasta \t", ParsedLine{Title: "Pasta", Quantity: 1}},
		{"unicode title kept verbatim", "☑ Müsli", ParsedLine{Title: "Müsli", Quantity: 1}},
		{"quantity in middle is part of title", "Juice (×2) cartons", ParsedLine{Title: "Juice (×2) cartons", Quantity: 1}},
		{"only one bullet stripped", "- - Dashes", ParsedLine{Title: "- Dashes", Quantity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseText(tt.input)
			if assert.Len(t, got, 1) {
				assert.Equal(t, tt.want, got[0])
			}
		})
	}
}

func TestParseText_SkipsBlankLines(t *testing.T) {
	got := ParseText("Milk\n\n   \n\nBread\n")

	if assert.Len(t, got, 2) {
		assert.Equal(t, "Milk", got[0].Title)
		assert.Equal(t, "Bread", got[1].Title)
	}
}

func TestParseText_EmptyInput(t *testing.T) {
	assert.Empty(t, ParseText(""))
	assert.Empty(t, ParseText("  \n\t\n"))
}

func TestParseText_PreservesOrder(t *testing.T) {
	got := ParseText("Zebra\nApple\nMango")

	titles := make([]string, 0, len(got))
	for _, line := range got {
		titles = append(titles, line.Title)
	}
	assert.Equal(t, []string{"Zebra", "Apple", "Mango"}, titles)
}
