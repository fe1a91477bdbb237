package cli

import (
	"testing"

	"github.com/djahlor/prompt-library/internal/prompt"
)

func TestFilterPrompts(t *testing.T) {
	items := []*prompt.Prompt{
		{ID: "a", Meta: prompt.Frontmatter{Tags: []string{"git", "code"}}},
		{ID: "b", Meta: prompt.Frontmatter{Tags: []string{"review"}}},
		{ID: "c", Meta: prompt.Frontmatter{Tags: []string{"Git"}}},
		{ID: "d", Meta: prompt.Frontmatter{Tags: nil}},
	}

	tests := []struct {
		name     string
		tags     []string
		expected int
	}{
		{"no filter", nil, 4},
		{"filter git", []string{"git"}, 2},
		{"filter review", []string{"review"}, 1},
		{"filter multiple", []string{"git", "review"}, 3},
		{"filter nonexistent", []string{"nonexistent"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filterPrompts(items, tt.tags)
			if len(result) != tt.expected {
				t.Errorf("filterPrompts() = %d items, want %d", len(result), tt.expected)
			}
		})
	}
}

func TestFilterCategory(t *testing.T) {
	items := []*prompt.Prompt{
		{ID: "a", Meta: prompt.Frontmatter{Category: "writing"}},
		{ID: "b", Meta: prompt.Frontmatter{Category: "Engineering"}},
		{ID: "c"},
	}

	tests := []struct {
		name     string
		category string
		expected int
	}{
		{"no filter", "", 3},
		{"exact", "writing", 1},
		{"case insensitive", "engineering", 1},
		{"not found", "ops", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filterCategory(items, tt.category)
			if len(result) != tt.expected {
				t.Errorf("filterCategory() = %d items, want %d", len(result), tt.expected)
			}
		})
	}
}
