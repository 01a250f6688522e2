package discord

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
)

// MaxEmbedLines caps the number of list lines shown in one embed
const MaxEmbedLines = 20

// embedTitle title-cases text in French and prefixes the icon.
// A Caser is not safe for concurrent use, so one is built per call.
func embedTitle(icon, text string) string {
	return icon + " " + cases.Title(language.French).String(text)
}

// formatLines joins lines, keeping at most MaxEmbedLines and noting how
// many were left out.
func formatLines(lines []string) string {
	if len(lines) <= MaxEmbedLines {
		return strings.Join(lines, "\n")
	}
	hidden := len(lines) - MaxEmbedLines
	return strings.Join(lines[:MaxEmbedLines], "\n") + fmt.Sprintf("\n… and %d more", hidden)
}

func formatPlan(items []domain.PlannedItem) string {
	if len(items) == 0 {
		return MsgEmptyPlan
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("**%s** × %d (lot %d)", item.ItemName, item.DailyQuantity, item.LotSize))
	}
	return formatLines(lines)
}

func formatNeeds(needs []domain.NetRequirement) string {
	lines := make([]string, 0, len(needs))
	for _, need := range needs {
		if need.FinalQuantity == 0 {
			continue
		}
		line := fmt.Sprintf("**%s** × %d", need.Name, need.FinalQuantity)
		if need.IsCraftable {
			line += " 🔨"
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return MsgNothingNeeded
	}
	return formatLines(lines)
}

func formatShoppingList(items []domain.IngredientTotal) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		if item.Quantity == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("**%s** × %d", item.Name, item.Quantity))
	}
	if len(lines) == 0 {
		return MsgNothingNeeded
	}
	return formatLines(lines)
}
