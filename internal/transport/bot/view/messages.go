// Package view renders bot replies.
package view

import (
	"fmt"
	"html"
	"strings"

	"pet_market/internal/domain/entity"
)

const (
	StartMessage = `🐾 <b>Pet market dashboard</b>

/top — most profitable pets for the current filters
/countdown — time until the next market refresh
/refresh — fetch fresh results now`

	RefreshFailed  = "❌ Refresh failed, the previous results are kept."
	RefreshStale   = "⏳ A newer refresh is already running."
	TopEmpty       = "📭 Nothing matches the current filters."
	TopPageSize    = 5
	topCallbackFmt = "top_page:%d"
)

// TopCallbackPrefix marks pagination buttons of the /top message.
const TopCallbackPrefix = "top_page:"

func TopCallbackData(page int) string {
	return fmt.Sprintf(topCallbackFmt, page)
}

// ParseTopCallback extracts the page number; invalid data yields page 1.
func ParseTopCallback(data string) int {
	var page int
	if _, err := fmt.Sscanf(data, topCallbackFmt, &page); err != nil || page < 1 {
		return 1
	}

	return page
}

// TotalPages is at least 1 so an empty list still renders a page.
func TotalPages(count int) int {
	return max(1, (count+TopPageSize-1)/TopPageSize)
}

// TopPage renders one page of records; page is clamped to the valid range.
func TopPage(records []entity.DisplayRecord, page int) (string, int) {
	totalPages := TotalPages(len(records))
	page = min(max(page, 1), totalPages)

	start := (page - 1) * TopPageSize
	end := min(start+TopPageSize, len(records))

	var sb strings.Builder

	fmt.Fprintf(&sb, "🏆 <b>Top pets</b> (page %d/%d)\n\n", page, totalPages)

	for _, r := range records[start:end] {
		sb.WriteString(Record(r))
		sb.WriteString("\n")
	}

	return sb.String(), page
}

func Record(r entity.DisplayRecord) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%d. <b>%s</b> [%s] %s\n", r.Rank, html.EscapeString(r.Name), r.Rarity, r.Skill)
	fmt.Fprintf(&sb, "   💰 %s (no tax %s) · %s coins/xp", r.Profit, r.ProfitWithoutTax, r.CoinsPerXP)

	if r.CoinsPerXPNote != "" {
		fmt.Fprintf(&sb, " <i>%s</i>", html.EscapeString(r.CoinsPerXPNote))
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "   %s: %s (24h %s, 7d %s) <code>%s</code>\n",
		r.Low.Label, r.Low.Price, r.Low.DayAvg, r.Low.WeekAvg, html.EscapeString(r.Low.CopyPayload))
	fmt.Fprintf(&sb, "   %s: %s (24h %s, 7d %s) <code>%s</code>\n",
		r.High.Label, r.High.Price, r.High.DayAvg, r.High.WeekAvg, html.EscapeString(r.High.CopyPayload))

	if r.Alert {
		fmt.Fprintf(&sb, "   ⚠️ %+.1f%% above the 24h average\n", r.DeviationPercent)
	}

	return sb.String()
}

func Countdown(c entity.Countdown) string {
	switch c.State {
	case entity.ClockCounting:
		return fmt.Sprintf("⏱ Next update in %d:%02d", c.SecondsRemaining/60, c.SecondsRemaining%60)
	case entity.ClockOverdue:
		return "⌛ Update overdue, waiting for the market refresh"
	default:
		return "❔ Update time unknown"
	}
}

func Refreshed(view entity.View) string {
	return fmt.Sprintf("✅ Refreshed, %d pets match the current filters.", len(view.Records))
}
