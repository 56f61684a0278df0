package analytics

import (
	"fmt"
	"sort"
	"strings"

	"pokegpt-bot/internal/storage"
)

// FormatDailyReport renders day stats as a short text summary for the admin.
func FormatDailyReport(stats storage.DayStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Статистика бота за %s:\n\n", stats.Date)
	fmt.Fprintf(&b, "Всего запросов: %d\n", stats.Total)
	fmt.Fprintf(&b, "Уникальных пользователей: %d\n", stats.UniqueUsers)

	if len(stats.BySource) > 0 {
		b.WriteString("\nПо источникам:\n")
		sources := make([]string, 0, len(stats.BySource))
		for src := range stats.BySource {
			sources = append(sources, src)
		}
		sort.Strings(sources)
		for _, src := range sources {
			fmt.Fprintf(&b, "- %s: %d\n", src, stats.BySource[src])
		}
	}

	return b.String()
}
