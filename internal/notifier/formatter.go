package notifier

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"SkinScout/internal/model"
)

// Report is a ranked result set ready to be rendered for chat.
type Report struct {
	Title         string
	Opportunities []model.Opportunity
	RealData      bool
	Regime        model.Regime
}

// NoOpportunitiesText is sent when a query yields nothing.
const NoOpportunitiesText = "🔍 No opportunities found for these filters. Try a higher max price or another category."

// HelpText lists the supported commands.
const HelpText = `🤖 <b>CS2 Market Bot</b>

/analyze [count] [max_price] - top opportunities
/invest [category] - top opportunities in a category
/search &lt;query&gt; - search items by name
/categories - list categories
/regime - current market regime
/ping - check the bot
/help - this menu`

// FormatReport renders a ranked list of opportunities as Telegram HTML.
func FormatReport(r Report) string {
	if len(r.Opportunities) == 0 {
		return NoOpportunitiesText
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔍 <b>%s</b> | %s\n", html.EscapeString(r.Title), time.Now().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Market regime: %s\n\n", r.Regime.Label()))

	for i, o := range r.Opportunities {
		b.WriteString(formatOpportunity(i+1, o))
		b.WriteString("\n")
	}
	b.WriteString(sourceFooter(r.RealData))
	return b.String()
}

func formatOpportunity(rank int, o model.Opportunity) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d. %s <b>%s</b>", rank, o.Emoji, html.EscapeString(o.Name)))
	if o.Category != "" {
		b.WriteString(fmt.Sprintf(" (%s)", html.EscapeString(o.Category)))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("💰 %s | Score %d/100 | %s\n", FormatPrice(o.CurrentPrice), o.Score, o.Recommendation))

	details := []string{fmt.Sprintf("Demand %s", o.Demand)}
	if o.RealData {
		details = append(details, fmt.Sprintf("Listings %d", o.Listings))
	} else {
		details = append(details, fmt.Sprintf("Volatility %.0f%%", o.VolatilityPct))
	}
	b.WriteString("📊 " + strings.Join(details, " | ") + "\n")

	if o.Link != "" {
		b.WriteString(fmt.Sprintf("<a href=\"%s\">View on market</a>\n", html.EscapeString(o.Link)))
	}
	return b.String()
}

func sourceFooter(realData bool) string {
	if realData {
		return "📡 Live Steam Market data"
	}
	return "🎲 Simulated market (live data unavailable)"
}

// FormatAutoUpdate renders the periodic digest: the top picks plus aggregate statistics.
func FormatAutoUpdate(r Report, s model.Summary, next string) string {
	if len(r.Opportunities) == 0 {
		return "🔄 <b>CS2 Market Auto-Update</b>\n\n" + NoOpportunitiesText
	}

	var b strings.Builder
	b.WriteString("🔄 <b>CS2 Market Auto-Update</b>\n")
	b.WriteString(fmt.Sprintf("Market regime: %s\n\n", r.Regime.Label()))
	for i, o := range r.Opportunities {
		b.WriteString(fmt.Sprintf("%d. %s <b>%s</b> - %d%% | %s\n", i+1, o.Emoji, html.EscapeString(o.Name), o.Score, FormatPrice(o.CurrentPrice)))
	}
	b.WriteString(fmt.Sprintf("\n📈 Avg score %.1f (σ %.1f) | Price range %s - %s\n",
		s.MeanScore, s.ScoreStdDev, FormatPrice(s.MinPrice), FormatPrice(s.MaxPrice)))
	b.WriteString(sourceFooter(r.RealData))
	if next != "" {
		b.WriteString(fmt.Sprintf("\n⏰ Next update: %s", next))
	}
	return b.String()
}

// FormatCategories lists the catalog categories.
func FormatCategories(categories []string) string {
	if len(categories) == 0 {
		return "No categories configured."
	}
	var b strings.Builder
	b.WriteString("📂 <b>Categories</b>\n\n")
	for _, c := range categories {
		b.WriteString(fmt.Sprintf("• %s\n", html.EscapeString(c)))
	}
	b.WriteString("\nUse /invest &lt;category&gt;")
	return b.String()
}

// FormatRegime describes the market regime.
func FormatRegime(r model.Regime) string {
	icon := "➡️"
	switch r.Trend {
	case model.TrendBull:
		icon = "🐂"
	case model.TrendBear:
		icon = "🐻"
	}
	return fmt.Sprintf("%s <b>Market regime:</b> %s", icon, r.Label())
}

// FormatPrice renders a USD price with two decimals.
func FormatPrice(p float64) string {
	return "$" + decimal.NewFromFloat(p).StringFixed(2)
}
