package notifier

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"GapSentinel/internal/model"
)

// FormatHistoricalReport formats a historical analysis report into a message.
func FormatHistoricalReport(report *model.HistoricalReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>GapSentinel %d-day report</b> | %s\n\n",
		report.LookbackDays, report.GeneratedAt.Format("2006-01-02 15:04")))

	b.WriteString("<b>Per-symbol results:</b>\n")
	for _, s := range report.Symbols {
		if s.Err != "" {
			b.WriteString(fmt.Sprintf("  %s: skipped (%s)\n", s.Symbol, s.Err))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s: %d FVG(s) | trend: %s\n", s.Symbol, s.SetupCount, s.Bias))
	}

	b.WriteString("\n🏆 <b>Top ranked setups across all symbols:</b>\n")
	if len(report.Ranked) == 0 {
		b.WriteString("  none\n")
		return b.String()
	}
	for i, s := range report.Ranked {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, FormatSetup(s)))
	}
	return b.String()
}

// FormatNearLiveAlert formats actionable setups from a near-live scan.
// Returns an empty string when there is nothing to report.
func FormatNearLiveAlert(setups []model.TradeSetup) string {
	if len(setups) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔔 <b>%d actionable setup(s)</b>\n\n", len(setups)))
	for _, s := range setups {
		b.WriteString(fmt.Sprintf("  %s | confirmed %s\n", FormatSetup(s), humanize.Time(s.ConfirmedAt)))
	}
	return b.String()
}

// FormatSetup renders one setup on a single line.
func FormatSetup(s model.TradeSetup) string {
	arrow := "▲"
	if s.Direction == model.DirectionBearish {
		arrow = "▼"
	}
	return fmt.Sprintf("%s %s %s | entry %.2f | stop %.2f | target %.2f | gap %.2f",
		arrow, s.Symbol, s.Direction, s.Entry, s.Stop, s.Target, s.GapSizeAbs)
}
