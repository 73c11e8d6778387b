package pipeline

import "log/slog"

// LogSummary reports the run outcome: totals, per-reason rejection counts,
// and per-service statistics.
func LogSummary(pc *Context) {
	slog.Info("Run summary",
		"seen", pc.Seen,
		"valid", len(pc.Valid),
		"discarded", len(pc.Discarded),
		"skipped", pc.Skipped,
		"duplicates", pc.Duplicates)

	for category, count := range pc.ByReason {
		slog.Info("Rejection category", "category", category, "count", count)
	}
	for service, stats := range pc.ByService {
		slog.Info("Source statistics", "service", service,
			"seen", stats.Seen, "valid", stats.Valid, "discarded", stats.Discarded)
	}
}
