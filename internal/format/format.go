// Package format renders route lists and delay statistics as colored
// terminal output. The package is stateless; all functions write to the
// io.Writer they are given.
package format

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ptomes1987/regiojet-delays/internal/regiojet"
)

// ANSI escape codes for terminal output.
const (
	Red     = "\033[91m"
	Green   = "\033[92m"
	Yellow  = "\033[93m"
	Blue    = "\033[94m"
	Magenta = "\033[95m"
	Cyan    = "\033[96m"
	White   = "\033[97m"
	Bold    = "\033[1m"
	Reset   = "\033[0m"
)

// SignificantDelayMinutes is where a delay switches from caution to alert.
const SignificantDelayMinutes = 10

// Time renders an ISO-8601 timestamp as hour:minute in the timestamp's own
// offset. A missing value renders as "N/A"; a value that fails to parse is
// passed through verbatim.
func Time(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return *s
	}
	return t.Format("15:04")
}

// Delay renders a delay in minutes with color keyed to severity.
func Delay(minutes int) string {
	switch {
	case minutes == 0:
		return Green + "ON TIME" + Reset
	case minutes < SignificantDelayMinutes:
		return fmt.Sprintf("%s+%d min%s", Yellow, minutes, Reset)
	default:
		return fmt.Sprintf("%s+%d min%s", Red, minutes, Reset)
	}
}

// Routes pretty-prints a route list. showDetails adds seat and vehicle info.
func Routes(w io.Writer, routes []regiojet.RouteSummary, showDetails bool) {
	if len(routes) == 0 {
		fmt.Fprintf(w, "%sNo routes found.%s\n", Yellow, Reset)
		return
	}

	divider := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s%s%s%s\n", Bold, Cyan, divider, Reset)
	fmt.Fprintf(w, "%sFound %d route(s)%s\n", Bold, len(routes), Reset)
	fmt.Fprintf(w, "%s%s%s\n\n", Cyan, divider, Reset)

	for i, route := range routes {
		fmt.Fprintf(w, "%s%s[%d] Bus/Train %s%s\n", Bold, Blue, i+1, orNA(route.Number), Reset)
		fmt.Fprintf(w, "    %s%s%s\n", White, orNA(route.Label), Reset)
		fmt.Fprintf(w, "    Status: %s\n", Delay(route.Delay))

		fmt.Fprintf(w, "    Departure: %s%s%s", Green, Time(route.DepartureTime), Reset)
		if route.DeparturePlatform != nil && *route.DeparturePlatform != "" {
			fmt.Fprintf(w, " (Platform %s)", *route.DeparturePlatform)
		}
		fmt.Fprintln(w)

		fmt.Fprintf(w, "    Arrival: %s%s%s", Green, Time(route.ArrivalTime), Reset)
		if route.ArrivalPlatform != nil && *route.ArrivalPlatform != "" {
			fmt.Fprintf(w, " (Platform %s)", *route.ArrivalPlatform)
		}
		fmt.Fprintln(w)

		if showDetails {
			fmt.Fprintf(w, "    Free seats: %d\n", route.FreeSeats)
			if route.VehicleStandard != "" {
				fmt.Fprintf(w, "    Vehicle: %s\n", route.VehicleStandard)
			}
		}
		fmt.Fprintln(w)
	}
}

// Board prints one arrival/departure board line per route.
func Board(w io.Writer, routes []regiojet.Route) {
	if len(routes) == 0 {
		fmt.Fprintf(w, "%sNo routes found.%s\n", Yellow, Reset)
		return
	}
	for _, route := range routes {
		fmt.Fprintf(w, "%s%-8s%s %-45s %s\n", Bold, orNA(route.Number), Reset, orNA(route.Label), Delay(route.Delay))
	}
}

// Matches prints station search results.
func Matches(w io.Writer, matches []regiojet.StationMatch) {
	if len(matches) == 0 {
		fmt.Fprintf(w, "%sNo stations found.%s\n", Yellow, Reset)
		return
	}
	for _, m := range matches {
		fmt.Fprintf(w, "%s%-10d%s %s, %s\n", Bold, m.StationID, Reset, m.City, m.Station)
		if m.Address != "N/A" {
			fmt.Fprintf(w, "           %s\n", m.Address)
		}
	}
}

// Stats holds aggregate delay statistics over a route list. AvgDelay is in
// minutes, reported to one decimal.
type Stats struct {
	Total    int
	OnTime   int
	Delayed  int
	AvgDelay float64
	MaxDelay int
}

// Summarize computes delay statistics over a route list. The caller must
// guard against an empty list before printing averages; DelaySummary does.
func Summarize(routes []regiojet.RouteSummary) Stats {
	stats := Stats{Total: len(routes)}
	for _, route := range routes {
		if route.Delay == 0 {
			stats.OnTime++
		} else {
			stats.Delayed++
		}
		stats.AvgDelay += float64(route.Delay)
		if route.Delay > stats.MaxDelay {
			stats.MaxDelay = route.Delay
		}
	}
	if stats.Total > 0 {
		stats.AvgDelay /= float64(stats.Total)
	}
	return stats
}

// DelaySummary prints aggregate delay statistics. An empty route list prints
// a notice instead; no arithmetic is performed.
func DelaySummary(w io.Writer, routes []regiojet.RouteSummary) {
	if len(routes) == 0 {
		fmt.Fprintf(w, "%sNo routes found.%s\n", Yellow, Reset)
		return
	}

	stats := Summarize(routes)
	fmt.Fprintf(w, "\n%s%s=== DELAY SUMMARY ===%s\n", Bold, Cyan, Reset)
	fmt.Fprintf(w, "Total routes: %d\n", stats.Total)
	fmt.Fprintf(w, "On time: %s%d%s\n", Green, stats.OnTime, Reset)
	fmt.Fprintf(w, "Delayed: %s%d%s\n", Red, stats.Delayed, Reset)
	fmt.Fprintf(w, "Average delay: %s%.1f minutes%s\n", Yellow, stats.AvgDelay, Reset)
	fmt.Fprintf(w, "Maximum delay: %s%d minutes%s\n\n", Red, stats.MaxDelay, Reset)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
