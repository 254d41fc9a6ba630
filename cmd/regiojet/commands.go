package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ptomes1987/regiojet-delays/internal/format"
	"github.com/ptomes1987/regiojet-delays/internal/regiojet"
)

func newClient() *regiojet.Client {
	return regiojet.New(regiojet.WithLanguage(langFlag))
}

// resolveStation accepts either a numeric station ID or a key from the
// built-in alias table ("SOKOLOV_TERMINAL", "sokolov terminal", ...).
func resolveStation(arg string) (int64, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return id, nil
	}
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(arg), " ", "_"))
	if id, ok := regiojet.Stations[key]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("unknown station %q", arg)
}

// runDemo checks the Karlovy Vary -> Sokolov route and prints the routes, a
// delay summary and any significantly delayed runs.
func runDemo(cmd *cobra.Command, args []string) error {
	client := newClient()

	fmt.Printf("%s%s\n", format.Bold, format.Magenta)
	fmt.Println("╔═══════════════════════════════════════════════════════════╗")
	fmt.Println("║        RegioJet API - Karlovy Vary → Sokolov Route        ║")
	fmt.Println("╚═══════════════════════════════════════════════════════════╝")
	fmt.Printf("%s\n\n", format.Reset)

	from := regiojet.Stations["KARLOVY_VARY_TERMINAL"]
	to := regiojet.Stations["SOKOLOV_TERMINAL"]

	fmt.Printf("%sChecking route: Karlovy Vary Terminal → Sokolov Terminal%s\n", format.Bold, format.Reset)
	fmt.Printf("Station IDs: %d → %d\n\n", from, to)

	routes, err := client.FindRoute(cmd.Context(), from, to, regiojet.DefaultRouteLimit)
	if err != nil {
		return err
	}

	format.Routes(os.Stdout, routes, true)
	format.DelaySummary(os.Stdout, routes)

	var delayed []regiojet.RouteSummary
	for _, route := range routes {
		if route.Delay >= format.SignificantDelayMinutes {
			delayed = append(delayed, route)
		}
	}
	if len(delayed) > 0 {
		fmt.Printf("%s%s⚠ SIGNIFICANT DELAYS (≥%d min):%s\n", format.Bold, format.Red, format.SignificantDelayMinutes, format.Reset)
		format.Routes(os.Stdout, delayed, false)
	}
	return nil
}

var departuresCmd = &cobra.Command{
	Use:   "departures <station>",
	Short: "List departures from a station",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveStation(args[0])
		if err != nil {
			return err
		}
		routes, err := newClient().Departures(cmd.Context(), id, limitFlag)
		if err != nil {
			return err
		}
		format.Board(os.Stdout, routes)
		return nil
	},
}

var arrivalsCmd = &cobra.Command{
	Use:   "arrivals <station>",
	Short: "List arrivals at a station",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveStation(args[0])
		if err != nil {
			return err
		}
		routes, err := newClient().Arrivals(cmd.Context(), id, limitFlag)
		if err != nil {
			return err
		}
		format.Board(os.Stdout, routes)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search stations by city or station name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := newClient().FindStation(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		format.Matches(os.Stdout, matches)
		return nil
	},
}

var delaysCmd = &cobra.Command{
	Use:   "delays",
	Short: "Check delays on routes between two stations",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := resolveStation(fromFlag)
		if err != nil {
			return err
		}
		to, err := resolveStation(toFlag)
		if err != nil {
			return err
		}
		routes, err := newClient().CheckDelays(cmd.Context(), from, to, thresholdFlag)
		if err != nil {
			return err
		}
		format.Routes(os.Stdout, routes, true)
		format.DelaySummary(os.Stdout, routes)
		return nil
	},
}
