package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/citytransit/transport-registry/internal/config"
	"github.com/citytransit/transport-registry/pkg/logger"
	"github.com/citytransit/transport-registry/registry"
)

var demoLong = `Runs a fixed demonstration scenario against an in-memory
transport registry: builds sample routes, vehicles, passengers and
schedules, exercises the CRUD surface, exports the data to JSON and XML,
reloads the JSON export into a fresh registry and prints the result.`

// newDemoCmd creates the demo command.
func newDemoCmd(lggr logger.Logger) *cobra.Command {
	var (
		configPath string
		jsonOut    string
		xmlOut     string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the demonstration scenario",
		Long:  demoLong,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if jsonOut != "" {
				cfg.Output.JSONPath = jsonOut
			}
			if xmlOut != "" {
				cfg.Output.XMLPath = xmlOut
			}

			if err := runDemo(cmd.OutOrStdout(), lggr, cfg); err != nil {
				// Domain errors are reported, not propagated; anything else
				// is unexpected and bubbles up.
				if isDomainError(err) {
					lggr.Errorw("transport registry error", "err", err)
					return nil
				}

				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "registry.yaml", "path to the config file")
	cmd.Flags().StringVar(&jsonOut, "json-out", "", "override the JSON export path")
	cmd.Flags().StringVar(&xmlOut, "xml-out", "", "override the XML export path")

	return cmd
}

// isDomainError reports whether err belongs to the registry's own error
// taxonomy, as opposed to an unexpected failure.
func isDomainError(err error) bool {
	var fileErr *registry.FileOperationError

	return errors.Is(err, registry.ErrRouteNotFound) ||
		errors.Is(err, registry.ErrRouteExists) ||
		errors.Is(err, registry.ErrVehicleNotFound) ||
		errors.Is(err, registry.ErrVehicleExists) ||
		errors.Is(err, registry.ErrPassengerNotFound) ||
		errors.Is(err, registry.ErrPassengerExists) ||
		errors.As(err, &fileErr)
}

// buildSampleRegistry constructs the demonstration data set.
func buildSampleRegistry() (*registry.MemoryRegistry, error) {
	reg := registry.NewMemoryRegistry()

	routeOne := registry.NewRoute(1, "t77", "Hauptbahnhof", "Müllerstraße")
	if err := routeOne.AddVehicle(registry.Vehicle{ID: 1, Model: "MAN Lion's City", Capacity: 77, Type: "Bus"}); err != nil {
		return nil, err
	}
	if err := routeOne.AddVehicle(registry.Vehicle{ID: 2, Model: "Mercedes Citaro", Capacity: 80, Type: "Bus"}); err != nil {
		return nil, err
	}

	routeTwo := registry.NewRoute(2, "37", "Zoo", "Charlottenburg")
	if err := routeTwo.AddVehicle(registry.Vehicle{ID: 4, Model: "Tatra T3", Capacity: 95, Type: "Tram"}); err != nil {
		return nil, err
	}

	routeThree := registry.NewRoute(3, "141", "Flughafen", "Messe Süd")
	if err := routeThree.AddVehicle(registry.Vehicle{ID: 3, Model: "BYD K9", Capacity: 35, Type: "Electric Bus"}); err != nil {
		return nil, err
	}

	for _, route := range []registry.Route{routeOne, routeTwo, routeThree} {
		if err := reg.Routes().Add(route); err != nil {
			return nil, err
		}
	}

	passengers := []registry.Passenger{
		{ID: 1, Name: "Jürgen Möller", CardNumber: "0021095222"},
		{ID: 2, Name: "María Pérez", CardNumber: "0022112312"},
		{ID: 3, Name: "Piotr Nowak", CardNumber: "0023123312"},
	}
	for _, p := range passengers {
		if err := reg.Passengers().Add(p); err != nil {
			return nil, err
		}
	}

	reg.Schedules().AddAll(
		registry.Schedule{ID: 1, RouteID: 1, DepartureTime: "08:00", ArrivalTime: "08:45"},
		registry.Schedule{ID: 2, RouteID: 1, DepartureTime: "14:00", ArrivalTime: "14:45"},
		registry.Schedule{ID: 3, RouteID: 3, DepartureTime: "11:10", ArrivalTime: "11:25"},
	)

	return reg, nil
}

// runDemo executes the fixed demonstration sequence.
func runDemo(w io.Writer, lggr logger.Logger, cfg *config.Config) error {
	reg, err := buildSampleRegistry()
	if err != nil {
		return err
	}

	if err := reg.Render(w); err != nil {
		return err
	}

	route, err := reg.Routes().Get(1)
	if err != nil {
		return err
	}
	lggr.Infow("read route", "route", route.String())

	endPoint := "Neukölln"
	if err := reg.UpdateRoute(1, registry.RouteUpdate{EndPoint: &endPoint}); err != nil {
		return err
	}
	route, err = reg.Routes().Get(1)
	if err != nil {
		return err
	}
	lggr.Infow("updated route", "route", route.String())

	if err := reg.Routes().Delete(3); err != nil {
		return err
	}
	lggr.Infow("deleted route", "id", 3, "remaining", len(reg.Routes().Fetch()))

	if err := reg.SaveJSON(cfg.Output.JSONPath); err != nil {
		return err
	}
	if err := reg.SaveXML(cfg.Output.XMLPath); err != nil {
		return err
	}
	lggr.Infow("exports written", "json", cfg.Output.JSONPath, "xml", cfg.Output.XMLPath)

	reloaded := registry.NewMemoryRegistry()
	if err := reloaded.LoadJSON(cfg.Output.JSONPath); err != nil {
		return err
	}
	lggr.Info("reloaded registry from JSON export")
	if err := reloaded.Render(w); err != nil {
		return err
	}

	// Error handling demonstration: these failures are expected and only
	// reported.
	if _, err := reg.Routes().Get(3); err != nil {
		lggr.Infow("expected lookup failure", "err", err)
	}

	if err := route.AddVehicle(registry.Vehicle{ID: 1, Model: "MAN Lion's City", Capacity: 77, Type: "Bus"}); err != nil {
		lggr.Infow("expected duplicate failure", "err", err)
	}

	return nil
}
