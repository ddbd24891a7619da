package db

import (
	"context"
	"fmt"
	"log/slog"

	"parkspot/internal/infra/query"
)

var demoSpots = []query.CreateSpotParams{
	{Name: "Zürich HB Parkplatz", Address: "Bahnhofplatz 1, 8001 Zürich", Latitude: 47.3769, Longitude: 8.5417, TotalSpots: 150, OccupiedSpots: 95, PricePerHourCents: 450, IsActive: true},
	{Name: "Oerlikon Zentrum", Address: "Oerlikonerstrasse 98, 8050 Zürich", Latitude: 47.4109, Longitude: 8.5441, TotalSpots: 80, OccupiedSpots: 45, PricePerHourCents: 350, IsActive: true},
	{Name: "Winterthur Altstadt", Address: "Stadthausstrasse 12, 8400 Winterthur", Latitude: 47.4990, Longitude: 8.7240, TotalSpots: 60, OccupiedSpots: 20, PricePerHourCents: 300, IsActive: true},
	{Name: "Basel SBB Parking", Address: "Centralbahnplatz 1, 4051 Basel", Latitude: 47.5477, Longitude: 7.5900, TotalSpots: 200, OccupiedSpots: 120, PricePerHourCents: 500, IsActive: true},
	{Name: "Bern Bahnhof West", Address: "Bubenbergplatz 5, 3011 Bern", Latitude: 46.9490, Longitude: 7.4390, TotalSpots: 120, OccupiedSpots: 80, PricePerHourCents: 400, IsActive: true},
	{Name: "Luzern Zentrum", Address: "Pilatusstrasse 14, 6003 Luzern", Latitude: 47.0502, Longitude: 8.3093, TotalSpots: 90, OccupiedSpots: 55, PricePerHourCents: 380, IsActive: true},
	{Name: "St. Gallen City", Address: "Vadianstrasse 6, 9001 St. Gallen", Latitude: 47.4245, Longitude: 9.3767, TotalSpots: 70, OccupiedSpots: 30, PricePerHourCents: 320, IsActive: true},
	{Name: "Lausanne Gare", Address: "Place de la Gare 9, 1003 Lausanne", Latitude: 46.5167, Longitude: 6.6333, TotalSpots: 110, OccupiedSpots: 70, PricePerHourCents: 420, IsActive: true},
}

// SeedDemoSpots fills an empty catalog with the demo locations. A non-empty catalog is left alone.
func SeedDemoSpots(ctx context.Context, q *query.Queries, db query.DBTX) error {
	n, err := q.CountSpots(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to count parking spots: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, s := range demoSpots {
		if _, err := q.CreateSpot(ctx, db, s); err != nil {
			return fmt.Errorf("failed to seed parking spot %q: %w", s.Name, err)
		}
	}
	slog.Info("demo parking spots seeded", "count", len(demoSpots))
	return nil
}
