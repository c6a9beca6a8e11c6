// Command debug dumps stored player levels straight from the configured
// backend, without starting the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/osse101/PlayerLevels_Go/internal/config"
	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/plugin"
)

func main() {
	app, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	path := flag.String("config", app.PluginConfigPath, "plugin config file")
	top := flag.Int("top", domain.DefaultLeaderboardLimit, "number of players to list")
	name := flag.String("player", "", "show a single player by name")
	flag.Parse()

	cfg, err := config.LoadPlugin(*path)
	if err != nil {
		log.Printf("Config %s unusable (%v), using defaults", *path, err)
		cfg = config.DefaultPlugin()
	}
	cfg.ApplyEnv(app)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, err := plugin.OpenRepository(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.Storage.Type, err)
	}
	defer repo.Close()

	var records []domain.PlayerRecord
	if *name != "" {
		rec, err := repo.GetPlayerByName(ctx, *name)
		if err != nil {
			log.Fatalf("Failed to query player: %v", err)
		}
		if rec == nil {
			fmt.Printf("No record for %s\n", *name)
			return
		}
		records = append(records, *rec)
	} else {
		records, err = repo.GetTopPlayers(ctx, domain.ClampLeaderboardLimit(*top))
		if err != nil {
			log.Fatalf("Failed to query players: %v", err)
		}
	}

	fmt.Printf("--- Player levels (%s) ---\n", cfg.Storage.Type)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "UUID\tNAME\tLEVEL\tXP")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.1f\n", rec.ID, rec.Name, rec.Level, rec.Experience)
	}
	w.Flush()
}
