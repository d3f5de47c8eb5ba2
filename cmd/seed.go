package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/restaurant-reservation/config"
	"github.com/Eursukkul/restaurant-reservation/internal/seed"
	"github.com/Eursukkul/restaurant-reservation/internal/service"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var withReservations bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the default tables and, optionally, sample reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cfg.Storage == config.StorageMemory {
				return fmt.Errorf("seed needs a persistent store, STORAGE is %q", cfg.Storage)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			store, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			seeder := seed.NewSeeder(store, service.NewReservationService(store, nil))
			tables, err := seeder.Tables(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d tables\n", tables)

			if withReservations {
				n, err := seeder.Reservations(ctx, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %d reservations\n", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withReservations, "reservations", false, "also book sample reservations for today and tomorrow")
	return cmd
}
