package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/restaurant-reservation/config"
	"github.com/Eursukkul/restaurant-reservation/internal/consumer"
	"github.com/Eursukkul/restaurant-reservation/internal/seed"
	"github.com/Eursukkul/restaurant-reservation/internal/server"
	"github.com/Eursukkul/restaurant-reservation/internal/service"
	"github.com/Eursukkul/restaurant-reservation/pkg/metrics"
	"github.com/Eursukkul/restaurant-reservation/pkg/rabbitmq"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var seedTables bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the reservation HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("seed") {
				cfg.SeedOnStart = seedTables
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			store, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			var publisher service.EventPublisher
			if cfg.RabbitURL != "" {
				pub, err := rabbitmq.NewPublisher(cfg.RabbitURL)
				if err != nil {
					return err
				}
				defer pub.Close()
				publisher = pub

				mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
				if err != nil {
					return err
				}
				defer mqConsumer.Close()

				msgs, err := mqConsumer.Consume()
				if err != nil {
					return err
				}
				consumer.NewTableConsumer(store.Tables()).Start(ctx, msgs)
			} else {
				log.Println("[RabbitMQ] RABBITMQ_URL not set, events disabled")
			}

			var m *metrics.Metrics
			if cfg.MetricsEnabled {
				m = metrics.New()
			}

			var observer service.DecisionObserver
			if m != nil {
				observer = m
			}
			reservationSvc := service.WithDecisionObserver(service.NewReservationService(store, publisher), observer)
			tableSvc := service.NewTableService(store)

			if cfg.SeedOnStart {
				if _, err := seed.NewSeeder(store, reservationSvc).Tables(ctx); err != nil {
					return err
				}
			}

			e := server.New(server.Options{
				Tables:       tableSvc,
				Reservations: reservationSvc,
				CORSOrigins:  cfg.CORSOrigins,
				Metrics:      m,
				AccessLog:    true,
			})

			errCh := make(chan error, 1)
			go func() {
				log.Printf("Reservation Service starting on :%s", cfg.ServerPort)
				errCh <- e.Start(":" + cfg.ServerPort)
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Println("shutting down")
			shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
			defer stop()
			return e.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().BoolVar(&seedTables, "seed", false, "insert the default tables on startup (overrides SEED_ON_START)")
	return cmd
}
