package consumer

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
	"github.com/Eursukkul/restaurant-reservation/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
)

const RoutingTableCreated = "table.created"

// TableCreatedEvent announces a table added to the floor plan elsewhere.
type TableCreatedEvent struct {
	TableNumber string `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
	Location    string `json:"location"`
}

type TableConsumer struct {
	tables repository.TableRepository
}

func NewTableConsumer(tables repository.TableRepository) *TableConsumer {
	return &TableConsumer{tables: tables}
}

// Start listens for table messages until msgs is closed or ctx is done.
func (tc *TableConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Println("[TableConsumer] context done, stopping consumer")
				return
			case msg, ok := <-msgs:
				if !ok {
					log.Println("[TableConsumer] channel closed, stopping consumer")
					return
				}
				tc.handleMessage(ctx, msg)
			}
		}
	}()
}

func (tc *TableConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	if msg.RoutingKey != RoutingTableCreated {
		log.Printf("[TableConsumer] ignoring routing key %q", msg.RoutingKey)
		msg.Ack(false)
		return
	}

	var event TableCreatedEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("[TableConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}
	event.TableNumber = strings.TrimSpace(event.TableNumber)
	if event.TableNumber == "" || event.Capacity <= 0 {
		log.Printf("[TableConsumer] rejecting invalid table %+v", event)
		msg.Nack(false, false)
		return
	}

	table := &models.Table{
		TableNumber: event.TableNumber,
		Capacity:    event.Capacity,
		Location:    event.Location,
	}
	created, err := tc.tables.CreateIfAbsent(ctx, table)
	if err != nil {
		log.Printf("[TableConsumer] failed to create table %s: %v", event.TableNumber, err)
		msg.Nack(false, true) // requeue
		return
	}

	if created {
		log.Printf("[TableConsumer] synced table %s (id %d)", table.TableNumber, table.ID)
	} else {
		log.Printf("[TableConsumer] table %s already exists", event.TableNumber)
	}
	msg.Ack(false)
}
