// This file contains the background consumer that listens to the
// seat-events exchange and writes structured logs to logs/seat-events.log.
package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const consumerQueueName = "seat-events.audit"

// StartEventConsumer connects to RabbitMQ, binds a durable queue to the
// seat-events exchange for every seat key and the grid key, and starts
// consuming.  Each message is appended to logs/seat-events.log in a
// single-line, human-friendly format.  The function runs a reconnect
// loop with backoff and keeps running across broker restarts; any
// processing error is logged and the offending message rejected so the
// server continues operating.
func StartEventConsumer() error {
	url := BrokerURL()

	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("event-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn); err != nil {
			log.Printf("event-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
			continue
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("event-consumer: set QoS failed: %v", err)
	}

	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err := ch.QueueDeclare(consumerQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, key := range []string{"seat.#", GridKey} {
		if err := ch.QueueBind(consumerQueueName, key, Exchange, false, nil); err != nil {
			return fmt.Errorf("queue bind %q: %w", key, err)
		}
	}

	msgs, err := ch.Consume(consumerQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.RoutingKey, d.Body); err != nil {
			log.Printf("event-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(key string, body []byte) error {
	// Grid snapshots are large and carry no extra information for the
	// audit trail; note them without dumping the payload.
	var head struct {
		Type   string `json:"type"`
		SeatID string `json:"seatId"`
		UserID string `json:"userId"`
		At     string `json:"at"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "seat-events.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var line string
	switch head.Type {
	case EventGridUpdated:
		line = fmt.Sprintf("[%s] %s | key=%s\n", head.At, head.Type, key)
	default:
		line = fmt.Sprintf("[%s] %s | key=%s | seat=%s | user=%s\n",
			head.At, head.Type, key, head.SeatID, head.UserID)
	}
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
