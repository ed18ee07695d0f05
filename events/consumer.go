package events

import (
	"encoding/json"
	"log"
	"path/filepath"

	"github.com/woodora/woodora-api/utils"
)

// StartOrderConsumer reads order events off the queue and sends the customer
// emails. Runs in its own goroutine; errors are logged and the message is
// acked anyway since email is best-effort.
func (b *Bus) StartOrderConsumer() {
	if b == nil {
		return
	}

	messages, err := b.channel.Consume(
		b.cfg.Queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Printf("Failed to start order consumer: %v", err)
		return
	}

	log.Println("Order event consumer started.")
	for msg := range messages {
		var event OrderEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			log.Printf("Dropping malformed order event: %v", err)
			msg.Ack(false)
			continue
		}

		switch event.Type {
		case EventOrderCreated:
			sendOrderEmail(event, "Your Woodora order is confirmed", "order_confirmation.html")
		case EventOrderPaid:
			sendOrderEmail(event, "Payment received for your Woodora order", "payment_receipt.html")
		default:
			log.Printf("Ignoring order event of unknown type %q", event.Type)
		}

		msg.Ack(false)
	}
}

func sendOrderEmail(event OrderEvent, subject, templateName string) {
	if event.Email == "" {
		return
	}

	emailData := utils.EmailData{
		Name:    event.CustomerName,
		OrderID: uint(event.OrderID),
		Total:   event.Total,
		LogoURL: "https://www.woodora.store/images/logo.png",
	}

	templatePath := filepath.Join("templates", templateName)
	if err := utils.SendEmail(event.Email, subject, emailData, templatePath); err != nil {
		log.Printf("Error sending %s email for order %d: %v", event.Type, event.OrderID, err)
	} else {
		log.Printf("Sent %s email for order %d to %s", event.Type, event.OrderID, event.Email)
	}
}
