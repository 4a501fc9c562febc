package publishers

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"
)

// HotelEvent representa un mensaje sobre un hotel para los consumidores
// downstream (indexadores, invalidación de caché, etc.)
type HotelEvent struct {
	Action  string `json:"action"` // "create", "update"
	HotelID string `json:"hotel_id"`
}

// EventPublisher define la interfaz para publicar eventos de hoteles
type EventPublisher interface {
	PublishHotelEvent(action, hotelID string) error
	Close() error
}

// rabbitMQPublisher implementa EventPublisher sobre RabbitMQ
type rabbitMQPublisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
}

// NewRabbitMQPublisher crea una nueva instancia del publisher y declara
// la queue durable a la que publica
func NewRabbitMQPublisher(rabbitURL, queueName string) (EventPublisher, error) {
	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	log.Printf("RabbitMQ publisher connected, queue=%s", queueName)

	return &rabbitMQPublisher{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
	}, nil
}

// PublishHotelEvent publica un evento persistente en la queue
func (p *rabbitMQPublisher) PublishHotelEvent(action, hotelID string) error {
	event := HotelEvent{
		Action:  action,
		HotelID: hotelID,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal hotel event: %w", err)
	}

	err = p.channel.Publish(
		"",          // exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish hotel event: %w", err)
	}

	return nil
}

// Close cierra el channel y la conexión
func (p *rabbitMQPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.connection.Close()
		return err
	}
	return p.connection.Close()
}
