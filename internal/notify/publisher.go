package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/sahigaadi/internal/models"
)

// Publisher announces booked consultations to the sales desk.
type Publisher interface {
	PublishConsultation(ctx context.Context, consultation models.Consultation) error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

// PublishConsultation does nothing.
func (NopPublisher) PublishConsultation(ctx context.Context, consultation models.Consultation) error {
	return nil
}

// ConsultationEvent is the message body published for a new lead.
type ConsultationEvent struct {
	Event        string              `json:"event"`
	Consultation models.Consultation `json:"consultation"`
	PriceINR     int                 `json:"price_inr"`
	Minutes      int                 `json:"duration_minutes"`
}

// EventConsultationBooked names the only event published today.
const EventConsultationBooked = "consultation.booked"

const (
	qosAtLeastOnce  = 1
	publishTimeout  = 5 * time.Second
	connectTimeout  = 10 * time.Second
	disconnectQuiet = 250 // ms
)

// MQTTPublisher publishes lead events as JSON to <prefix>/consultations.
type MQTTPublisher struct {
	client mqtt.Client
	topic  string
}

// NewMQTTPublisher connects to the broker and returns a publisher.
func NewMQTTPublisher(broker, clientID, topicPrefix string) (*MQTTPublisher, error) {
	if clientID == "" {
		clientID = "sahigaadi-api"
	}
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.WithError(err).Warn("MQTT connection lost")
		})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqtt connect to %s: timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", broker, err)
	}

	log.WithFields(log.Fields{"broker": broker, "client_id": clientID}).Info("Connected to MQTT broker")
	return newMQTTPublisher(client, topicPrefix), nil
}

func newMQTTPublisher(client mqtt.Client, topicPrefix string) *MQTTPublisher {
	if topicPrefix == "" {
		topicPrefix = "sahigaadi"
	}
	return &MQTTPublisher{client: client, topic: topicPrefix + "/consultations"}
}

// Topic returns the topic consultations are published to.
func (p *MQTTPublisher) Topic() string {
	return p.topic
}

// PublishConsultation publishes a consultation.booked event with QoS 1.
func (p *MQTTPublisher) PublishConsultation(ctx context.Context, consultation models.Consultation) error {
	payload, err := json.Marshal(ConsultationEvent{
		Event:        EventConsultationBooked,
		Consultation: consultation,
		PriceINR:     models.ConsultationPriceINR,
		Minutes:      models.ConsultationMinutes,
	})
	if err != nil {
		return fmt.Errorf("marshal consultation event: %w", err)
	}

	token := p.client.Publish(p.topic, qosAtLeastOnce, false, payload)

	timeout := publishTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if !token.WaitTimeout(timeout) {
		return fmt.Errorf("publish to %s: timed out", p.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	return nil
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(disconnectQuiet)
}
