package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type EventType string

const (
	ApplicationSubmitted     EventType = "APPLICATION_SUBMITTED"
	ApplicationStatusChanged EventType = "APPLICATION_STATUS_CHANGED"
)

// ApplicationEvent is the message written to the application events topic.
type ApplicationEvent struct {
	EventID        string    `json:"eventId"`
	Type           EventType `json:"type"`
	ApplicationID  uint      `json:"applicationId"`
	JobID          uint      `json:"jobId"`
	EmployeeEmail  string    `json:"employeeEmail"`
	RecruiterEmail string    `json:"recruiterEmail,omitempty"`
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
}

func NewApplicationEvent(t EventType, applicationID, jobID uint, employeeEmail, recruiterEmail, status string) ApplicationEvent {
	return ApplicationEvent{
		EventID:        uuid.NewString(),
		Type:           t,
		ApplicationID:  applicationID,
		JobID:          jobID,
		EmployeeEmail:  employeeEmail,
		RecruiterEmail: recruiterEmail,
		Status:         status,
		Timestamp:      time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event ApplicationEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &kafkaPublisher{writer: writer}
}

// Publish keys messages by application id so one application's events stay
// ordered within a partition.
func (p *kafkaPublisher) Publish(ctx context.Context, event ApplicationEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	message := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.ApplicationID), 10)),
		Value: value,
		Time:  event.Timestamp,
	}
	return p.writer.WriteMessages(ctx, message)
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type nopPublisher struct{}

// NewNopPublisher drops every event; used when no brokers are configured.
func NewNopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, ApplicationEvent) error { return nil }
func (nopPublisher) Close() error                                    { return nil }
