package services

// EventPublisher delivers domain events to a message broker.
type EventPublisher interface {
	PublishJSON(routingKey string, payload any) error
}
