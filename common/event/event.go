package event

import (
	"fmt"
	messagebus "github.com/vardius/message-bus"
	"vincit.fi/asset-viewer/api"
	"vincit.fi/asset-viewer/api/apitype"
	"vincit.fi/asset-viewer/common/logger"
)

type Broker struct {
	bus messagebus.MessageBus

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

// Subscribe registers fn for the topic. Every subscriber gets its own
// copy of each message, delivered in publish order.
func (s *Broker) Subscribe(topic api.Topic, fn interface{}) error {
	if err := s.bus.Subscribe(string(topic), fn); err != nil {
		logger.Error.Printf("Could not subscribe to '%s': %s", topic, err)
		return err
	}
	return nil
}

// Unsubscribe takes the same fn value that was given to Subscribe.
func (s *Broker) Unsubscribe(topic api.Topic, fn interface{}) error {
	if err := s.bus.Unsubscribe(string(topic), fn); err != nil {
		logger.Warn.Printf("Could not unsubscribe from '%s': %s", topic, err)
		return err
	}
	return nil
}

// Close drops all subscribers of the topic.
func (s *Broker) Close(topic api.Topic) {
	logger.Trace.Printf("Closing topic '%s'", topic)
	s.bus.Close(string(topic))
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formatError(message, err)})
}

func formatError(message string, err error) string {
	formattedMessage := message
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	return formattedMessage
}

// DevNullBroker accepts everything and delivers nothing. Used for
// sessions nobody observes.
type DevNullBroker struct {
	api.Sender
}

func InitDevNullBus() *DevNullBroker {
	return &DevNullBroker{}
}

func (s *DevNullBroker) SendToTopic(api.Topic) {}

func (s *DevNullBroker) SendCommandToTopic(api.Topic, apitype.Command) {}

func (s *DevNullBroker) SendError(message string, err error) {
	formatError(message, err)
}
