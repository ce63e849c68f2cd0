package stream

import (
	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/animatic/canvas"
)

// A Streamer is a display sink that publishes rendered frames as binary over
// MQTT. Frames are published at QoS 2 and the publish is waited on, so the
// broker provides backpressure and frames stay in order.
type Streamer struct {
	client mqtt.Client
	topic  string
}

// NewStreamer creates a Streamer publishing to the given topic.
func NewStreamer(client mqtt.Client, topic string) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = topic
	return s
}

// Connect dials the broker configured on the client.
func (s *Streamer) Connect() error {
	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// SendFrame publishes one frame as binary. Implements anim.Sink.
func (s *Streamer) SendFrame(c *canvas.Canvas) error {
	token := s.client.Publish(s.topic, 2, false, MarshalFrame(c))
	token.Wait()
	return token.Error()
}
