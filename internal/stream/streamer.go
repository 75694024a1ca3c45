package stream

import (
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"animd/internal/animator"
)

// Streamer renders a frame on every animator frame fire and publishes
// it as binary over MQTT to an ledrx-style receiver.
type Streamer struct {
	client   mqtt.Client
	topic    string
	renderer Renderer

	mu      sync.Mutex
	runtime time.Duration
	sent    uint64
	cancel  func()
}

// NewStreamer creates a Streamer publishing frames from r to topic.
func NewStreamer(client mqtt.Client, topic string, r Renderer) *Streamer {
	return &Streamer{client: client, topic: topic, renderer: r}
}

// Attach subscribes the streamer to a's frame events. A second Attach
// replaces the previous subscription.
func (s *Streamer) Attach(a *animator.Animator) {
	s.Detach()
	s.mu.Lock()
	s.cancel = a.OnFrame(s.frame)
	s.mu.Unlock()
}

// Detach unsubscribes from the animator; idempotent.
func (s *Streamer) Detach() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Sent reports how many frames were handed to the MQTT client.
func (s *Streamer) Sent() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sent
}

// frame runs inside the animator tick, so the publish is fire-and-forget;
// waiting on the broker here would stall the whole frame chain.
func (s *Streamer) frame(delta time.Duration) {
	s.mu.Lock()
	s.runtime += delta
	runtime := s.runtime
	s.sent++
	s.mu.Unlock()

	f := s.renderer.RenderFrame(runtime)
	b, err := f.MarshalBinary()
	if err != nil {
		return
	}
	s.client.Publish(s.topic, 1, false, b)
}
