/*
Package stream publishes the output of map animations over MQTT, so that a
remote map view can replay them.
*/
package stream

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/glide/adapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// tracer writes to trace with key 'stream'
func tracer() tracing.Trace {
	return tracing.Select("stream")
}

const publishTimeout = 5 * time.Second

// Publisher is the part of an MQTT client a Streamer needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// PaintMessage carries one paint property update.
type PaintMessage struct {
	Layer    string      `json:"layer"`
	Property string      `json:"property"`
	Value    interface{} `json:"value"`
}

// Streamer is a map view that forwards every change to MQTT topics below
// a common prefix. It implements the camera, paint, source and atmosphere
// surfaces of package adapter.
type Streamer struct {
	client Publisher
	prefix string
	qos    byte

	mu      sync.Mutex
	bearing float64
}

var (
	_ adapter.Camera     = (*Streamer)(nil)
	_ adapter.Paint      = (*Streamer)(nil)
	_ adapter.Source     = (*Streamer)(nil)
	_ adapter.Atmosphere = (*Streamer)(nil)
)

// NewStreamer creates an instance of a Streamer.
func NewStreamer(client Publisher, prefix string, qos byte) *Streamer {
	s := new(Streamer)
	s.client = client
	s.prefix = prefix
	s.qos = qos
	return s
}

// Topic returns the full topic for a sub-topic.
func (s *Streamer) Topic(sub string) string {
	return s.prefix + "/" + sub
}

// Bearing is the bearing of the last camera pose sent.
func (s *Streamer) Bearing() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bearing
}

// SetCamera publishes a camera pose. A camera looking at a point faces it.
func (s *Streamer) SetCamera(pose adapter.CameraPose) {
	if pose.LookAt != nil {
		pose.Bearing = geo.Bearing(pose.Position, *pose.LookAt)
	}
	s.mu.Lock()
	s.bearing = pose.Bearing
	s.mu.Unlock()
	s.send(s.Topic("camera"), pose)
}

func (s *Streamer) SetPaintProperty(layerID, property string, value interface{}) {
	s.send(s.Topic("paint"), PaintMessage{Layer: layerID, Property: property, Value: value})
}

func (s *Streamer) SetSourceData(sourceID string, data *geojson.Feature) {
	s.send(s.Topic("source/"+sourceID), data)
}

func (s *Streamer) SetFog(fog adapter.Fog) {
	s.send(s.Topic("fog"), fog)
}

// send publishes without waiting for the broker; animation frames must
// not block. Failures are only logged.
func (s *Streamer) send(topic string, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		tracer().Errorf("encoding message for %s: %v", topic, err)
		return
	}
	token := s.client.Publish(topic, s.qos, false, b)
	select {
	case <-token.Done():
		report(topic, token)
	default:
		go func() {
			if !token.WaitTimeout(publishTimeout) {
				tracer().Errorf("publishing to %s timed out", topic)
				return
			}
			report(topic, token)
		}()
	}
}

func report(topic string, token mqtt.Token) {
	if err := token.Error(); err != nil {
		tracer().Errorf("publishing to %s: %v", topic, err)
	}
}
