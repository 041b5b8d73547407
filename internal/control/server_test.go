// ABOUTME: Tests for the WebSocket control server
// ABOUTME: Verifies speed, playback, and status round trips over a live socket
package control

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/Pulseplay-Audio/pulseplay-go/pkg/player"
	"github.com/Pulseplay-Audio/pulseplay-go/pkg/sink"
	"github.com/gorilla/websocket"
)

// nullChannel accepts everything and plays nothing.
type nullChannel struct{}

func (nullChannel) Enable() error  { return nil }
func (nullChannel) Disable() error { return nil }
func (nullChannel) Destroy() error { return nil }
func (nullChannel) Write(samples []int16, _ time.Duration) (int, error) {
	return len(samples), nil
}

type nullSink struct{}

func (nullSink) Create(rateHz, channels int) (sink.Channel, error) {
	return nullChannel{}, nil
}

func startTestServer(t *testing.T) (*Server, *websocket.Conn) {
	t.Helper()

	engine := player.New(nullSink{}, player.Options{})
	srv := NewServer(engine, 0)
	if err := srv.Start(); err != nil {
		t.Fatalf("failed to start server: %v", err)
	}
	t.Cleanup(srv.Stop)

	url := fmt.Sprintf("ws://%s/pulseplay", srv.Addr())
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })

	return srv, conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msgType string, payload interface{}) Message {
	t.Helper()

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	if err := conn.WriteJSON(Message{Type: msgType, Payload: raw}); err != nil {
		t.Fatalf("failed to send %s: %v", msgType, err)
	}

	var reply Message
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("failed to read reply to %s: %v", msgType, err)
	}
	return reply
}

func TestSpeedSetRoundTrip(t *testing.T) {
	_, conn := startTestServer(t)

	reply := roundTrip(t, conn, "speed/set", SpeedSet{Speed: 2.5})
	if reply.Type != "speed/ack" {
		t.Fatalf("expected speed/ack, got %s", reply.Type)
	}

	var ack SpeedSet
	if err := json.Unmarshal(reply.Payload, &ack); err != nil {
		t.Fatalf("failed to parse ack: %v", err)
	}
	if ack.Speed != 2.5 {
		t.Errorf("expected applied speed 2.5, got %f", ack.Speed)
	}
}

func TestSpeedSetReportsClampedValue(t *testing.T) {
	_, conn := startTestServer(t)

	reply := roundTrip(t, conn, "speed/set", SpeedSet{Speed: 10.0})

	var ack SpeedSet
	if err := json.Unmarshal(reply.Payload, &ack); err != nil {
		t.Fatalf("failed to parse ack: %v", err)
	}
	if ack.Speed != player.MaxSpeed {
		t.Errorf("expected clamped speed %.2f in ack, got %f", player.MaxSpeed, ack.Speed)
	}
}

func TestStatusWhenIdle(t *testing.T) {
	_, conn := startTestServer(t)

	reply := roundTrip(t, conn, "status/get", nil)
	if reply.Type != "status/report" {
		t.Fatalf("expected status/report, got %s", reply.Type)
	}

	var status StatusReport
	if err := json.Unmarshal(reply.Payload, &status); err != nil {
		t.Fatalf("failed to parse status: %v", err)
	}
	if status.State != "idle" {
		t.Errorf("expected idle state, got %s", status.State)
	}
	if status.Speed != 1.0 {
		t.Errorf("expected default speed 1.0, got %f", status.Speed)
	}
}

func TestPlaybackStartRequiresPath(t *testing.T) {
	_, conn := startTestServer(t)

	reply := roundTrip(t, conn, "playback/start", PlaybackStart{})
	if reply.Type != "error" {
		t.Fatalf("expected error reply, got %s", reply.Type)
	}
}

func TestPlaybackStartMissingFileRecordsError(t *testing.T) {
	srv, conn := startTestServer(t)

	reply := roundTrip(t, conn, "playback/start", PlaybackStart{Path: "/nonexistent.wav"})
	if reply.Type != "playback/ack" {
		t.Fatalf("expected playback/ack, got %s", reply.Type)
	}

	// The session fails asynchronously; poll the server state directly.
	deadline := time.Now().Add(2 * time.Second)
	for {
		srv.mu.Lock()
		playing, lastErr := srv.playing, srv.lastErr
		srv.mu.Unlock()

		if !playing && lastErr != "" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected failed session to record an error, playing=%v lastErr=%q", playing, lastErr)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestUnknownMessageType(t *testing.T) {
	_, conn := startTestServer(t)

	reply := roundTrip(t, conn, "volume/set", nil)
	if reply.Type != "error" {
		t.Fatalf("expected error reply for unknown type, got %s", reply.Type)
	}
}
