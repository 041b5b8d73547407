// ABOUTME: Command-line control client for a running Pulseplay player
// ABOUTME: Sends speed, playback, and status commands over the control WebSocket
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/url"

	"github.com/Pulseplay-Audio/pulseplay-go/internal/control"
	"github.com/gorilla/websocket"
)

var (
	addr   = flag.String("addr", "localhost:8937", "Player control address")
	speed  = flag.Float64("speed", 0, "Set the playback speed multiplier")
	play   = flag.String("play", "", "Start playback of the given file path")
	status = flag.Bool("status", false, "Print the player status")
)

func main() {
	flag.Parse()

	u := url.URL{Scheme: "ws", Host: *addr, Path: "/pulseplay"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("dial %s failed: %v", u.String(), err)
	}
	defer conn.Close()

	sent := false

	if *speed != 0 {
		send(conn, "speed/set", control.SpeedSet{Speed: *speed})
		sent = true
	}

	if *play != "" {
		send(conn, "playback/start", control.PlaybackStart{Path: *play})
		sent = true
	}

	if *status || !sent {
		send(conn, "status/get", nil)
	}
}

// send writes one command and prints the reply.
func send(conn *websocket.Conn, msgType string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("marshal %s failed: %v", msgType, err)
	}

	if err := conn.WriteJSON(control.Message{Type: msgType, Payload: raw}); err != nil {
		log.Fatalf("send %s failed: %v", msgType, err)
	}

	var reply control.Message
	if err := conn.ReadJSON(&reply); err != nil {
		log.Fatalf("read reply to %s failed: %v", msgType, err)
	}

	fmt.Printf("%s: %s\n", reply.Type, string(reply.Payload))
}
