package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Context carries structured fields along a debug message.
type Context map[string]interface{}

type Message struct {
	Time    string  `json:"time"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

func Debug(service string, message string) {
	DebugWith(service, message, nil)
}

// DebugWith prints one JSON log line for the given service; the hostname is
// attached to the context when it can be resolved.
func DebugWith(service string, message string, context Context) {
	if context == nil {
		context = make(Context, 0)
	}

	if hostname, err := os.Hostname(); err == nil {
		context["hostname"] = hostname
	}

	data, _ := json.Marshal(Message{
		Time:    time.Now().Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: context,
	})

	fmt.Println(string(data))
}
