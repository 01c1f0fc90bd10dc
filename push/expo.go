package push

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Sender delivers a push notification to one device token.
type Sender interface {
	Send(token, title, body string) error
}

// Client sends notifications through the Expo push service.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

type message struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound"`
}

func (c *Client) Send(token, title, body string) error {
	payload, err := json.Marshal(message{To: token, Title: title, Body: body, Sound: "default"})
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Post(c.Endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("push service returned %s", resp.Status)
	}
	return nil
}
