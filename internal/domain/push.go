package domain

import "time"

// PushSubscription is a browser Web Push subscription
type PushSubscription struct {
	ID        string
	Endpoint  string
	P256dh    string
	Auth      string
	CreatedAt time.Time
}

// PushMessage is the payload delivered to subscribers
type PushMessage struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}

// PushReport summarizes a fan-out
type PushReport struct {
	Sent   int
	Failed int
	Pruned int
}
