package domain

import "time"

// Client is the person a reservation is booked for
type Client struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// FullName returns "FirstName LastName"
func (c *Client) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// ContactMessage is an inbound inquiry from the website contact form.
// Stored separately from clients: an inquiry is not a customer.
type ContactMessage struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Message   string
	CreatedAt time.Time
}
