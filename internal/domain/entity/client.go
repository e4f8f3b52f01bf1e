package entity

import "time"

// Client representa un cliente. Desde el núcleo de ventas es de solo lectura.
type Client struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}

// FullName nombre completo para vistas.
func (c *Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
