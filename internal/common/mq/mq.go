package mq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RefreshExchange carries snapshot refresh signals. Every dashboard instance
// binds its own queue to the fanout, so a single publish reloads them all.
const (
	RefreshExchange = "snapshot_refresh_fanout"
	RefreshQueue    = "snapshot_refresh.q"
)

type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func Dial(host string, port int, user, pass string) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, pass, host, port)
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &Client{conn: conn, ch: ch}, nil
}

func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// DeclareRefresh sets up the refresh fanout and its queue.
func (c *Client) DeclareRefresh() error {
	if c == nil || c.ch == nil {
		return fmt.Errorf("nil channel")
	}
	if err := c.ch.ExchangeDeclare(RefreshExchange, "fanout", true, false, false, false, nil); err != nil {
		return err
	}
	if _, err := c.ch.QueueDeclare(RefreshQueue, true, false, false, false, nil); err != nil {
		return err
	}
	return c.ch.QueueBind(RefreshQueue, "", RefreshExchange, false, nil)
}

func (c *Client) Consume(queue, consumer string, prefetch int) (<-chan amqp.Delivery, error) {
	if err := c.ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}
	return c.ch.Consume(queue, consumer, false, false, false, false, nil)
}
