package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"

	"learnit-service/internal/domain/entities"
)

const postSubjectPrefix = "posts."

// NATSPublisher publishes post events on posts.<type>. Without a
// connection it drops events silently.
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher connects to url. An empty url or a failed connect
// yields a disabled publisher.
func NewNATSPublisher(url string, log logrus.FieldLogger) *NATSPublisher {
	if url == "" {
		log.Info("nats url not set, post events disabled")
		return &NATSPublisher{}
	}

	conn, err := nats.Connect(url,
		nats.Name("learnit-service"),
		nats.Timeout(5*time.Second),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(10),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.WithError(err).Warn("nats disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Info("nats reconnected")
		}),
	)
	if err != nil {
		log.WithError(err).Warn("nats unreachable, post events disabled")
		return &NATSPublisher{}
	}

	log.WithField("url", conn.ConnectedUrlRedacted()).Info("connected to nats")
	return NewNATSPublisherWithConn(conn)
}

func NewNATSPublisherWithConn(conn *nats.Conn) *NATSPublisher {
	return &NATSPublisher{conn: conn}
}

func (p *NATSPublisher) PublishPostEvent(_ context.Context, event entities.PostEvent) error {
	if p.conn == nil {
		return nil
	}
	if !p.conn.IsConnected() {
		return nats.ErrConnectionClosed
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.conn.Publish(postSubjectPrefix+string(event.Type), data)
}

// Close drains pending messages before closing the connection.
func (p *NATSPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}
