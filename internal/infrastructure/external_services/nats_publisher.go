package external_services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
	"github.com/mikiasgoitom/PetLikes/internal/domain/entity"
)

// LikeCountSubject is the subject a post's counter changes are published on.
func LikeCountSubject(postID string) string { return "likes." + postID }

// NATSCountPublisher broadcasts counter changes to live subscribers.
type NATSCountPublisher struct {
	nc *nats.Conn
}

func NewNATSCountPublisher(nc *nats.Conn) *NATSCountPublisher {
	return &NATSCountPublisher{nc: nc}
}

var _ contract.ILikeCountPublisher = (*NATSCountPublisher)(nil)

func (p *NATSCountPublisher) PublishLikeCount(ctx context.Context, evt entity.LikeCountChanged) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal like count event: %w", err)
	}
	if err := p.nc.Publish(LikeCountSubject(evt.PostID), data); err != nil {
		return fmt.Errorf("publish like count: %w", err)
	}
	return nil
}

// ConnectNATS dials url with a client name; reconnects are handled by the client.
func ConnectNATS(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Name("pet-likes"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return nc, nil
}
