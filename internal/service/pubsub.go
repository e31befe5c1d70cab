package service

import (
	"context"

	"github.com/anmicius0/nexus-cli/internal/client"
	"github.com/anmicius0/nexus-cli/internal/utils"
	"go.uber.org/zap"
)

// PubSubFlag selects one of a repository's pub-sub switches.
type PubSubFlag int

const (
	FlagPublish PubSubFlag = iota
	FlagSubscribe
)

func (f PubSubFlag) String() string {
	if f == FlagSubscribe {
		return "subscribe"
	}
	return "publish"
}

// PubSubToggle flips a single pub-sub switch, keeping the others.
type PubSubToggle struct {
	pubsub client.PubSubClient
}

// NewPubSubToggle creates a PubSubToggle over pubsub.
func NewPubSubToggle(pubsub client.PubSubClient) *PubSubToggle {
	return &PubSubToggle{pubsub: pubsub}
}

// Set reads the repository's state, sets flag to on and writes it back when
// it changed.
func (p *PubSubToggle) Set(ctx context.Context, repositoryID string, flag PubSubFlag, on bool) (*client.PubSub, error) {
	state, err := p.pubsub.PubSub(ctx, repositoryID)
	if err != nil {
		return nil, err
	}
	state.RepositoryID = repositoryID

	current := &state.Publish
	if flag == FlagSubscribe {
		current = &state.Subscribe
	}
	if *current == on {
		utils.WithComponent("pub_sub").Debug("Pub-sub flag unchanged, skipping update",
			zap.String(utils.FieldID, repositoryID),
			zap.String("flag", flag.String()))
		return state, nil
	}
	*current = on
	if err := p.pubsub.SetPubSub(ctx, *state); err != nil {
		return nil, err
	}
	return state, nil
}
