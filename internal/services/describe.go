package services

import (
	"context"
	"fmt"

	"github.com/desertthunder/tubestuff/internal/models"
	"github.com/desertthunder/tubestuff/internal/resolver"
	"github.com/desertthunder/tubestuff/internal/shared"
)

// Description is the metadata behind a resolved reference. Exactly one of Channel or Video is set.
type Description struct {
	Reference resolver.Reference `json:"reference"`
	Channel   *models.Channel    `json:"channel,omitempty"`
	Video     *models.Video      `json:"video,omitempty"`
}

// Describe fetches the metadata a resolved reference points at.
func Describe(ctx context.Context, svc MetadataService, ref resolver.Reference) (*Description, error) {
	if !ref.Known() {
		return nil, shared.ErrUnknownReference
	}

	d := &Description{Reference: ref}

	switch ref.Kind {
	case resolver.Channel:
		channel, err := svc.Channel(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		d.Channel = channel
	case resolver.Video:
		videos, err := svc.Videos(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		if len(videos) == 0 {
			return nil, fmt.Errorf("%w: %s", shared.ErrVideoNotFound, ref.ID)
		}
		d.Video = &videos[0]
	}

	return d, nil
}
