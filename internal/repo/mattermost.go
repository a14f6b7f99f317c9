package repo

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"IcingaMattermostBot/internal/config"
	ent "IcingaMattermostBot/internal/entity"

	"github.com/go-logr/logr"
	"github.com/mattermost/mattermost/server/public/model"
)

var (
	ErrAuth            = errors.New("mattermost authentication failed")
	ErrChannelNotFound = errors.New("mattermost channel not found")
	ErrCreatePost      = errors.New("mattermost post creation failed")
)

// ChatAPI is the part of model.Client4 the sender uses.
type ChatAPI interface {
	SetToken(token string)
	GetMe(ctx context.Context, etag string) (*model.User, *model.Response, error)
	GetChannelByNameForTeamName(ctx context.Context, channelName, teamName string, etag string) (*model.Channel, *model.Response, error)
	CreatePost(ctx context.Context, post *model.Post) (*model.Post, *model.Response, error)
}

type MattermostSender struct {
	newClient func() ChatAPI
	token     string
	team      string
	channel   string
	log       logr.Logger
}

func NewMattermostSender(cfg config.MattermostConfig, log logr.Logger) (*MattermostSender, error) {
	serverURL, err := cfg.ServerURL()
	if err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	newClient := func() ChatAPI {
		c := model.NewAPIv4Client(serverURL)
		c.HTTPClient = &http.Client{Timeout: timeout}
		return c
	}
	return newMattermostSender(newClient, cfg, log), nil
}

func newMattermostSender(newClient func() ChatAPI, cfg config.MattermostConfig, log logr.Logger) *MattermostSender {
	return &MattermostSender{
		newClient: newClient,
		token:     cfg.Token,
		team:      cfg.Team,
		channel:   cfg.Channel,
		log:       log,
	}
}

// Send opens a fresh session, resolves the channel and creates one post.
func (s *MattermostSender) Send(ctx context.Context, payload ent.MessagePayload) error {
	client, channelID, err := s.connect(ctx)
	if err != nil {
		return err
	}

	post := buildPost(channelID, payload)
	created, _, err := client.CreatePost(ctx, post)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreatePost, err)
	}
	s.log.V(1).Info("Created post", "postID", created.Id, "channelID", channelID)
	return nil
}

func (s *MattermostSender) connect(ctx context.Context) (ChatAPI, string, error) {
	client := s.newClient()
	client.SetToken(s.token)

	me, _, err := client.GetMe(ctx, "")
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrAuth, err)
	}
	s.log.V(1).Info("Authenticated to mattermost", "user", me.Username)

	channel, resp, err := client.GetChannelByNameForTeamName(ctx, s.channel, s.team, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, "", fmt.Errorf("%w: %s/%s", ErrChannelNotFound, s.team, s.channel)
		}
		return nil, "", fmt.Errorf("resolving channel %s/%s: %w", s.team, s.channel, err)
	}
	return client, channel.Id, nil
}

// buildPost lifts the payload's top-level message onto the post itself and
// carries the attachment in props.
func buildPost(channelID string, payload ent.MessagePayload) *model.Post {
	post := &model.Post{
		ChannelId: channelID,
		Message:   payload.Message,
	}
	post.AddProp("attachments", []*model.SlackAttachment{
		{
			Color: payload.Attachment.Color,
			Text:  payload.Attachment.Text,
		},
	})
	return post
}
