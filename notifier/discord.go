package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// DiscordMessenger delivers digests to a Discord channel. Sending only uses
// the REST API, so the session does not need an open gateway connection.
type DiscordMessenger struct {
	session *discordgo.Session
}

// NewDiscordMessenger creates a messenger for the given bot token.
func NewDiscordMessenger(token string) (*DiscordMessenger, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return &DiscordMessenger{session: session}, nil
}

// Session exposes the underlying session for the admin-channel logger.
func (m *DiscordMessenger) Session() *discordgo.Session {
	return m.session
}

// SendDigest posts the digest to the channel.
func (m *DiscordMessenger) SendDigest(channelID, content string) error {
	_, err := m.session.ChannelMessageSend(channelID, content)
	return err
}
