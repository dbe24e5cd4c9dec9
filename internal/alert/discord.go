package alert

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/deartime/deartime-BE/internal/util"
)

// DiscordAlerter posts operational alerts to a Discord channel. It backs the
// capsule tracker's lost-delivery reports so they reach an operator instead of
// only the logs.
type DiscordAlerter struct {
	discord   *discordgo.Session
	channelID string
}

func NewDiscordAlerter(config util.Config) (*DiscordAlerter, error) {
	discord, err := discordgo.New("Bot " + config.DiscordBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &DiscordAlerter{
		discord:   discord,
		channelID: config.DiscordChannelID,
	}, nil
}

func (a *DiscordAlerter) Send(message string) error {
	_, err := a.discord.ChannelMessageSend(a.channelID, message)
	return err
}
