package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/nftescrow/base/backoff"
	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/goroutine"
	"github.com/x-xyz/nftescrow/base/log"
	"github.com/x-xyz/nftescrow/base/metrics"
	pricefomatter "github.com/x-xyz/nftescrow/base/price_fomatter"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/listing"
)

const (
	sendAttempts    = 3
	scheduleTimeout = 3 * time.Second
	sendTimeout     = 30 * time.Second
)

var met = metrics.New("notifier")

// EmbedSender is the part of *discordgo.Session used for publishing
type EmbedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type DiscordConfig struct {
	BotKey      string
	ChannelId   string
	ExplorerUrl string
	Workers     int
	// Sender overrides the discord session, mostly for tests
	Sender EmbedSender
}

type discordImpl struct {
	sender      EmbedSender
	channelId   string
	explorerUrl string
	pool        *goroutines.Pool
	newBackoff  func() *backoff.Backoff
}

func NewDiscord(cfg DiscordConfig) (Service, error) {
	sender := cfg.Sender
	if sender == nil {
		session, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
		if err != nil {
			return nil, err
		}
		sender = session
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}

	return &discordImpl{
		sender:      sender,
		channelId:   cfg.ChannelId,
		explorerUrl: strings.TrimRight(cfg.ExplorerUrl, "/"),
		pool:        goroutines.NewPool(workers, goroutines.WithTaskQueueLength(1024)),
		newBackoff: func() *backoff.Backoff {
			return backoff.NewExponential(500*time.Millisecond, 10*time.Second)
		},
	}, nil
}

func (im *discordImpl) Notify(c ctx.Ctx, evt Event) {
	embed := im.embed(evt)
	c = ctx.WithLogField(c, "txHash", evt.TxHash)

	err := im.pool.ScheduleWithTimeout(scheduleTimeout, func() {
		goroutine.Protect(func() { im.send(c, evt, embed) }, goroutine.WithName("notifier.discord"))
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "listing": evt.Listing.Address}).Error("failed to ScheduleWithTimeout")
	}
}

func (im *discordImpl) send(c ctx.Ctx, evt Event, embed *discordgo.MessageEmbed) {
	detached := ctx.Background()
	detached.Logger = c.Logger
	sendCtx, cancel := ctx.WithTimeout(detached, sendTimeout)
	defer cancel()

	if err := backoff.Retry(sendCtx, im.newBackoff(), sendAttempts, func() error {
		_, err := im.sender.ChannelMessageSendEmbed(im.channelId, embed)
		return err
	}); err != nil {
		met.BumpSum("send", 1, "type", string(evt.Type), "result", "fail")
		c.WithFields(log.Fields{"err": err, "listing": evt.Listing.Address}).Error("ChannelMessageSendEmbed failed")
		return
	}
	met.BumpSum("send", 1, "type", string(evt.Type), "result", "ok")
}

func (im *discordImpl) Close() {
	im.pool.Release()
}

func (im *discordImpl) embed(evt Event) *discordgo.MessageEmbed {
	l := evt.Listing
	price := pricefomatter.FormatSol(domain.Lamports(l.Price)) + " SOL"

	msg := &discordgo.MessageEmbed{
		Timestamp: time.Unix(l.CreatedAt, 0).UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Mint", Value: string(l.NftMint)},
			{Name: "Seller", Value: string(l.Seller)},
			{Name: "Price", Value: price, Inline: true},
			{Name: "Listing", Value: string(l.Address)},
		},
	}

	switch evt.Type {
	case listing.ActivityList:
		msg.Title = "New listing!"
		msg.Color = 0x3498db
	case listing.ActivityBuy:
		msg.Title = "Item sold!"
		msg.Color = 0x2ecc71
		msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: "Buyer", Value: string(l.Buyer)})
	case listing.ActivityCancel:
		msg.Title = "Listing cancelled"
		msg.Color = 0x95a5a6
	}
	if l.ClosedAt > 0 {
		msg.Timestamp = time.Unix(l.ClosedAt, 0).UTC().Format(time.RFC3339)
	}

	if len(im.explorerUrl) > 0 {
		msg.URL = fmt.Sprintf("%s/listings/%s", im.explorerUrl, l.Address)
	}
	return msg
}
