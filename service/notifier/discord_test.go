package notifier

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftescrow/base/backoff"
	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/domain/listing"
)

type fakeSender struct {
	fails  int
	embeds chan *discordgo.MessageEmbed
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	if f.fails > 0 {
		f.fails--
		return nil, errors.New("discord unavailable")
	}
	f.embeds <- embed
	return &discordgo.Message{ChannelID: channelID}, nil
}

type discordSuite struct {
	suite.Suite

	sender *fakeSender
	im     *discordImpl
}

func TestDiscordSuite(t *testing.T) {
	suite.Run(t, new(discordSuite))
}

func (s *discordSuite) SetupTest() {
	s.sender = &fakeSender{embeds: make(chan *discordgo.MessageEmbed, 1)}
	svc, err := NewDiscord(DiscordConfig{
		ChannelId:   "channel",
		ExplorerUrl: "https://explorer.test/",
		Workers:     1,
		Sender:      s.sender,
	})
	s.Require().NoError(err)
	s.im = svc.(*discordImpl)
	s.im.newBackoff = func() *backoff.Backoff {
		return backoff.NewLinear(time.Millisecond, 5*time.Millisecond)
	}
}

func (s *discordSuite) TearDownTest() {
	s.im.Close()
}

func (s *discordSuite) waitEmbed() *discordgo.MessageEmbed {
	select {
	case e := <-s.sender.embeds:
		return e
	case <-time.After(3 * time.Second):
		s.FailNow("no embed sent")
	}
	return nil
}

func (s *discordSuite) TestNotifySold() {
	s.im.Notify(ctx.Background(), Event{
		Type: listing.ActivityBuy,
		Listing: listing.Listing{
			Address:  "listing",
			Seller:   "seller",
			Buyer:    "buyer",
			NftMint:  "mint",
			Price:    2_500_000_000,
			ClosedAt: 1700000000,
		},
		TxHash: "tx",
	})

	e := s.waitEmbed()
	s.Equal("Item sold!", e.Title)
	s.Equal("https://explorer.test/listings/listing", e.URL)
	s.Equal("2.5 SOL", e.Fields[2].Value)
	s.Equal("buyer", e.Fields[len(e.Fields)-1].Value)
}

func (s *discordSuite) TestNotifyRetries() {
	s.sender.fails = 2
	s.im.Notify(ctx.Background(), Event{Type: listing.ActivityCancel, Listing: listing.Listing{Address: "listing"}})

	e := s.waitEmbed()
	s.Equal("Listing cancelled", e.Title)
}

func TestNoop(t *testing.T) {
	n := NewNoop()
	n.Notify(ctx.Background(), Event{})
	n.Close()
}
