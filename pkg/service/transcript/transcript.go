package transcript

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/goerr/v2"
	"github.com/santara-lab/santara/pkg/domain/interfaces"
	"github.com/santara-lab/santara/pkg/domain/model/ticket"
	"github.com/santara-lab/santara/pkg/domain/types"
	"github.com/santara-lab/santara/pkg/utils/logging"
	"github.com/slack-go/slack"
)

const (
	defaultPageSize   = 100
	defaultChunkLimit = 1900
	defaultChunkDelay = 800 * time.Millisecond
)

// NameResolver maps a member ID to a readable name.
type NameResolver func(ctx context.Context, userID types.UserID) string

// Builder fetches a closed ticket's channel history and posts a readable
// transcript to the archive channel.
type Builder struct {
	client     interfaces.SlackClient
	resolve    NameResolver
	pageSize   int
	chunkLimit int
	chunkDelay time.Duration
}

type Option func(*Builder)

func WithPageSize(n int) Option {
	return func(b *Builder) { b.pageSize = n }
}

func WithChunkLimit(n int) Option {
	return func(b *Builder) { b.chunkLimit = n }
}

func WithChunkDelay(d time.Duration) Option {
	return func(b *Builder) { b.chunkDelay = d }
}

func New(client interfaces.SlackClient, resolve NameResolver, opts ...Option) *Builder {
	b := &Builder{
		client:     client,
		resolve:    resolve,
		pageSize:   defaultPageSize,
		chunkLimit: defaultChunkLimit,
		chunkDelay: defaultChunkDelay,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FetchMessages pulls the complete channel history, newest page first,
// and returns it oldest first. Pagination walks backward by passing the
// oldest timestamp of each page as the next Latest cursor.
func (x *Builder) FetchMessages(ctx context.Context, channelID types.ChannelID) ([]slack.Message, error) {
	var all []slack.Message
	latest := ""

	for {
		resp, err := x.client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
			ChannelID: channelID.String(),
			Limit:     x.pageSize,
			Latest:    latest,
			Inclusive: false,
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch channel history",
				goerr.V("channel_id", channelID),
				goerr.V("fetched", len(all)))
		}

		// Slack may return short pages with more history remaining, so the
		// cursor walk trusts has_more and stops on an empty page.
		all = append(all, resp.Messages...)
		if len(resp.Messages) == 0 || !resp.HasMore {
			break
		}
		latest = resp.Messages[len(resp.Messages)-1].Timestamp
	}

	sort.SliceStable(all, func(i, j int) bool {
		return messageTime(all[i]).Before(messageTime(all[j]))
	})
	return all, nil
}

func messageTime(msg slack.Message) time.Time {
	parts := strings.SplitN(msg.Timestamp, ".", 2)
	sec, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}
	}
	var micro int64
	if len(parts) == 2 {
		micro, _ = strconv.ParseInt(parts[1], 10, 64)
	}
	return time.Unix(sec, micro*1000).UTC()
}

// Render formats the transcript body: metadata header, one line per
// message, and a participant summary footer.
func (x *Builder) Render(ctx context.Context, tk *ticket.Ticket, messages []slack.Message) string {
	var sb strings.Builder

	opener := x.resolve(ctx, tk.UserID)
	closer := opener
	if tk.ClosedBy != "" {
		closer = x.resolve(ctx, tk.ClosedBy)
	}

	sb.WriteString("Ticket Transcript\n")
	sb.WriteString("=================\n")
	fmt.Fprintf(&sb, "Ticket:   %s (%s)\n", tk.ID.Short(), tk.Category)
	fmt.Fprintf(&sb, "Opened by: %s at %s\n", opener, tk.CreatedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	if tk.ClosedAt != nil {
		fmt.Fprintf(&sb, "Closed by: %s at %s\n", closer, tk.ClosedAt.UTC().Format("2006-01-02 15:04:05 MST"))
		fmt.Fprintf(&sb, "Duration:  %s\n", humanizeDuration(tk.Duration()))
	}
	if tk.CloseReason != "" {
		fmt.Fprintf(&sb, "Reason:    %s\n", tk.CloseReason)
	}
	sb.WriteString("\n")

	participants := map[types.UserID]bool{}
	count := 0
	for _, msg := range messages {
		// Join and leave notices carry no conversation content.
		if msg.SubType == "channel_join" || msg.SubType == "channel_leave" {
			continue
		}

		name := msg.User
		if msg.User != "" {
			userID := types.UserID(msg.User)
			participants[userID] = true
			name = x.resolve(ctx, userID)
		} else if msg.Username != "" {
			name = msg.Username
		}
		if msg.BotID != "" {
			name += " [bot]"
		}

		ts := messageTime(msg)
		fmt.Fprintf(&sb, "[%s] %s: %s\n", ts.Format("15:04:05"), name, msg.Text)
		for _, f := range msg.Files {
			fmt.Fprintf(&sb, "    [file: %s %s]\n", f.Name, f.URLPrivate)
		}
		for _, att := range msg.Attachments {
			if att.Text != "" {
				fmt.Fprintf(&sb, "    > %s\n", att.Text)
			}
			for _, field := range att.Fields {
				fmt.Fprintf(&sb, "    > %s: %s\n", field.Title, field.Value)
			}
		}
		count++
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%d messages, %d participants\n", count, len(participants))
	return sb.String()
}

func humanizeDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	ref := time.Unix(0, 0)
	return humanize.RelTime(ref, ref.Add(d), "", "")
}

// SplitLines breaks text into chunks of at most limit characters without
// splitting inside a line. A single line longer than the limit becomes
// its own oversized chunk rather than being cut mid-line.
func SplitLines(text string, limit int) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	var chunks []string
	var current strings.Builder

	for _, line := range lines {
		needed := len(line)
		if current.Len() > 0 {
			needed++ // joining newline
		}
		if current.Len() > 0 && current.Len()+needed > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

// Publish builds and delivers the transcript. An empty archive channel
// disables transcripts entirely and is not an error.
func (x *Builder) Publish(ctx context.Context, archiveChannel types.ChannelID, tk *ticket.Ticket) error {
	if archiveChannel == types.EmptyChannelID {
		logging.From(ctx).Debug("no archive channel configured, skipping transcript",
			"ticket_id", tk.ID)
		return nil
	}

	messages, err := x.FetchMessages(ctx, tk.ChannelID)
	if err != nil {
		return err
	}

	body := x.Render(ctx, tk, messages)
	chunks := SplitLines(body, x.chunkLimit)

	summary := fmt.Sprintf("Transcript for ticket `%s` (%s), opened by %s",
		tk.ID.Short(), tk.Category, x.resolve(ctx, tk.UserID))
	if _, _, err := x.client.PostMessageContext(ctx, archiveChannel.String(),
		slack.MsgOptionText(summary, false)); err != nil {
		return goerr.Wrap(err, "failed to post transcript summary",
			goerr.V("channel_id", archiveChannel))
	}

	for i, chunk := range chunks {
		if i > 0 && x.chunkDelay > 0 {
			select {
			case <-ctx.Done():
				return goerr.Wrap(ctx.Err(), "transcript delivery interrupted",
					goerr.V("delivered", i),
					goerr.V("total", len(chunks)))
			case <-time.After(x.chunkDelay):
			}
		}

		text := fmt.Sprintf("Part %d/%d\n```%s```", i+1, len(chunks), chunk)
		if _, _, err := x.client.PostMessageContext(ctx, archiveChannel.String(),
			slack.MsgOptionText(text, false)); err != nil {
			return goerr.Wrap(err, "failed to post transcript chunk",
				goerr.V("channel_id", archiveChannel),
				goerr.V("part", i+1),
				goerr.V("total", len(chunks)))
		}
	}

	return nil
}
