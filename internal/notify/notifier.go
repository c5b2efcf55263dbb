package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
	"github.com/osse101/PromoAdmin_Go/internal/metrics"
	"github.com/osse101/PromoAdmin_Go/internal/worker"
)

// WebhookExecutor is the part of *discordgo.Session used to post messages
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Enqueuer runs delivery jobs off the request path
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Notifier posts destructive admin actions to a Discord channel webhook.
// A nil *Notifier is valid and does nothing.
type Notifier struct {
	executor    WebhookExecutor
	webhookID   string
	token       string
	environment string
	queue       Enqueuer
}

// New creates a notifier for webhookURL. An empty URL returns a nil notifier.
func New(webhookURL, environment string, queue Enqueuer) (*Notifier, error) {
	if strings.TrimSpace(webhookURL) == "" {
		logger.FromContext(context.Background()).Info(LogMsgNotifierDisabled)
		return nil, nil
	}

	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Client.Timeout = DefaultTimeout

	return NewWithExecutor(session, webhookURL, environment, queue)
}

// NewWithExecutor creates a notifier posting through executor
func NewWithExecutor(executor WebhookExecutor, webhookURL, environment string, queue Enqueuer) (*Notifier, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	return &Notifier{
		executor:    executor,
		webhookID:   id,
		token:       token,
		environment: environment,
		queue:       queue,
	}, nil
}

// ParseWebhookURL extracts the webhook id and token from a Discord webhook URL
// such as https://discord.com/api/webhooks/{id}/{token}.
func ParseWebhookURL(raw string) (string, string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return "", "", fmt.Errorf("%s: %q", ErrMsgInvalidWebhookURL, raw)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, p := range parts {
		if p == "webhooks" && i+2 < len(parts) {
			id, token := parts[i+1], parts[i+2]
			if id != "" && token != "" {
				return id, token, nil
			}
		}
	}
	return "", "", fmt.Errorf("%s: %q", ErrMsgInvalidWebhookURL, raw)
}

// Subscribe registers for every destructive admin action
func (n *Notifier) Subscribe(bus event.Bus) {
	if n == nil {
		return
	}
	for _, t := range domain.DestructiveEventTypes {
		bus.Subscribe(event.Type(t), n.handleEvent)
	}
}

func (n *Notifier) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.ActionPayload(evt)
	if err != nil {
		log.Warn(LogMsgPayloadInvalid, "type", evt.Type)
		return nil
	}

	params := n.BuildMessage(payload)
	send := worker.JobFunc{
		JobName: JobName,
		Fn: func(jobCtx context.Context) error {
			return n.Send(jobCtx, params)
		},
	}

	if n.queue == nil {
		return send.Process(context.WithoutCancel(ctx))
	}
	if !n.queue.TryEnqueue(send) {
		metrics.NotificationsSent.WithLabelValues(metrics.OutcomeSkipped).Inc()
		log.Warn(LogMsgNotifyDropped, "type", evt.Type)
	}
	return nil
}

// Send posts one message to the webhook
func (n *Notifier) Send(ctx context.Context, params *discordgo.WebhookParams) error {
	log := logger.FromContext(ctx)
	_, err := n.executor.WebhookExecute(n.webhookID, n.token, false, params, discordgo.WithContext(ctx))
	if err != nil {
		metrics.NotificationsSent.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Error(LogMsgNotifyFailed, "error", err)
		return err
	}
	metrics.NotificationsSent.WithLabelValues(metrics.OutcomeSucceeded).Inc()
	log.Info(LogMsgNotifySent)
	return nil
}

// BuildMessage renders an admin action as a Discord embed
func (n *Notifier) BuildMessage(p event.AdminActionPayloadV1) *discordgo.WebhookParams {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Actor", Value: clip(p.Actor), Inline: true},
		{Name: "Entity", Value: clip(p.EntityType), Inline: true},
	}
	if p.EntityID != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "ID", Value: clip(p.EntityID)})
	}
	if p.Summary != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Details", Value: clip(p.Summary)})
	}

	footer := FooterText
	if n.environment != "" {
		footer += " · " + n.environment
	}

	ts := time.Now().UTC()
	if p.Timestamp > 0 {
		ts = time.Unix(p.Timestamp, 0).UTC()
	}

	return &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{{
			Title:     "🗑️ " + ActionTitle(p.Action),
			Color:     ColorDestructive,
			Fields:    fields,
			Timestamp: ts.Format(time.RFC3339),
			Footer:    &discordgo.MessageEmbedFooter{Text: footer},
		}},
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	}
}

// ActionTitle turns an action type like "tapathon.taps_deleted" into "Tapathon taps deleted"
func ActionTitle(action string) string {
	s := strings.NewReplacer(".", " ", "_", " ").Replace(action)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func clip(s string) string {
	if s == "" {
		return "-"
	}
	if utf8.RuneCountInString(s) > MaxFieldLength {
		return string([]rune(s)[:MaxFieldLength-1]) + "…"
	}
	return s
}
