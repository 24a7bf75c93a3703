// Package telegram sends dashboard digests through the Telegram Bot API.
// A digest carries the page title, its headline metrics, and its insights,
// formatted as MarkdownV2 and delivered with retry.
package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rewired-gh/ttareungi-insights/internal/dashboard"
	"github.com/rewired-gh/ttareungi-insights/internal/logger"
)

// maxMessageLength is the Telegram limit for one text message.
const maxMessageLength = 4096

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Client handles Telegram digests
type Client struct {
	bot            messageSender
	chatID         int64
	maxRetries     int
	retryDelayBase time.Duration
}

// NewClient creates a new Telegram client
func NewClient(botToken, chatID string, maxRetries int, retryDelayBase time.Duration) (*Client, error) {
	chatIDInt, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat ID: %w", err)
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	return newClient(bot, chatIDInt, maxRetries, retryDelayBase), nil
}

func newClient(bot messageSender, chatID int64, maxRetries int, retryDelayBase time.Duration) *Client {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if retryDelayBase <= 0 {
		retryDelayBase = time.Second
	}
	return &Client{
		bot:            bot,
		chatID:         chatID,
		maxRetries:     maxRetries,
		retryDelayBase: retryDelayBase,
	}
}

// SendReport sends the digest of one dashboard page
func (c *Client) SendReport(report *dashboard.Report) error {
	if report == nil {
		return fmt.Errorf("cannot send a nil report")
	}
	msg := tgbotapi.NewMessage(c.chatID, formatReport(report))
	msg.ParseMode = tgbotapi.ModeMarkdownV2

	var lastErr error
	for i := 0; i < c.maxRetries; i++ {
		_, err := c.bot.Send(msg)
		if err == nil {
			logger.Info("Sent %s digest to Telegram (report %s)", report.Page, report.ID)
			return nil
		}
		lastErr = err
		logger.Warn("Telegram send attempt %d/%d failed: %v", i+1, c.maxRetries, err)
		if i < c.maxRetries-1 {
			time.Sleep(c.retryDelayBase * time.Duration(i+1))
		}
	}

	return fmt.Errorf("failed to send message after %d retries: %w", c.maxRetries, lastErr)
}

// formatReport formats a report into a MarkdownV2 digest. Sections that would
// push the message past the Telegram limit are dropped.
func formatReport(report *dashboard.Report) string {
	var sb strings.Builder

	sb.WriteString("🚲 *" + escapeMarkdownV2(report.Title) + "*\n")
	sb.WriteString("📅 " + escapeMarkdownV2(report.GeneratedAt.Format("2006-01-02 15:04 MST")) + "\n\n")

	for _, m := range report.Metrics {
		line := fmt.Sprintf("• %s: *%s*", escapeMarkdownV2(m.Label), escapeMarkdownV2(m.Value))
		if m.Note != "" {
			line += " _" + escapeMarkdownV2(m.Note) + "_"
		}
		if !appendLine(&sb, line) {
			return sb.String()
		}
	}

	if len(report.Insights) > 0 {
		if !appendLine(&sb, "\n💡 *Insights*") {
			return sb.String()
		}
		for i, insight := range report.Insights {
			if !appendLine(&sb, fmt.Sprintf("%d\\. %s", i+1, escapeMarkdownV2(insight))) {
				return sb.String()
			}
		}
	}

	return sb.String()
}

func appendLine(sb *strings.Builder, line string) bool {
	if len([]rune(sb.String()))+len([]rune(line))+1 > maxMessageLength {
		return false
	}
	sb.WriteString(line)
	sb.WriteString("\n")
	return true
}

// escapeMarkdownV2 escapes special characters for Telegram MarkdownV2
func escapeMarkdownV2(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, char := range text {
		switch char {
		case '\\', '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			sb.WriteRune('\\')
		}
		sb.WriteRune(char)
	}
	return sb.String()
}
