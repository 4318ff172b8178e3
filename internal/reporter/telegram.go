package reporter

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-crystal-scraper/internal/models"
)

// summary messages list at most this many jobs before truncating
const maxSummaryJobs = 10

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(token string, chatID int64) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	msg.DisableWebPagePreview = true
	_, err := t.bot.Send(msg)
	return err
}

// SendSummary posts a short digest of one scrape run.
func (t *TelegramReporter) SendSummary(res *models.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "🔎 <b>%s</b> — %d jobs\n", escape(res.Keyword), res.TotalJobs)

	for i, job := range res.Jobs {
		if i >= maxSummaryJobs {
			fmt.Fprintf(&b, "… and %d more\n", res.TotalJobs-maxSummaryJobs)
			break
		}
		fmt.Fprintf(&b, "• <a href=%q>%s</a> @ %s [%s]\n",
			job.URL, escape(job.Title), escape(job.Company), job.Source)
	}

	return t.SendMessage(b.String())
}

func (t *TelegramReporter) SendError(errReq error) error {
	return t.SendMessage(fmt.Sprintf("⚠️ <b>Scrape failed</b>:\n%s", escape(errReq.Error())))
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
