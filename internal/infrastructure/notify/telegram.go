package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"denance.backend/internal/domain/entities"
)

const sendMessageTimeout = 10 * time.Second

// TelegramNotifier pushes operator alerts to a Telegram chat. All sends are
// best-effort; callers must treat failures as log-only.
type TelegramNotifier struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
}

// NewTelegramNotifier creates a Telegram notifier for the given bot and chat
func NewTelegramNotifier(botToken, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  "https://api.telegram.org",
		client:   &http.Client{Timeout: sendMessageTimeout},
	}
}

// SetBaseURL overrides the Telegram API endpoint (used for testing)
func (n *TelegramNotifier) SetBaseURL(url string) {
	n.baseURL = url
}

// NotifyWithdrawal reports a new withdrawal request to the operator channel
func (n *TelegramNotifier) NotifyWithdrawal(ctx context.Context, w *entities.Withdrawal) error {
	text := fmt.Sprintf(
		"🔔 New Withdrawal Request\n\n"+
			"👤 Account Name: %s\n"+
			"🏦 Bank: %s\n"+
			"💳 Account Number: %s\n"+
			"💰 Amount: %s %s\n"+
			"🔑 Activation Code: %s\n"+
			"⏰ Time: %s",
		w.AccountName, w.BankName, w.AccountNumber,
		w.Amount.String(), w.Currency, w.ActivationCode,
		time.Now().UTC().Format(time.RFC3339),
	)
	return n.send(ctx, text)
}

// NotifyPurchase reports a new activation purchase submission
func (n *TelegramNotifier) NotifyPurchase(ctx context.Context, p *entities.ActivationPurchase) error {
	screenshot := "Not provided"
	if p.PaymentScreenshotURL.Valid && p.PaymentScreenshotURL.String != "" {
		screenshot = "Provided"
	}
	text := fmt.Sprintf(
		"🔔 New Activation Purchase Request\n\n"+
			"👤 Sender Name: %s\n"+
			"📧 Email: %s\n"+
			"📸 Payment Screenshot: %s\n"+
			"⏰ Time: %s",
		p.SenderName, p.SenderEmail, screenshot,
		time.Now().UTC().Format(time.RFC3339),
	)
	return n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) error {
	if n.botToken == "" || n.chatID == "" {
		return fmt.Errorf("telegram bot token or chat ID not configured")
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id": n.chatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram API error: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
