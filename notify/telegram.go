// Package notify pushes a Telegram message to the restaurant admin chat
// whenever an order is created. Notification failures are logged, never
// surfaced to the customer flow.
package notify

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"storefront/models"
	"storefront/services"
)

type Notifier struct {
	api         *tgbotapi.BotAPI
	adminChatID int64
}

// New connects the notifier bot. Returns nil (notifications disabled) when
// no token is configured.
func New(token string, adminChatID int64) (*Notifier, error) {
	if token == "" || adminChatID == 0 {
		return nil, nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Notifier{api: api, adminChatID: adminChatID}, nil
}

// OrderCreated sends the new-order card to the admin chat.
func (n *Notifier) OrderCreated(orderID int64, input models.CreateOrderInput, items []models.OrderItemInput) {
	if n == nil {
		return
	}
	msg := tgbotapi.NewMessage(n.adminChatID, services.NewOrderMessage(orderID, input, items))
	if _, err := n.api.Send(msg); err != nil {
		log.Printf("order notify error: %v", err)
	}
}
