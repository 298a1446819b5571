// services/notifier.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"minimind-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier pushes a short SMS/WhatsApp alert to the site owner when a new
// order lands. Like the order email, it is fire-and-forget: an unconfigured
// or failing Twilio account never affects the order response.
type Notifier struct {
	client     *twilio.RestClient
	adminPhone string
	enabled    bool
}

func NewNotifier() *Notifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	adminPhone := os.Getenv("ADMIN_PHONE_NUMBER")

	return &Notifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		adminPhone: adminPhone,
		enabled:    accountSid != "" && authToken != "" && adminPhone != "",
	}
}

func (n *Notifier) NotifyNewOrder(order models.Order) {
	if !n.enabled {
		log.Println("SMS notification for new order is not configured. Skipping.")
		return
	}

	body := fmt.Sprintf("New order %s: %s (%s) from %s <%s>",
		order.OrderID, order.PackageName, order.PackagePrice, order.Name, order.Email)

	// WhatsApp when the admin number is in E.164 format and a WhatsApp
	// sender is configured, plain SMS otherwise.
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)

	whatsappFrom := os.Getenv("TWILIO_WHATSAPP_NUMBER")
	if strings.HasPrefix(n.adminPhone, "+") && whatsappFrom != "" {
		params.SetTo("whatsapp:" + n.adminPhone)
		params.SetFrom("whatsapp:" + whatsappFrom)
	} else {
		params.SetTo(n.adminPhone)
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send order SMS to %s: %v", n.adminPhone, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Order SMS sent to %s, SID: %s", n.adminPhone, *resp.Sid)
	} else {
		log.Printf("Order SMS sent to %s, but no SID returned", n.adminPhone)
	}
}
