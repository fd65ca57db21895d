package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/platform/logger"
	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

type Mailer struct {
	host     string
	port     int
	from     string
	password string
}

func NewMailer(host string, port int, from, password string) *Mailer {
	return &Mailer{host: host, port: port, from: from, password: password}
}

func (m *Mailer) SendPropertyCreatedEmail(toEmail string, property *domain.Property) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "New Property Registered")
	msg.SetBody("text/plain", fmt.Sprintf(
		"A new property has been registered in the catalog.\n\nAddress: %s\nPrice: R$ %.2f\nID: %s\n",
		property.Address, property.Price, property.ID))

	d := gomail.NewDialer(m.host, m.port, m.from, m.password)
	return d.DialAndSend(msg)
}

// MailListener emails the configured recipient whenever a property is
// registered. Removal and price-change events are deliberately ignored.
type MailListener struct {
	mailer  *Mailer
	toEmail string
	logger  *logger.Logger
}

func NewMailListener(mailer *Mailer, toEmail string, log *logger.Logger) *MailListener {
	return &MailListener{mailer: mailer, toEmail: toEmail, logger: log}
}

func (l *MailListener) OnPropertyCreated(property *domain.Property) {
	if err := l.mailer.SendPropertyCreatedEmail(l.toEmail, property); err != nil {
		l.logger.Error("MailListener.OnPropertyCreated: failed to send mail",
			"property_id", property.ID, "error", err.Error())
	}
}

func (l *MailListener) OnPropertyRemoved(property *domain.Property) {}

func (l *MailListener) OnPriceChanged(property *domain.Property, oldPrice, newPrice float64) {}
