package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/albenaa/albenaa-api/internal/infra/queue"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	InboxTo  string
}

func NewEmailSender(host string, port int, user, password, from, inboxTo string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		InboxTo:  inboxTo,
	}
}

var inquiryTemplate = template.Must(template.New("inquiry").Parse(`
<h2>New {{.Kind}} inquiry</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
{{if .Source}}<p><strong>Source:</strong> {{.Source}}</p>{{end}}
{{if .Message}}<p>{{.Message}}</p>{{end}}
<p><small>Received {{.ReceivedAt.Format "2006-01-02 15:04"}}</small></p>
`))

// SendInquiryNotification emails the inquiry to the site inbox.
func (s *EmailSender) SendInquiryNotification(payload queue.NotificationPayload) error {
	var body bytes.Buffer
	if err := inquiryTemplate.Execute(&body, payload); err != nil {
		return fmt.Errorf("rendering notification template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.InboxTo)
	m.SetHeader("Reply-To", payload.Email)
	m.SetHeader("Subject", fmt.Sprintf("New inquiry from %s", payload.Name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending notification email: %w", err)
	}
	return nil
}
