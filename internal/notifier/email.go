package notifier

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"text/template"

	"github.com/gdg-garage/wedding-rsvp/internal/config"
	"github.com/wneessen/go-mail"
)

var textBody = template.Must(template.New("confirmation.txt").Parse(`Beste {{.FirstName}},

Bedankt voor je aanmelding voor onze bruiloft! We kijken ernaar uit je te zien.

Via de onderstaande link kun je je aanmelding bekijken en tot de deadline aanpassen:
{{.ManageURL}}

Je persoonlijke code is {{.Code}}.

Liefs,
Zhen & Ties Jan
`))

var htmlBody = htmltemplate.Must(htmltemplate.New("confirmation.html").Parse(`<!DOCTYPE html>
<html lang="nl">
<body>
<p>Beste {{.FirstName}},</p>
<p>Bedankt voor je aanmelding voor onze bruiloft! We kijken ernaar uit je te zien.</p>
<p>Via <a href="{{.ManageURL}}">deze link</a> kun je je aanmelding bekijken en tot de deadline aanpassen.</p>
<p>Je persoonlijke code is <strong>{{.Code}}</strong>.</p>
<p>Liefs,<br>Zhen &amp; Ties Jan</p>
</body>
</html>
`))

type MailSender struct {
	client  *mail.Client
	from    string
	subject string
}

func NewMailSender(cfg *config.Config) (*MailSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.MailPort),
		mail.WithTLSPolicy(mail.NoTLS),
	}
	if cfg.MailUseTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	if cfg.MailUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.MailUsername),
			mail.WithPassword(cfg.MailPassword),
		)
	}

	client, err := mail.NewClient(cfg.MailServer, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating mail client: %w", err)
	}

	return &MailSender{
		client:  client,
		from:    cfg.ContactEmail,
		subject: cfg.MailSubject,
	}, nil
}

func (s *MailSender) SendConfirmation(ctx context.Context, c Confirmation) error {
	msg, err := s.Message(c)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending confirmation to %s: %w", c.Email, err)
	}
	return nil
}

// Message builds the confirmation mail with a plain text and an HTML part.
func (s *MailSender) Message(c Confirmation) (*mail.Msg, error) {
	msg := mail.NewMsg(mail.WithCharset(mail.CharsetUTF8))
	if err := msg.From(s.from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(c.Email); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(s.subject)

	var text, html bytes.Buffer
	if err := textBody.Execute(&text, c); err != nil {
		return nil, err
	}
	if err := htmlBody.Execute(&html, c); err != nil {
		return nil, err
	}
	msg.SetBodyString(mail.TypeTextPlain, text.String())
	msg.AddAlternativeString(mail.TypeTextHTML, html.String())

	return msg, nil
}
