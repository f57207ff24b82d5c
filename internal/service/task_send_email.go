package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbank/finbank-api/internal/adapter"
	"github.com/finbank/finbank-api/internal/queue"
	"github.com/finbank/finbank-api/models"
)

type sendEmailTask struct {
	mailer adapter.Mailer
}

// NewSendEmailTask returns the handler of queue.KindSendEmail jobs.
func NewSendEmailTask(mailer adapter.Mailer) TaskHandler {
	return &sendEmailTask{mailer: mailer}
}

func (t *sendEmailTask) Handle(ctx context.Context, job queue.Job) (any, error) {
	var msg models.EmailMessage
	if err := job.DecodePayload(&msg); err != nil {
		return nil, queue.Permanent(err)
	}

	err := t.mailer.Send(ctx, adapter.Mail{
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if errors.Is(err, adapter.ErrMailMissingRecipient) {
		return nil, queue.Permanent(err)
	}
	if err != nil {
		return nil, fmt.Errorf("error sending email: %w", err)
	}

	return map[string]int{"recipients": len(msg.To)}, nil
}
