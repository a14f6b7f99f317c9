package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	ent "IcingaMattermostBot/internal/entity"
)

// StdoutSender prints the payload instead of delivering it.
type StdoutSender struct {
	out io.Writer
}

func NewStdoutSender(out io.Writer) *StdoutSender {
	return &StdoutSender{out: out}
}

func (s *StdoutSender) Send(_ context.Context, payload ent.MessagePayload) error {
	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}
	return nil
}
