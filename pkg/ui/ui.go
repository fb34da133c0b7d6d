// Package ui prints operator-facing feedback. Structured debug logging stays
// on zerolog; everything here is for the human running the tool.
package ui

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 Printer provides user-friendly feedback, mirroring each message into the
// structured log for debugging. A nil Printer is silent.
type Printer struct {
	log zerolog.Logger
}

// 🎯 New creates a printer bound to the context logger.
func New(ctx context.Context) *Printer {
	return &Printer{log: *zerolog.Ctx(ctx)}
}

// ✅ Success reports a completed operation.
func (p *Printer) Success(msg string) {
	if p == nil {
		return
	}
	pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
	p.log.Info().Msg(msg)
}

// ⚠️ Warning reports a non-fatal condition, like a cancelled transfer.
func (p *Printer) Warning(msg string) {
	if p == nil {
		return
	}
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(msg)
	p.log.Warn().Msg(msg)
}

// ❌ Error reports a failure.
func (p *Printer) Error(msg string, err error) {
	if p == nil {
		return
	}
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(msg)
	if err != nil {
		pterm.Error.Println(err)
	}
	p.log.Error().Err(err).Msg(msg)
}

// 📦 Info reports a state change, like the start of a transfer batch.
func (p *Printer) Info(msg string) {
	if p == nil {
		return
	}
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).Println(msg)
	p.log.Info().Msg(msg)
}

// 📝 Item reports per-item progress within a batch.
func (p *Printer) Item(current, total int, name string) {
	if p == nil {
		return
	}
	msg := fmt.Sprintf("[%d/%d] %s", current, total, name)
	pterm.Success.WithPrefix(pterm.Prefix{Text: "⏳"}).Println(msg)
	p.log.Info().Int("current", current).Int("total", total).Str("file", name).Msg("transferred")
}
