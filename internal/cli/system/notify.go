package system

import (
	"github.com/julianstephens/welltrack/internal/cli"
)

type NotifyCmd struct {
	Text string `arg:"" help:"Notification text."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	return ctx.Notifier.Notify(c.Text)
}
