package cmd

import (
	"context"
	"io"

	"github.com/jimezsa/hhwatch/internal/config"
	"github.com/jimezsa/hhwatch/internal/ui"
	"github.com/rs/zerolog"
)

type Context struct {
	// Ctx is the parent of every run. Commands that block for long arm their
	// own signal handling on top of it.
	Ctx       context.Context
	In        io.Reader
	Out       io.Writer
	Err       io.Writer
	UI        *ui.UI
	Config    config.Config
	ConfigDir string
	Logger    zerolog.Logger
	Verbose   bool
	Version   string
	ColorMode ui.ColorMode
}

func (c *Context) runContext() context.Context {
	if c == nil || c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}
