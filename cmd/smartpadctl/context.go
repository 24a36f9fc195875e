package main

import (
	"smartpad/internal/config"
	"smartpad/internal/layouts"
	"smartpad/internal/smartpad"
)

// commandContext carries state shared by all subcommands.
type commandContext struct {
	cfg     *config.Config
	port    string
	verbose bool
}

// selector builds the port-detection strategy from the default device
// profile's keywords.
func (ctx *commandContext) selector() smartpad.PortSelector {
	profile := ctx.cfg.DefaultProfile()
	if len(profile.Keywords) > 0 {
		return smartpad.KeywordSelector(profile.Keywords...)
	}
	return smartpad.DefaultSelector()
}

// connect opens a session to the device, honoring --port, then the default
// profile's fixed port, then keyword auto-detection. The caller decides how
// to disconnect (clearing or not) and must close the returned transport.
func (ctx *commandContext) connect() (*smartpad.Session, smartpad.Transport, error) {
	transport := smartpad.NewMIDITransport()
	session := smartpad.NewSession(transport)
	session.SetSelector(ctx.selector())

	port := ctx.port
	if port == "" {
		port = ctx.cfg.DefaultProfile().Port
	}
	if err := session.Connect(port); err != nil {
		transport.Close()
		return nil, nil, err
	}
	return session, transport, nil
}

// layoutStore opens the layout library.
func (ctx *commandContext) layoutStore() (*layouts.Store, error) {
	dir, err := ctx.cfg.DataPath()
	if err != nil {
		return nil, err
	}
	return layouts.NewStore(dir)
}
