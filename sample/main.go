package main

import (
	"os"

	dspAPI "github.com/sofmon/dispatch/lib/api"
	dspAuth "github.com/sofmon/dispatch/lib/auth"
	dspCfg "github.com/sofmon/dispatch/lib/cfg"
	dspCtx "github.com/sofmon/dispatch/lib/ctx"
	dspModel "github.com/sofmon/dispatch/lib/model"
)

func main() {

	ctx := dspCtx.New()

	if len(os.Args) > 1 {
		if err := dspCfg.SetConfigLocation(os.Args[1]); err != nil {
			ctx.Logger().Error("invalid config location", "error", err.Error())
			return
		}
	}

	store, err := openStore(dspCfg.StringOrPanic("database_path"))
	if err != nil {
		ctx.Logger().Error("unable to open item store", "error", err.Error())
		return
	}
	defer store.Close()

	m, err := dspModel.Build(store.Declarations())
	if err != nil {
		ctx.Logger().Error("unable to build endpoint model", "error", err.Error())
		return
	}

	policy := dspAuth.Policy{
		Roles: map[dspAuth.Role]dspAuth.Actions{
			"editor": {"{any} /items/{rest...}"},
		},
		Public: dspAuth.Actions{
			"GET /items",
			"GET /items/{id}",
		},
	}

	srv, err := dspAPI.NewServer(ctx, "localhost", 8443, policy, m)
	if err != nil {
		ctx.Logger().Error("unable to create server", "error", err.Error())
		return
	}

	srv.EnableCallsLogging()

	err = srv.ListenAndServe()
	if err != nil {
		ctx.Logger().Error("server stopped", "error", err.Error())
	}
}
