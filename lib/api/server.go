package api

import (
	"fmt"
	"net/http"

	dspAuth "github.com/sofmon/dispatch/lib/auth"
	dspCfg "github.com/sofmon/dispatch/lib/cfg"
	dspCtx "github.com/sofmon/dispatch/lib/ctx"
	dspModel "github.com/sofmon/dispatch/lib/model"
)

type server struct {
	httpServer *http.Server
}

func NewServer(ctx dspCtx.Context, host string, port int, policy dspAuth.Policy, m *dspModel.Model) (srv *server, err error) {

	if port == 0 {
		port = 443
	}

	check, err := dspAuth.NewCheck(policy)
	if err != nil {
		return
	}

	srv = &server{
		&http.Server{
			Addr:    fmt.Sprintf("%s:%d", host, port),
			Handler: NewHandler(ctx, check, m),
		},
	}

	return
}

func (srv *server) EnableCallsLogging() {
	h, ok := srv.httpServer.Handler.(*httpHandler)
	if ok {
		h.logCalls = true
	}
}

func (srv *server) ListenAndServe() (err error) {
	return srv.httpServer.ListenAndServeTLS(
		dspCfg.FilePath("communication_certificate"),
		dspCfg.FilePath("communication_key"),
	)
}

func (srv *server) Shutdown(ctx dspCtx.Context) (err error) {
	return srv.httpServer.Shutdown(ctx)
}
