package cli

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/routekit/svcconfig/internal/inspectserver"
	"github.com/routekit/svcconfig/internal/reloader"
	"github.com/routekit/svcconfig/internal/snapshot"
)

const defaultListen = "127.0.0.1:7315"

func newServeCmd() *cobra.Command {
	var (
		listen     string
		watch      bool
		debounceMs int
	)
	cmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Serve an HTTP inspection view of a service-config document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			snap, err := snapshot.Load(path)
			if err != nil {
				return err
			}
			srv := inspectserver.New(snap)
			if watch {
				closer, err := reloader.Start(reloader.Options{
					Path:     path,
					Debounce: time.Duration(debounceMs) * time.Millisecond,
					OnReload: srv.Replace,
				})
				if err != nil {
					return fmt.Errorf("start config watch: %w", err)
				}
				defer func() { _ = closer.Close() }()
			}
			log.Printf("inspect server listening on %s (config %q, watch=%v)", listen, path, watch)
			httpSrv := &http.Server{
				Addr:              listen,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return httpSrv.ListenAndServe()
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&listen, "listen", defaultListen, "listen address")
	fs.BoolVar(&watch, "watch", false, "reload the document when it changes on disk")
	fs.IntVar(&debounceMs, "debounce-ms", 300, "reload debounce in milliseconds")
	return cmd
}
