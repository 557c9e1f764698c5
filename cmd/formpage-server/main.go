// Command formpage-server serves the login form page, handles submissions,
// and exposes the bundled stylesheet under /assets/.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-formpage"
	"github.com/goliatone/go-formpage/components/loginform"
)

func main() {
	var (
		addrFlag      = flag.String("addr", ":8383", "HTTP listen address")
		baseFlag      = flag.String("base", "", "Base path to mount the form under")
		inlineFlag    = flag.Bool("inline-styles", false, "Inline the stylesheet instead of serving it from /assets/")
		shutdownGrace = flag.Duration("grace", 5*time.Second, "Shutdown grace period")
	)
	flag.Parse()

	componentOptions := []loginform.OptionFn{}
	if !*inlineFlag {
		componentOptions = append(componentOptions, loginform.WithStylesheet("/assets/formpage.css"))
	}

	component, err := loginform.New(componentOptions...)
	if err != nil {
		log.Fatalf("login form: %v", err)
	}

	mux := http.NewServeMux()
	patterns, err := component.RegisterRoutes(mux, *baseFlag)
	if err != nil {
		log.Fatalf("register routes: %v", err)
	}
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(formpage.StaticAssets()))))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpServer := &http.Server{
		Addr:    *addrFlag,
		Handler: mux,
	}

	log.Printf("listening on %s (routes %v)", *addrFlag, patterns)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		log.Fatalf("listen: %v", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), *shutdownGrace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
