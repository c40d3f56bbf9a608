package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sweepskin/pkg/cache"
	"github.com/matzehuels/sweepskin/pkg/errors"
	"github.com/matzehuels/sweepskin/pkg/observability"
	"github.com/matzehuels/sweepskin/pkg/pipeline"
	"github.com/matzehuels/sweepskin/pkg/skin"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string // listen address
	redisURL string // redis connection URL for the artifact cache
	noCache  bool   // disable caching entirely
}

// serveCommand creates the serve command for running the HTTP preview
// server. The server renders the given skin on demand; board and counter
// dimensions come from query parameters, so a browser tab pointed at
// /board.png is a live preview while editing skin assets (use refresh=1
// to bypass the cache).
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [skin]",
		Short: "Serve live skin previews over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "redis URL for the artifact cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, skinPath string, opts *serveOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache, opts.redisURL)
	if err != nil {
		return err
	}
	defer runner.Close()

	// Fail fast on broken skins instead of at first request.
	if _, err := runner.LoadSkin(ctx, pipeline.Options{Skin: skinPath}); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           c.newRouter(runner, skinPath),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("preview server listening", "addr", opts.addr, "skin", skinPath)
		printInfo("Serving %s", skinPath)
		printLink(fmt.Sprintf("http://localhost%s/board.png", opts.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.Logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// newRouter builds the preview server's routes.
func (c *CLI) newRouter(runner *pipeline.Runner, skinPath string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(c.observeRequests)

	r.Get("/board.png", c.handleBoard(runner, skinPath))
	r.Get("/skin.json", c.handleSkin(runner, skinPath))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

// observeRequests reports requests and responses to the HTTP hooks and the
// debug log.
func (c *CLI) observeRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		observability.HTTP().OnRequest(ctx, r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		observability.HTTP().OnResponse(ctx, r.Method, r.URL.Path, ww.Status(), elapsed)
		c.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", elapsed.Round(time.Millisecond))
	})
}

func (c *CLI) handleBoard(runner *pipeline.Runner, skinPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := pipeline.Options{
			Skin:        skinPath,
			Rows:        queryInt(r, "rows"),
			Cols:        queryInt(r, "cols"),
			Width:       queryInt(r, "width"),
			Height:      queryInt(r, "height"),
			LeftDigits:  queryInt(r, "left_digits"),
			RightDigits: queryInt(r, "right_digits"),
			Refresh:     r.URL.Query().Get("refresh") != "",
			Logger:      c.Logger,
		}

		result, err := runner.Execute(r.Context(), opts)
		if err != nil {
			writeError(w, err)
			return
		}

		etag := `"` + cache.Hash(result.PNG)[:16] + `"`
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("ETag", etag)
		w.Header().Set("Content-Length", strconv.Itoa(len(result.PNG)))
		_, _ = w.Write(result.PNG)
	}
}

// skinInfo is the response body of /skin.json.
type skinInfo struct {
	Manifest skin.Manifest `json:"manifest"`
	Hash     string        `json:"hash"`
	Issues   []string      `json:"issues,omitempty"`
}

func (c *CLI) handleSkin(runner *pipeline.Runner, skinPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := runner.LoadSkin(r.Context(), pipeline.Options{Skin: skinPath, Logger: c.Logger})
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(skinInfo{
			Manifest: s.Manifest(),
			Hash:     s.ContentHash(),
			Issues:   s.Issues(),
		})
	}
}

// queryInt reads an integer query parameter, treating absent or malformed
// values as zero so the pipeline falls back to manifest defaults.
func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// writeError maps a pipeline error to an HTTP status with a JSON body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDimensions, errors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case errors.ErrCodeSkinNotFound, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeAssetNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidSkin, errors.ErrCodeInvalidManifest, errors.ErrCodeLayout:
		status = http.StatusUnprocessableEntity
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
