package pipeline

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sweepskin/pkg/cache"
	"github.com/matzehuels/sweepskin/pkg/errors"
	"github.com/matzehuels/sweepskin/pkg/geom"
	"github.com/matzehuels/sweepskin/pkg/skin/skintest"
)

const testManifest = `name = "Fixture"

[board]
rows = 2
cols = 3

[counter]
digits = 2
`

func writeTestSkin(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := skintest.Write(dir); err != nil {
		t.Fatalf("writing test skin: %v", err)
	}
	if err := skintest.WriteManifest(dir, testManifest); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return dir
}

func silentRunner(c cache.Cache) *Runner {
	return NewRunner(c, nil, log.NewWithOptions(io.Discard, log.Options{}))
}

func TestOptionsValidation(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Fatalf("empty options = %v, want INVALID_INPUT", err)
	}

	opts = Options{Skin: "x", Rows: -1}
	if err := opts.ValidateAndSetDefaults(); errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Fatalf("negative rows = %v, want INVALID_INPUT", err)
	}

	opts = Options{Skin: "x"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Logger == nil {
		t.Fatal("logger not defaulted")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second ValidateAndSetDefaults: %v", err)
	}
}

func TestExecute(t *testing.T) {
	r := silentRunner(nil)
	result, err := r.Execute(context.Background(), Options{Skin: writeTestSkin(t)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Rows != 2 || result.Cols != 3 {
		t.Fatalf("board is %dx%d, want manifest's 2x3", result.Rows, result.Cols)
	}
	if result.Skin.Name != "Fixture" {
		t.Fatalf("skin name = %q", result.Skin.Name)
	}
	if result.SkinHash == "" {
		t.Fatal("skin hash not set")
	}
	if result.CacheHit {
		t.Fatal("unexpected cache hit with null cache")
	}
	if result.Size != (geom.Size{W: 38, H: 46}) {
		t.Fatalf("size = %v, want 38x46", result.Size)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(result.PNG))
	if err != nil {
		t.Fatalf("decoding artifact: %v", err)
	}
	if cfg.Width != result.Size.W || cfg.Height != result.Size.H {
		t.Fatalf("artifact is %dx%d, result says %v", cfg.Width, cfg.Height, result.Size)
	}
}

func TestExecuteCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := silentRunner(c)
	skinDir := writeTestSkin(t)

	first, err := r.Execute(context.Background(), Options{Skin: skinDir})
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheHit {
		t.Fatal("first run hit the cache")
	}

	second, err := r.Execute(context.Background(), Options{Skin: skinDir})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheHit {
		t.Fatal("second run missed the cache")
	}
	if !bytes.Equal(first.PNG, second.PNG) {
		t.Fatal("cached artifact differs from rendered artifact")
	}
	if second.Size != first.Size {
		t.Fatalf("cached size = %v, rendered size = %v", second.Size, first.Size)
	}

	// Refresh bypasses the cache.
	third, err := r.Execute(context.Background(), Options{Skin: skinDir, Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if third.CacheHit {
		t.Fatal("refresh run hit the cache")
	}

	// Different render parameters get their own key.
	other, err := r.Execute(context.Background(), Options{Skin: skinDir, Rows: 4, Cols: 4})
	if err != nil {
		t.Fatalf("other Execute: %v", err)
	}
	if other.CacheHit {
		t.Fatal("different parameters hit the cache")
	}
}

func TestExecuteSkinEditInvalidatesCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := silentRunner(c)
	skinDir := writeTestSkin(t)

	if _, err := r.Execute(context.Background(), Options{Skin: skinDir}); err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	// Change one asset's content. The background is unconstrained by the
	// consistency checks, so the skin stays valid.
	if err := skintest.Overwrite(skinDir, "board/bg.png", 2, 2); err != nil {
		t.Fatalf("overwriting asset: %v", err)
	}

	result, err := r.Execute(context.Background(), Options{Skin: skinDir})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if result.CacheHit {
		t.Fatal("edited skin hit the stale cache entry")
	}
}

func TestExecuteExpand(t *testing.T) {
	r := silentRunner(nil)
	skinDir := writeTestSkin(t)

	result, err := r.Execute(context.Background(), Options{Skin: skinDir, Width: 48})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Size != (geom.Size{W: 48, H: 46}) {
		t.Fatalf("size = %v, want 48x46", result.Size)
	}

	_, err = r.Execute(context.Background(), Options{Skin: skinDir, Width: 10})
	if errors.GetCode(err) != errors.ErrCodeLayout {
		t.Fatalf("undersized width = %v, want LAYOUT", err)
	}

	_, err = r.Execute(context.Background(), Options{Skin: skinDir, Height: 100})
	if errors.GetCode(err) != errors.ErrCodeLayout {
		t.Fatalf("vertical growth = %v, want LAYOUT", err)
	}
}

func TestExecuteBadInputs(t *testing.T) {
	r := silentRunner(nil)
	skinDir := writeTestSkin(t)

	_, err := r.Execute(context.Background(), Options{Skin: skinDir, Rows: 300})
	if errors.GetCode(err) != errors.ErrCodeInvalidDimensions {
		t.Fatalf("rows=300 = %v, want INVALID_DIMENSIONS", err)
	}

	_, err = r.Execute(context.Background(), Options{Skin: filepath.Join(skinDir, "missing")})
	if errors.GetCode(err) != errors.ErrCodeSkinNotFound {
		t.Fatalf("missing skin = %v, want SKIN_NOT_FOUND", err)
	}
}

func TestExecuteIncompleteSkin(t *testing.T) {
	r := silentRunner(nil)
	skinDir := writeTestSkin(t)
	if err := os.Remove(filepath.Join(skinDir, "panel", "face", "cool.png")); err != nil {
		t.Fatalf("removing asset: %v", err)
	}

	_, err := r.Execute(context.Background(), Options{Skin: skinDir})
	if errors.GetCode(err) != errors.ErrCodeInvalidSkin {
		t.Fatalf("incomplete skin = %v, want INVALID_SKIN", err)
	}
}
