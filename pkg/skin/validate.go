package skin

import (
	"fmt"
	"image"
	"path"
	"strings"

	"github.com/matzehuels/sweepskin/pkg/errors"
)

// Border edge filenames inside a border directory.
var borderEdges = []string{"b.png", "bl.png", "br.png", "l.png", "r.png", "t.png", "tl.png", "tr.png"}

// spriteGroups lists the directories whose images must share one size.
// Digits and faces are swapped in place at render time, so a size mismatch
// would shift the surrounding layout.
var spriteGroups = []string{
	"board/tile",
	"panel/face",
	"panel/lcounter/digit",
	"panel/rcounter/digit",
}

// borderGroups lists the directories holding nine-slice border edges.
var borderGroups = []string{
	"board/border",
	"border",
	"panel/border",
	"panel/lcounter/border",
	"panel/rcounter/border",
}

// Issues runs all consistency checks and returns one message per problem.
// An empty slice means the skin is valid. Assets must load; a missing or
// undecodable file is reported as an issue rather than an error.
func (s *Skin) Issues() []string {
	var issues []string
	for _, dir := range borderGroups {
		issues = append(issues, s.checkBorder(dir)...)
	}
	for _, dir := range spriteGroups {
		issues = append(issues, s.checkSprites(dir)...)
	}
	return issues
}

// Validate runs all consistency checks, returning an error describing every
// problem found.
func (s *Skin) Validate() error {
	issues := s.Issues()
	if len(issues) == 0 {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidSkin, "skin validation failed: %s", strings.Join(issues, "; "))
}

// checkSprites verifies every image in dir has the same dimensions. The
// expected members come from the asset list, not a directory walk, so stray
// extra files are ignored.
func (s *Skin) checkSprites(dir string) []string {
	var issues []string
	var size image.Point
	var first string
	for _, asset := range assetsIn(dir) {
		img, err := s.Image(asset)
		if err != nil {
			issues = append(issues, errors.UserMessage(err))
			continue
		}
		b := img.Bounds().Size()
		if first == "" {
			size, first = b, asset
			continue
		}
		if b != size {
			issues = append(issues, fmt.Sprintf(
				"sprites must be the same size: expected %dx%d from %s, but %s is %dx%d",
				size.X, size.Y, first, asset, b.X, b.Y))
		}
	}
	return issues
}

// checkBorder verifies the nine-slice edges in dir agree on thickness:
// the three top pieces share a height, the three left pieces share a width,
// and likewise for right and bottom.
func (s *Skin) checkBorder(dir string) []string {
	sizes := make(map[string]image.Point, len(borderEdges))
	var issues []string
	for _, edge := range borderEdges {
		asset := path.Join(dir, edge)
		img, err := s.Image(asset)
		if err != nil {
			issues = append(issues, errors.UserMessage(err))
			continue
		}
		sizes[edge] = img.Bounds().Size()
	}
	if len(issues) > 0 {
		return issues
	}

	height := func(p image.Point) int { return p.Y }
	width := func(p image.Point) int { return p.X }
	checks := []struct {
		edges  []string
		extent func(image.Point) int
		axis   string
	}{
		{[]string{"tl.png", "t.png", "tr.png"}, height, "height"},
		{[]string{"tl.png", "l.png", "bl.png"}, width, "width"},
		{[]string{"tr.png", "r.png", "br.png"}, width, "width"},
		{[]string{"bl.png", "b.png", "br.png"}, height, "height"},
	}
	for _, check := range checks {
		first := check.edges[0]
		want := check.extent(sizes[first])
		for _, edge := range check.edges[1:] {
			if got := check.extent(sizes[edge]); got != want {
				issues = append(issues, fmt.Sprintf(
					"border thickness must be consistent: expected %s %d from %s, but %s has %s %d",
					check.axis, want, path.Join(dir, first), path.Join(dir, edge), check.axis, got))
			}
		}
	}
	return issues
}

// assetsIn filters the canonical asset list to direct children of dir.
func assetsIn(dir string) []string {
	var out []string
	for _, asset := range Assets {
		if path.Dir(asset) == dir {
			out = append(out, asset)
		}
	}
	return out
}
