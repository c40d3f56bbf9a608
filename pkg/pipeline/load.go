package pipeline

import (
	"github.com/matzehuels/sweepskin/pkg/skin"
)

// loadSkin opens a skin from a directory or archive, decodes every asset,
// and runs the consistency checks. The returned skin has its content hash
// populated and all images cached.
func loadSkin(path string) (*skin.Skin, error) {
	s, err := skin.Open(path, nil)
	if err != nil {
		return nil, err
	}
	if err := s.Preload(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
