package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sweepskin/pkg/errors"
	"github.com/matzehuels/sweepskin/pkg/skin"
)

// validateCommand creates the validate command for checking skin packages.
//
// Validation loads every asset, so a passing skin is guaranteed to render.
// The command lists every problem it finds rather than stopping at the
// first one.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [skin]",
		Short: "Check a skin package for missing or inconsistent assets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
}

func (c *CLI) runValidate(skinPath string) error {
	prog := newProgress(c.Logger)

	s, err := skin.Open(skinPath, nil)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	if err := s.Preload(); err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	prog.done(fmt.Sprintf("Loaded %d assets", len(skin.Assets)))

	m := s.Manifest()
	if m.Name != "" {
		printKeyValue("name", m.Name)
	}
	if m.Author != "" {
		printKeyValue("author", m.Author)
	}
	printKeyValue("board", fmt.Sprintf("%dx%d", m.Board.Rows, m.Board.Cols))
	printKeyValue("digits", strconv.Itoa(m.Counter.Digits))
	printKeyValue("hash", s.ContentHash())

	issues := s.Issues()
	if len(issues) == 0 {
		printSuccess("Skin is valid")
		return nil
	}

	for _, issue := range issues {
		printWarning("%s", issue)
	}
	return errors.New(errors.ErrCodeInvalidSkin, "%d validation issues", len(issues))
}
