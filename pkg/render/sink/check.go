package sink

import (
	"strings"

	"github.com/rustyoz/svg"

	"github.com/matzehuels/blockrender/pkg/errors"
)

// CheckResult summarizes a parsed SVG.
type CheckResult struct {
	// Blocks counts the block groups found.
	Blocks int
	// Paths counts the non-empty paths inside block groups.
	Paths int
}

// CheckSVG parses an emitted SVG and verifies it holds want block groups,
// each with a non-empty outline path.
func CheckSVG(data []byte, want int) (CheckResult, error) {
	parsed, err := svg.ParseSvg(string(data), "scene", 1.0)
	if err != nil {
		return CheckResult{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse svg")
	}

	var res CheckResult
	for i := range parsed.Groups {
		if err := res.visit(&parsed.Groups[i]); err != nil {
			return res, err
		}
	}
	if res.Blocks != want {
		return res, errors.New(errors.ErrCodeInternal, "svg holds %d blocks, want %d", res.Blocks, want)
	}
	return res, nil
}

func (res *CheckResult) visit(g *svg.Group) error {
	isBlock := strings.HasPrefix(g.ID, "block-")
	var paths int
	for _, el := range g.Elements {
		switch e := el.(type) {
		case *svg.Path:
			if strings.TrimSpace(e.D) != "" {
				paths++
			}
		case *svg.Group:
			if err := res.visit(e); err != nil {
				return err
			}
		}
	}
	if !isBlock {
		return nil
	}
	if paths == 0 {
		return errors.New(errors.ErrCodeInternal, "block group %s has no path", g.ID)
	}
	res.Blocks++
	res.Paths += paths
	return nil
}
