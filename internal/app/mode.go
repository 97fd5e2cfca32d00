// internal/app/mode.go
package app

import "fmt"

// EditMode — что делает щелчок мыши.
type EditMode int

const (
	ModeTowers EditMode = iota // ЛКМ ставит башню, ПКМ убирает
	ModePaths                  // ЛКМ добавляет точку пути
)

func (m EditMode) String() string {
	switch m {
	case ModeTowers:
		return "towers"
	case ModePaths:
		return "paths"
	default:
		return fmt.Sprintf("EditMode(%d)", int(m))
	}
}

// Next returns the other mode.
func (m EditMode) Next() EditMode {
	if m == ModeTowers {
		return ModePaths
	}
	return ModeTowers
}

// ParseMode принимает "towers" или "paths".
func ParseMode(s string) (EditMode, error) {
	switch s {
	case "towers":
		return ModeTowers, nil
	case "paths":
		return ModePaths, nil
	}
	return ModeTowers, fmt.Errorf("unknown edit mode %q", s)
}
