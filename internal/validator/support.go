package validator

import (
	"slices"
	"time"

	"github.com/leocth/labrinth/internal/domain"
)

// WindowKind selects how a SupportWindow is evaluated.
type WindowKind int

const (
	// WindowAll accepts any game version.
	WindowAll WindowKind = iota
	// WindowPastDate accepts versions released strictly after a date.
	WindowPastDate
	// WindowRange accepts versions released strictly between two dates.
	WindowRange
	// WindowCustom accepts an explicit set of versions.
	WindowCustom
)

// SupportWindow is the game-version era a validator applies to.
type SupportWindow struct {
	Kind     WindowKind
	After    time.Time
	Before   time.Time
	Versions []string
}

// AllVersions returns an unrestricted window.
func AllVersions() SupportWindow {
	return SupportWindow{Kind: WindowAll}
}

// PastDate returns a window satisfied by versions released after t.
func PastDate(t time.Time) SupportWindow {
	return SupportWindow{Kind: WindowPastDate, After: t}
}

// Range returns a window satisfied by versions released between after and before.
func Range(after, before time.Time) SupportWindow {
	return SupportWindow{Kind: WindowRange, After: after, Before: before}
}

// Custom returns a window satisfied by any of the listed versions.
func Custom(versions ...string) SupportWindow {
	return SupportWindow{Kind: WindowCustom, Versions: versions}
}

// SupportedBy reports whether any declared game version falls inside the
// window. Release dates come from the catalogue; declared versions missing
// from it never satisfy a date window.
func (w SupportWindow) SupportedBy(declared []string, catalogue []domain.GameVersion) bool {
	switch w.Kind {
	case WindowAll:
		return true
	case WindowPastDate:
		return anyReleased(declared, catalogue, func(t time.Time) bool {
			return t.After(w.After)
		})
	case WindowRange:
		return anyReleased(declared, catalogue, func(t time.Time) bool {
			return t.After(w.After) && t.Before(w.Before)
		})
	case WindowCustom:
		for _, v := range w.Versions {
			if slices.Contains(declared, v) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func anyReleased(declared []string, catalogue []domain.GameVersion, match func(time.Time) bool) bool {
	for _, v := range declared {
		idx := slices.IndexFunc(catalogue, func(gv domain.GameVersion) bool {
			return gv.Version == v
		})
		if idx >= 0 && match(catalogue[idx].Created) {
			return true
		}
	}
	return false
}
