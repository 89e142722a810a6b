package ui

import (
	"path/filepath"
	"strings"
)

// EntryKind tells the listing renderer how to style an entry.
type EntryKind int

const (
	// KindFile is any entry that is neither a directory nor a symlink.
	KindFile EntryKind = iota
	KindDir
	KindSymlink
)

// ListingEntry is one entry of a rendered directory listing.
type ListingEntry struct {
	Path string
	Kind EntryKind
}

// RenderListing renders a directory listing, one entry per line, in the
// order given. Full paths are printed unless short is set, in which case
// only the base names are. Directories carry a trailing slash.
func (h *Handler) RenderListing(entries []ListingEntry, short bool) string {
	lines := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Path
		if short {
			name = filepath.Base(name)
		}

		switch entry.Kind {
		case KindDir:
			lines = append(lines, h.dirStyle.Render(name+"/"))
		case KindSymlink:
			lines = append(lines, h.linkStyle.Render(name))
		default:
			lines = append(lines, h.fileStyle.Render(name))
		}
	}

	return strings.Join(lines, "\n")
}
