package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/shutil/internal/schema"
	"github.com/dustin/go-humanize"
)

// RenderStat renders a [schema.StatRecord] as a block of labelled lines.
func (h *Handler) RenderStat(rec schema.StatRecord) string {
	rows := [][2]string{
		{"Size", fmt.Sprintf("%d (%s)", rec.ByteSize, humanize.IBytes(rec.ByteSize))},
		{"Blocks", fmt.Sprintf("%d", rec.BlockCount)},
		{"IO Block", fmt.Sprintf("%d", rec.BlockSize)},
		{"Type", rec.Kind()},
		{"Device", fmt.Sprintf("%d", rec.Device)},
		{"Inode", fmt.Sprintf("%d", rec.Inode)},
		{"Links", fmt.Sprintf("%d", rec.Links)},
		{"Access", fmt.Sprintf("(%04o/%s)", rec.Perms, ModeString(rec))},
		{"Uid", fmt.Sprintf("%d", rec.OwnerID)},
		{"Gid", fmt.Sprintf("%d", rec.GroupID)},
	}

	if !rec.ModifiedAt.IsZero() {
		rows = append(rows, [2]string{"Modify", fmt.Sprintf("%s (%s)",
			rec.ModifiedAt.Format("2006-01-02 15:04:05 -0700"), humanize.Time(rec.ModifiedAt))})
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, h.titleStyle.Render(" File: "+rec.Path+" "))

	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			h.labelStyle.Render(row[0]+":"),
			" ",
			h.valueStyle.Render(row[1]),
		))
	}

	return strings.Join(lines, "\n")
}

// ModeString returns the ls-style mode string of a [schema.StatRecord], such
// as "drwxr-xr-x".
func ModeString(rec schema.StatRecord) string {
	var sb strings.Builder

	switch {
	case rec.IsSymlink:
		sb.WriteByte('l')
	case rec.IsDir:
		sb.WriteByte('d')
	default:
		sb.WriteByte('-')
	}

	const rwx = "rwxrwxrwx"
	for i := range 9 {
		if rec.Perms&(1<<uint(8-i)) != 0 {
			sb.WriteByte(rwx[i])
		} else {
			sb.WriteByte('-')
		}
	}

	out := []byte(sb.String())
	special := []struct {
		bit   uint32
		pos   int
		set   byte
		unset byte
	}{
		{0o4000, 3, 's', 'S'},
		{0o2000, 6, 's', 'S'},
		{0o1000, 9, 't', 'T'},
	}
	for _, s := range special {
		if rec.Perms&s.bit == 0 {
			continue
		}
		if out[s.pos] == '-' {
			out[s.pos] = s.unset
		} else {
			out[s.pos] = s.set
		}
	}

	return string(out)
}
