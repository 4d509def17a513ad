package incidents

import (
	"regexp"
	"strings"
)

// NoteItem is one trimmed segment of an incident's free-text note log.
// Index is the 1-based sequence position within the parent incident.
type NoteItem struct {
	Index   int
	Message string
}

// timestampMarker matches the date strings the incident reporter embeds in
// the note log, e.g. 2015-03-27T14:13:01.707Z. Each match starts a new
// note segment.
var timestampMarker = regexp.MustCompile(`\d{4}-\d{2}-\d{2}\D\d{2}:\d{2}:\d{2}.\d+\D`)

// ParseNotes splits a raw note log on embedded timestamp markers. A segment
// runs from one marker up to the character before the next marker (or to
// the end of the string) and is trimmed of surrounding whitespace, marker
// included in the text. Input without any marker yields no items at all,
// even when non-empty; callers relying on that text must not expect it
// back.
func ParseNotes(note string) []NoteItem {
	if note == "" {
		return nil
	}

	starts := timestampMarker.FindAllStringIndex(note, -1)
	if len(starts) == 0 {
		return nil
	}

	items := make([]NoteItem, 0, len(starts))
	for i, loc := range starts {
		var segment string
		if i+1 < len(starts) {
			segment = note[loc[0] : starts[i+1][0]-1]
		} else {
			segment = note[loc[0]:]
		}
		items = append(items, NoteItem{
			Index:   i + 1,
			Message: strings.TrimSpace(segment),
		})
	}
	return items
}
