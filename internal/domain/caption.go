package domain

import "fmt"

type CaptionRecord struct {
	Filename string
	Caption  string
}

func NewCaptionRecord(filename string) CaptionRecord {
	return CaptionRecord{Filename: filename}
}

// Label is the single-line form shown in the editor list.
func (r CaptionRecord) Label() string {
	return fmt.Sprintf("%s: %s", r.Filename, r.Caption)
}

func (r CaptionRecord) HasCaption() bool {
	return r.Caption != ""
}

// WorkingList is ordered by filename and never holds the same filename twice.
type WorkingList []CaptionRecord

// AsMapping indexes captions by filename. When a filename repeats, the first
// occurrence wins.
func (l WorkingList) AsMapping() map[string]string {
	mapping := make(map[string]string, len(l))
	for _, record := range l {
		if _, ok := mapping[record.Filename]; ok {
			continue
		}
		mapping[record.Filename] = record.Caption
	}

	return mapping
}

// Duplicates counts records whose filename already appeared earlier in the list.
func (l WorkingList) Duplicates() int {
	seen := make(map[string]struct{}, len(l))
	count := 0
	for _, record := range l {
		if _, ok := seen[record.Filename]; ok {
			count++
			continue
		}
		seen[record.Filename] = struct{}{}
	}

	return count
}

func (l WorkingList) Filenames() []string {
	names := make([]string, 0, len(l))
	for _, record := range l {
		names = append(names, record.Filename)
	}

	return names
}

func (l WorkingList) Captioned() int {
	count := 0
	for _, record := range l {
		if record.HasCaption() {
			count++
		}
	}

	return count
}

func (l WorkingList) Clone() WorkingList {
	if l == nil {
		return nil
	}

	cloned := make(WorkingList, len(l))
	copy(cloned, l)
	return cloned
}
