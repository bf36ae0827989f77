package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

var DefaultImageExtensions = []string{"jpg", "jpeg", "png", "gif", "webp"}

// ImageFilter decides image-ness from a file extension, case-insensitively.
type ImageFilter struct {
	extensions map[string]struct{}
}

func NewImageFilter(extensions []string) ImageFilter {
	if len(extensions) == 0 {
		extensions = DefaultImageExtensions
	}

	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		normalized := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}

	return ImageFilter{extensions: set}
}

func (f ImageFilter) Match(filename string) bool {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return false
	}

	_, ok := f.extensions[strings.ToLower(ext)]
	return ok
}

// Reconcile merges the gallery listing with previously persisted captions.
// The listing decides membership and order; previous decides caption text for
// filenames that survive. Filenames only present in previous are dropped.
func Reconcile(listing []string, previous WorkingList) WorkingList {
	captions := previous.AsMapping()
	names := sortedUnique(listing)

	list := make(WorkingList, 0, len(names))
	for _, name := range names {
		record := NewCaptionRecord(name)
		if caption, ok := captions[name]; ok {
			record.Caption = caption
		}
		list = append(list, record)
	}

	return list
}

type SyncReport struct {
	Added   []string
	Kept    []string
	Dropped []CaptionRecord
}

// Orphaned returns dropped records that still carried caption text.
func (r SyncReport) Orphaned() []CaptionRecord {
	orphaned := make([]CaptionRecord, 0, len(r.Dropped))
	for _, record := range r.Dropped {
		if record.HasCaption() {
			orphaned = append(orphaned, record)
		}
	}

	return orphaned
}

// Summarize reports what Reconcile does with the same inputs.
func Summarize(listing []string, previous WorkingList) SyncReport {
	captions := previous.AsMapping()
	names := sortedUnique(listing)

	present := make(map[string]struct{}, len(names))
	report := SyncReport{}
	for _, name := range names {
		present[name] = struct{}{}
		if _, ok := captions[name]; ok {
			report.Kept = append(report.Kept, name)
			continue
		}
		report.Added = append(report.Added, name)
	}

	seen := make(map[string]struct{}, len(previous))
	for _, record := range previous {
		if _, ok := seen[record.Filename]; ok {
			continue
		}
		seen[record.Filename] = struct{}{}
		if _, ok := present[record.Filename]; !ok {
			report.Dropped = append(report.Dropped, record)
		}
	}

	return report
}

func sortedUnique(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}

	sort.Strings(unique)
	return unique
}
