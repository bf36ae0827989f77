package application

import (
	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/bnema/gallery-captioner/internal/ports"
)

type RunCommand struct {
	GalleryDir string
	Store      ports.CaptionStore
	Edit       bool
	Viewer     domain.ViewerSpec
}

type SyncCommand struct {
	GalleryDir string
	Store      ports.CaptionStore
	// RequireStore makes a missing caption store an error instead of an
	// empty previous mapping.
	RequireStore bool
}
