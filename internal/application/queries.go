package application

import "github.com/bnema/gallery-captioner/internal/domain"

type SyncResult struct {
	Records    domain.WorkingList
	Report     domain.SyncReport
	StorePath  string
	StoreFound bool
}

type RunResult struct {
	SyncResult
	OutputPath string
	Edited     bool
}
