package application

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/bnema/gallery-captioner/internal/domain"
	"github.com/bnema/gallery-captioner/internal/logging"
	"github.com/bnema/gallery-captioner/internal/ports"
)

type SessionState int

const (
	StateBrowsing SessionState = iota
	StateEditing
	StateExiting
)

func (s SessionState) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateEditing:
		return "editing"
	case StateExiting:
		return "exiting"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

type Navigation int

const (
	NavStay Navigation = iota
	NavNext
	NavPrev
)

// Intent is a discrete user action yielded by the display.
type Intent int

const (
	IntentNext Intent = iota
	IntentPrev
	IntentBeginEdit
	IntentCommit
	IntentCommitNext
	IntentCommitPrev
	IntentCancel
	IntentQuit
)

// EditSession walks a working list and commits caption edits into it. It is
// the only writer of the list while it runs and is not safe for concurrent use.
//
// Browsing(i) --BeginEdit--> Editing(i, buf) --Commit/Cancel--> Browsing(i')
// Any state --Quit--> Exiting.
type EditSession struct {
	records    domain.WorkingList
	galleryDir string
	viewerSpec domain.ViewerSpec
	launcher   ports.ViewerLauncher
	logger     *slog.Logger

	state  SessionState
	index  int
	buffer string
	viewer ports.ViewerProcess
	notice string
}

// NewEditSession lends records to the session; commits write into the same
// backing array. A nil launcher disables the viewer.
func NewEditSession(records domain.WorkingList, galleryDir string, viewer domain.ViewerSpec, launcher ports.ViewerLauncher, logger *slog.Logger) *EditSession {
	state := StateBrowsing
	if len(records) == 0 {
		state = StateExiting
	}

	return &EditSession{
		records:    records,
		galleryDir: galleryDir,
		viewerSpec: viewer,
		launcher:   launcher,
		logger:     logging.NewComponentLogger(logger, "edit_session"),
		state:      state,
	}
}

func (s *EditSession) State() SessionState {
	return s.state
}

func (s *EditSession) Index() int {
	return s.index
}

func (s *EditSession) Len() int {
	return len(s.records)
}

func (s *EditSession) Buffer() string {
	return s.buffer
}

func (s *EditSession) Records() domain.WorkingList {
	return s.records
}

func (s *EditSession) Current() (domain.CaptionRecord, bool) {
	if s.index < 0 || s.index >= len(s.records) {
		return domain.CaptionRecord{}, false
	}

	return s.records[s.index], true
}

// Notice is the latest non-fatal message for the user, such as a viewer
// launch failure.
func (s *EditSession) Notice() string {
	return s.notice
}

func (s *EditSession) ClearNotice() {
	s.notice = ""
}

func (s *EditSession) ViewerSpec() domain.ViewerSpec {
	return s.viewerSpec
}

// Viewer returns the viewer associated with the current edit, if any.
func (s *EditSession) Viewer() ports.ViewerProcess {
	return s.viewer
}

func (s *EditSession) Next() bool {
	return s.move(1)
}

func (s *EditSession) Prev() bool {
	return s.move(-1)
}

func (s *EditSession) move(delta int) bool {
	if s.state != StateBrowsing {
		return false
	}

	target := clamp(s.index+delta, len(s.records))
	if target == s.index {
		return false
	}

	s.index = target
	return true
}

// BeginEdit loads the current caption into the buffer and launches the
// viewer. A viewer that fails to start leaves a notice and the edit proceeds.
func (s *EditSession) BeginEdit(ctx context.Context) bool {
	record, ok := s.Current()
	if s.state != StateBrowsing || !ok {
		return false
	}

	s.state = StateEditing
	s.buffer = record.Caption
	s.notice = ""

	if s.viewerSpec.Configured() && s.launcher != nil {
		s.spawnViewer(ctx, record)
	}

	return true
}

func (s *EditSession) spawnViewer(ctx context.Context, record domain.CaptionRecord) {
	s.terminateViewer()

	imagePath := filepath.Join(s.galleryDir, record.Filename)
	process, err := s.launcher.Spawn(ctx, s.viewerSpec.Command, s.viewerSpec.ArgsFor(imagePath))
	if err != nil {
		s.notice = fmt.Sprintf("could not open viewer: %v", err)
		s.logger.Warn("viewer launch failed",
			slog.String("image", record.Filename),
			slog.String("command", s.viewerSpec.Command),
			slog.Any("error", err),
		)
		return
	}

	s.viewer = process
	s.logger.Debug("viewer started", slog.String("image", record.Filename), slog.Int("pid", process.PID()))
}

func (s *EditSession) SetBuffer(text string) {
	if s.state == StateEditing {
		s.buffer = text
	}
}

func (s *EditSession) AppendText(text string) {
	if s.state == StateEditing {
		s.buffer += text
	}
}

func (s *EditSession) Backspace() {
	if s.state != StateEditing || s.buffer == "" {
		return
	}

	runes := []rune(s.buffer)
	s.buffer = string(runes[:len(runes)-1])
}

// Commit writes the buffer into the current record, then moves per nav.
func (s *EditSession) Commit(nav Navigation) bool {
	if s.state != StateEditing {
		return false
	}

	s.records[s.index].Caption = s.buffer
	s.logger.Debug("caption committed", slog.String("image", s.records[s.index].Filename))

	s.leaveEditing()
	switch nav {
	case NavNext:
		s.index = clamp(s.index+1, len(s.records))
	case NavPrev:
		s.index = clamp(s.index-1, len(s.records))
	}

	return true
}

func (s *EditSession) Cancel() bool {
	if s.state != StateEditing {
		return false
	}

	s.leaveEditing()
	return true
}

// Quit ends the session from any state. An uncommitted buffer is dropped;
// earlier commits stay in the list.
func (s *EditSession) Quit() {
	if s.state == StateExiting {
		return
	}

	s.terminateViewer()
	s.buffer = ""
	s.state = StateExiting
}

// Close terminates any viewer still associated with the session. It may be
// called any number of times.
func (s *EditSession) Close() {
	s.terminateViewer()
}

func (s *EditSession) Apply(ctx context.Context, intent Intent) bool {
	switch intent {
	case IntentNext:
		return s.Next()
	case IntentPrev:
		return s.Prev()
	case IntentBeginEdit:
		return s.BeginEdit(ctx)
	case IntentCommit:
		return s.Commit(NavStay)
	case IntentCommitNext:
		return s.Commit(NavNext)
	case IntentCommitPrev:
		return s.Commit(NavPrev)
	case IntentCancel:
		return s.Cancel()
	case IntentQuit:
		wasExiting := s.state == StateExiting
		s.Quit()
		return !wasExiting
	default:
		return false
	}
}

func (s *EditSession) leaveEditing() {
	s.terminateViewer()
	s.buffer = ""
	s.state = StateBrowsing
}

func (s *EditSession) terminateViewer() {
	if s.viewer == nil {
		return
	}

	viewer := s.viewer
	s.viewer = nil
	if err := viewer.Terminate(); err != nil {
		s.logger.Warn("viewer terminate failed", slog.Int("pid", viewer.PID()), slog.Any("error", err))
	}
}

func clamp(index, length int) int {
	if length == 0 || index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}

	return index
}
