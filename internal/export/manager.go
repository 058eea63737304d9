package export

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/virtuoso/internal/book"
	"github.com/handiism/virtuoso/internal/config"
	ioutils "github.com/handiism/virtuoso/internal/io"
	"github.com/handiism/virtuoso/internal/midifile"
	"github.com/handiism/virtuoso/internal/model"
	"github.com/handiism/virtuoso/internal/notation"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

func (l ProgressLevel) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "info"
	}
}

// ProgressEvent represents an export progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates writing exercise files.
type Manager struct {
	settings *config.Settings
	creator  *book.Creator

	books        []*model.Book
	totalFiles   int32
	writtenFiles int32
	failedFiles  int32

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewManager creates a new export Manager. onProgress may be nil and is
// called from several goroutines, one event at a time.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		creator:    book.NewCreator(settings.M3UExtended, settings.Tempo),
		onProgress: onProgress,
	}
}

// Initialize validates the settings and plans one book per output format,
// holding every selected root for every selected scale type.
func (m *Manager) Initialize() error {
	if err := m.settings.Validate(); err != nil {
		return err
	}

	pathCfg := m.settings.ToPathConfig()
	exCfg := m.settings.ToExerciseConfig()

	m.books = nil
	m.totalFiles = 0
	atomic.StoreInt32(&m.writtenFiles, 0)
	atomic.StoreInt32(&m.failedFiles, 0)

	for _, format := range m.settings.Formats {
		b := model.NewBook(m.settings.BookTitle, format, pathCfg)
		for _, t := range m.settings.ScaleTypes {
			roots, err := m.settings.ResolveRoots(t)
			if err != nil {
				return err
			}
			for _, root := range roots {
				ex := model.NewExercise(b, len(b.Exercises)+1, root, t, exCfg)
				b.Exercises = append(b.Exercises, ex)
			}
		}

		m.books = append(m.books, b)
		m.totalFiles += int32(len(b.Exercises))
		m.progress(ProgressEvent{Message: fmt.Sprintf("Planned %s book: %d exercises in %s", format, len(b.Exercises), b.Path), Level: LevelInfo})
	}

	return nil
}

// Start writes every planned book. Failed files are reported and do not
// stop the others; cancelling ctx stops the run.
func (m *Manager) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(len(m.books))

	for _, b := range m.books {
		g.Go(func() error {
			return m.exportBook(ctx, b)
		})
	}

	return g.Wait()
}

// Progress returns the number of files written, failed and planned.
func (m *Manager) Progress() (written, failed, total int32) {
	return atomic.LoadInt32(&m.writtenFiles), atomic.LoadInt32(&m.failedFiles), m.totalFiles
}

// Books returns the planned books.
func (m *Manager) Books() []*model.Book {
	return m.books
}

// BookNames describes each planned book.
func (m *Manager) BookNames() []string {
	names := make([]string, len(m.books))
	for i, b := range m.books {
		names[i] = fmt.Sprintf("%s (%s, %d exercises)", b.Title, b.Format, len(b.Exercises))
	}
	return names
}

func (m *Manager) exportBook(ctx context.Context, b *model.Book) error {
	if err := ioutils.EnsureDir(b.Path); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating directory: %v", err), Level: LevelError})
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentExercises)

	var successCount int32
	for _, ex := range b.Exercises {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := m.exportExercise(gctx, ex); err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				atomic.AddInt32(&m.failedFiles, 1)
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing %s: %v", ex.Title, err), Level: LevelError})
				return nil
			}
			atomic.AddInt32(&successCount, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if m.settings.CreateBook {
		content := m.creator.Create(b)
		if err := ioutils.WriteFile(ctx, b.IndexPath, []byte(content)); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating %s index: %v", b.Format, err), Level: LevelWarning})
		} else {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Created %s", filepath.Base(b.IndexPath)), Level: LevelSuccess})
		}
	}

	if int(successCount) == len(b.Exercises) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Exported %d %s exercises to %s", successCount, b.Format, b.Path), Level: LevelSuccess})
	} else {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Finished %s book, %d of %d exercises failed", b.Format, len(b.Exercises)-int(successCount), len(b.Exercises)), Level: LevelWarning})
	}

	return nil
}

func (m *Manager) exportExercise(ctx context.Context, ex *model.Exercise) error {
	if m.settings.SkipExisting && ioutils.FileExists(ex.Path) {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping existing: %s", filepath.Base(ex.Path)), Level: LevelVerbose})
		atomic.AddInt32(&m.writtenFiles, 1)
		return nil
	}

	if err := WriteExercise(ctx, ex, m.settings.Tempo); err != nil {
		return err
	}

	atomic.AddInt32(&m.writtenFiles, 1)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote: %s", filepath.Base(ex.Path)), Level: LevelVerbose})
	return nil
}

// Render returns the file content of ex in the format of its book. ABC
// files hold a single tune numbered after the exercise.
func Render(ex *model.Exercise, tempo float64) ([]byte, error) {
	built := notation.Build(ex.Root, ex.Type)
	switch ex.Book.Format {
	case model.FormatMIDI:
		return midifile.Encode(built, tempo)
	default:
		return []byte(notation.Tune(built, ex.Number)), nil
	}
}

// WriteExercise renders ex and writes it to ex.Path.
func WriteExercise(ctx context.Context, ex *model.Exercise, tempo float64) error {
	data, err := Render(ex, tempo)
	if err != nil {
		return err
	}
	return ioutils.WriteFile(ctx, ex.Path, data)
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onProgress(event)
}
