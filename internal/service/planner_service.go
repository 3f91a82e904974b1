package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DeValentRT/Horario-Prototipo/internal/dto"
	"github.com/DeValentRT/Horario-Prototipo/internal/planner"
	"github.com/DeValentRT/Horario-Prototipo/internal/repository"
	"github.com/DeValentRT/Horario-Prototipo/pkg/redis"
)

// ── planner module business errors ──

var (
	ErrInvalidTime      = errors.New("time must be HH:MM")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrInvalidDay       = errors.New("unknown weekday name")
	ErrSavedViewLimit   = errors.New("saved view limit reached")
	ErrViewNameRequired = errors.New("view name must not be blank")
	ErrICSParse         = errors.New("invalid iCalendar content")
	ErrICSEmpty         = errors.New("no course sessions found in calendar")
)

const defaultCourseColor = "#4f46e5"

// timeNow is swapped out in tests.
var timeNow = time.Now

// PlannerService is the core planner state machine behind the HTTP surface.
// Mutating operations persist write-through and return the full re-derived
// view, so callers always re-render from fresh state.
type PlannerService interface {
	View(ctx context.Context) *dto.PlannerView

	AddCourse(ctx context.Context, req *dto.CourseRequest) (*dto.PlannerView, error)
	UpdateCourse(ctx context.Context, id string, req *dto.CourseRequest) (*dto.PlannerView, error)
	DeleteCourse(ctx context.Context, id string) (*dto.PlannerView, error)

	ToggleGroup(ctx context.Context, key string) (*dto.PlannerView, error)
	ToggleAll(ctx context.Context) (*dto.PlannerView, error)
	SetGroupVisible(ctx context.Context, key string, visible bool) (*dto.PlannerView, error)

	SaveView(ctx context.Context, req *dto.SaveViewRequest) (*dto.PlannerView, error)
	ApplyView(ctx context.Context, id string) (*dto.PlannerView, error)
	DeleteView(ctx context.Context, id string) (*dto.PlannerView, error)

	ImportICS(ctx context.Context, reader io.Reader) (int, *dto.PlannerView, error)
	VisibleCourses(ctx context.Context) []planner.Course
}

type plannerService struct {
	mu     sync.Mutex
	state  *planner.State
	repo   *repository.Repository
	cache  *redis.Client // nil disables the derived-groups cache
	logger *zap.Logger
}

// NewPlannerService loads the persisted state and wraps it as the session
// source of truth. The mutex stands in for the original's single UI thread:
// each operation runs to completion before the next starts.
func NewPlannerService(ctx context.Context, repo *repository.Repository, cache *redis.Client, logger *zap.Logger) (PlannerService, error) {
	state, err := repo.State.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &plannerService{
		state:  state,
		repo:   repo,
		cache:  cache,
		logger: logger,
	}, nil
}

// persist writes the state through after a mutation. A storage failure is
// logged and swallowed: the in-memory state stays the source of truth for
// the session, mirroring how the original treats a full localStorage.
func (s *plannerService) persist(ctx context.Context) {
	if err := s.repo.State.Save(ctx, s.state); err != nil {
		s.logger.Warn("persist planner state failed", zap.Error(err))
	}
	s.cacheGroups(ctx)
}

// cacheGroups refreshes the derived course-groups cache entry.
func (s *plannerService) cacheGroups(ctx context.Context) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(s.state.Groups())
	if err != nil {
		return
	}
	if err := s.cache.CacheCourseGroups(ctx, payload); err != nil {
		s.logger.Debug("refresh course-groups cache failed", zap.Error(err))
	}
}

// ────────────────────── View ──────────────────────

func (s *plannerService) View(_ context.Context) *dto.PlannerView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toView()
}

// ────────────────────── Courses ──────────────────────

func (s *plannerService) AddCourse(ctx context.Context, req *dto.CourseRequest) (*dto.PlannerView, error) {
	course, err := courseFromRequest(req)
	if err != nil {
		return nil, err
	}
	course.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.AddCourse(course)
	s.persist(ctx)
	return s.toView(), nil
}

func (s *plannerService) UpdateCourse(ctx context.Context, id string, req *dto.CourseRequest) (*dto.PlannerView, error) {
	course, err := courseFromRequest(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Unknown ids are silent no-ops: the caller only references ids it was
	// handed, so nothing is reported and nothing is persisted.
	if s.state.UpdateCourse(id, course) {
		s.persist(ctx)
	}
	return s.toView(), nil
}

func (s *plannerService) DeleteCourse(ctx context.Context, id string) (*dto.PlannerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.DeleteCourse(id) {
		s.persist(ctx)
	}
	return s.toView(), nil
}

// ────────────────────── Visibility ──────────────────────

func (s *plannerService) ToggleGroup(ctx context.Context, key string) (*dto.PlannerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.ToggleGroup(key)
	s.persist(ctx)
	return s.toView(), nil
}

func (s *plannerService) ToggleAll(ctx context.Context) (*dto.PlannerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.ToggleAll()
	s.persist(ctx)
	return s.toView(), nil
}

func (s *plannerService) SetGroupVisible(ctx context.Context, key string, visible bool) (*dto.PlannerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SetGroupVisible(key, visible)
	s.persist(ctx)
	return s.toView(), nil
}

// ────────────────────── Saved views ──────────────────────

func (s *plannerService) SaveView(ctx context.Context, req *dto.SaveViewRequest) (*dto.PlannerView, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrViewNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.state.SaveView(uuid.NewString(), req.Name, req.Description, timeNow()); err != nil {
		if errors.Is(err, planner.ErrViewLimit) {
			return nil, ErrSavedViewLimit
		}
		return nil, err
	}
	s.persist(ctx)
	return s.toView(), nil
}

func (s *plannerService) ApplyView(ctx context.Context, id string) (*dto.PlannerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ApplyView(id) {
		s.persist(ctx)
	}
	return s.toView(), nil
}

func (s *plannerService) DeleteView(ctx context.Context, id string) (*dto.PlannerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.DeleteView(id) {
		s.persist(ctx)
	}
	return s.toView(), nil
}

// ────────────────────── ICS import ──────────────────────

func (s *plannerService) ImportICS(ctx context.Context, reader io.Reader) (int, *dto.PlannerView, error) {
	courses, err := ParseCourses(reader)
	if err != nil {
		return 0, nil, err
	}
	if len(courses) == 0 {
		return 0, nil, ErrICSEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range courses {
		c.ID = uuid.NewString()
		s.state.AddCourse(c)
	}
	s.persist(ctx)
	return len(courses), s.toView(), nil
}

// ────────────────────── Export support ──────────────────────

// VisibleCourses returns a copy of the sessions whose group is currently
// visible, for the export builders.
func (s *plannerService) VisibleCourses(_ context.Context) []planner.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	var visible []planner.Course
	for _, c := range s.state.Courses {
		if s.state.Visibility.IsVisible(c.GroupKey()) {
			visible = append(visible, c)
		}
	}
	return visible
}

// ── internal helpers ──

func courseFromRequest(req *dto.CourseRequest) (planner.Course, error) {
	if !planner.ValidDay(req.Day) {
		return planner.Course{}, ErrInvalidDay
	}
	startMin, err := planner.MinuteOf(req.Start)
	if err != nil {
		return planner.Course{}, ErrInvalidTime
	}
	endMin, err := planner.MinuteOf(req.End)
	if err != nil {
		return planner.Course{}, ErrInvalidTime
	}
	if endMin <= startMin {
		return planner.Course{}, ErrInvalidTimeRange
	}

	color := req.Color
	if color == "" {
		color = defaultCourseColor
	}

	return planner.Course{
		Name:    strings.TrimSpace(req.Name),
		Section: strings.TrimSpace(req.Section),
		Day:     req.Day,
		Start:   req.Start,
		End:     req.End,
		Color:   color,
		Type:    strings.TrimSpace(req.Type),
		Room:    strings.TrimSpace(req.Room),
	}, nil
}

// toView builds the full derived view. Callers hold the mutex.
func (s *plannerService) toView() *dto.PlannerView {
	groups := s.state.Groups()
	sorted := planner.SortGroups(groups, s.state.Courses)

	view := &dto.PlannerView{
		Courses:      make([]dto.CourseResponse, 0, len(s.state.Courses)),
		Groups:       make([]dto.GroupResponse, 0, len(sorted)),
		SavedViews:   make([]dto.SavedViewResponse, 0, len(s.state.SavedViews)),
		ActiveViewID: s.state.ActiveViewID,
		CanSaveView:  s.state.CanSaveView(),
	}

	for _, c := range s.state.Courses {
		view.Courses = append(view.Courses, toCourseResponse(c))
	}
	for _, g := range sorted {
		gr := dto.GroupResponse{
			Key:      g.Key,
			Name:     g.Name,
			Section:  g.Section,
			Color:    g.Color,
			Visible:  g.Visible,
			Sessions: make([]dto.CourseResponse, 0, len(g.Courses)),
		}
		for _, c := range g.Courses {
			gr.Sessions = append(gr.Sessions, toCourseResponse(c))
		}
		view.Groups = append(view.Groups, gr)
	}
	for _, sv := range s.state.SavedViews {
		view.SavedViews = append(view.SavedViews, dto.SavedViewResponse{
			ID:          sv.ID,
			Name:        sv.Name,
			Description: sv.Description,
			Date:        sv.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			Visibility:  sv.Visibility,
			Active:      sv.ID == s.state.ActiveViewID,
		})
	}

	return view
}

func toCourseResponse(c planner.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:      c.ID,
		Name:    c.Name,
		Section: c.Section,
		Day:     c.Day,
		Start:   c.Start,
		End:     c.End,
		Color:   c.Color,
		Type:    c.Type,
		Room:    c.Room,
	}
}
