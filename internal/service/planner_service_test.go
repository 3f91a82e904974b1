package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/DeValentRT/Horario-Prototipo/internal/dto"
	"github.com/DeValentRT/Horario-Prototipo/internal/model"
)

// ── test helpers ──

func setupTestPlannerService(t *testing.T) (PlannerService, *mockBlobRepo) {
	t.Helper()
	blobs := newMockBlobRepo()
	svc, err := NewPlannerService(context.Background(), newTestRepository(blobs), nil, zap.NewNop())
	if err != nil {
		t.Fatalf("NewPlannerService failed: %v", err)
	}
	return svc, blobs
}

func courseReq(name, section, day, start, end string) *dto.CourseRequest {
	return &dto.CourseRequest{
		Name: name, Section: section, Day: day, Start: start, End: end,
	}
}

func findGroup(view *dto.PlannerView, key string) *dto.GroupResponse {
	for i := range view.Groups {
		if view.Groups[i].Key == key {
			return &view.Groups[i]
		}
	}
	return nil
}

// ── AddCourse ──

func TestPlannerService_AddCourse_Success(t *testing.T) {
	svc, blobs := setupTestPlannerService(t)

	view, err := svc.AddCourse(context.Background(), courseReq("Calc", "01", "Lunes", "08:00", "09:00"))
	if err != nil {
		t.Fatalf("AddCourse failed: %v", err)
	}
	if len(view.Courses) != 1 || view.Courses[0].ID == "" {
		t.Fatal("expected one course with a fresh id")
	}
	if view.Courses[0].Color == "" {
		t.Error("omitted color must fall back to the default")
	}
	g := findGroup(view, "Calc|01")
	if g == nil || !g.Visible {
		t.Error("expected visible group Calc|01")
	}
	if _, ok := blobs.blobs[model.BlobKeyCourses]; !ok {
		t.Error("courses blob must be written through")
	}
	if _, ok := blobs.blobs[model.BlobKeyVisibility]; !ok {
		t.Error("visibility blob must be written through")
	}
}

func TestPlannerService_AddCourse_Validation(t *testing.T) {
	svc, _ := setupTestPlannerService(t)

	cases := []struct {
		name string
		req  *dto.CourseRequest
		want error
	}{
		{"end before start", courseReq("Calc", "", "Lunes", "10:00", "09:00"), ErrInvalidTimeRange},
		{"end equals start", courseReq("Calc", "", "Lunes", "09:00", "09:00"), ErrInvalidTimeRange},
		{"bad day", courseReq("Calc", "", "Someday", "08:00", "09:00"), ErrInvalidDay},
		{"bad time", courseReq("Calc", "", "Lunes", "25:00", "26:00"), ErrInvalidTime},
	}

	for _, tc := range cases {
		if _, err := svc.AddCourse(context.Background(), tc.req); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	// Nothing mutated: the planner is still empty.
	if view := svc.View(context.Background()); len(view.Courses) != 0 {
		t.Error("failed validations must not mutate state")
	}
}

// ── UpdateCourse / DeleteCourse ──

func TestPlannerService_UpdateCourse_UnknownIDIsNoop(t *testing.T) {
	svc, blobs := setupTestPlannerService(t)
	svc.AddCourse(context.Background(), courseReq("Calc", "01", "Lunes", "08:00", "09:00"))
	putsBefore := blobs.putCount

	view, err := svc.UpdateCourse(context.Background(), "missing", courseReq("Calc", "02", "Lunes", "08:00", "09:00"))
	if err != nil {
		t.Fatalf("no-op update must not error: %v", err)
	}
	if view.Courses[0].Section != "01" {
		t.Error("no-op update must leave the course untouched")
	}
	if blobs.putCount != putsBefore {
		t.Error("no-op update must not persist")
	}
}

func TestPlannerService_DeleteCourse_PrunesGroup(t *testing.T) {
	svc, _ := setupTestPlannerService(t)
	view, _ := svc.AddCourse(context.Background(), courseReq("Calc", "01", "Lunes", "08:00", "09:00"))

	view, err := svc.DeleteCourse(context.Background(), view.Courses[0].ID)
	if err != nil {
		t.Fatalf("DeleteCourse failed: %v", err)
	}
	if len(view.Courses) != 0 || len(view.Groups) != 0 {
		t.Error("expected empty planner after deleting the only course")
	}
}

// ── scenario: toggle, save, apply ──

func TestPlannerService_SnapshotScenario(t *testing.T) {
	svc, _ := setupTestPlannerService(t)
	ctx := context.Background()

	svc.AddCourse(ctx, courseReq("Calc", "01", "Lunes", "08:00", "09:00"))
	view, _ := svc.AddCourse(ctx, courseReq("Calc", "01", "Miércoles", "08:00", "09:00"))

	g := findGroup(view, "Calc|01")
	if g == nil || len(g.Sessions) != 2 || !g.Visible {
		t.Fatal("expected one visible group Calc|01 with 2 sessions")
	}

	view, _ = svc.ToggleGroup(ctx, "Calc|01")
	if findGroup(view, "Calc|01").Visible {
		t.Fatal("toggle must hide Calc|01")
	}

	view, err := svc.SaveView(ctx, &dto.SaveViewRequest{Name: "midterm"})
	if err != nil {
		t.Fatalf("SaveView failed: %v", err)
	}
	savedID := view.SavedViews[0].ID
	if view.ActiveViewID != savedID {
		t.Fatal("saving must mark the view active")
	}

	view, _ = svc.AddCourse(ctx, courseReq("Physics", "02", "Martes", "10:00", "11:00"))
	if view.ActiveViewID != "" {
		t.Error("adding a course must clear the active view")
	}
	if !findGroup(view, "Physics|02").Visible {
		t.Error("new group must appear visible")
	}

	view, err = svc.ApplyView(ctx, savedID)
	if err != nil {
		t.Fatalf("ApplyView failed: %v", err)
	}
	if findGroup(view, "Calc|01").Visible {
		t.Error("apply must restore Calc|01 hidden")
	}
	if !findGroup(view, "Physics|02").Visible {
		t.Error("group unknown to the view must stay visible")
	}
	if view.ActiveViewID != savedID {
		t.Error("apply must set the active view")
	}
}

func TestPlannerService_ApplyView_UnknownIDIsNoop(t *testing.T) {
	svc, blobs := setupTestPlannerService(t)
	ctx := context.Background()
	svc.AddCourse(ctx, courseReq("Calc", "01", "Lunes", "08:00", "09:00"))
	putsBefore := blobs.putCount

	view, err := svc.ApplyView(ctx, "missing")
	if err != nil {
		t.Fatalf("no-op apply must not error: %v", err)
	}
	if !findGroup(view, "Calc|01").Visible {
		t.Error("no-op apply must not change visibility")
	}
	if blobs.putCount != putsBefore {
		t.Error("no-op apply must not persist")
	}
}

// ── saved-view validation and cap ──

func TestPlannerService_SaveView_BlankNameRejected(t *testing.T) {
	svc, _ := setupTestPlannerService(t)

	if _, err := svc.SaveView(context.Background(), &dto.SaveViewRequest{Name: "   "}); !errors.Is(err, ErrViewNameRequired) {
		t.Errorf("expected ErrViewNameRequired, got %v", err)
	}
}

func TestPlannerService_SaveView_CapRejected(t *testing.T) {
	svc, _ := setupTestPlannerService(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if _, err := svc.SaveView(ctx, &dto.SaveViewRequest{Name: fmt.Sprintf("view %d", i)}); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	view := svc.View(ctx)
	if view.CanSaveView {
		t.Error("CanSaveView must be false at cap")
	}
	if _, err := svc.SaveView(ctx, &dto.SaveViewRequest{Name: "overflow"}); !errors.Is(err, ErrSavedViewLimit) {
		t.Errorf("expected ErrSavedViewLimit, got %v", err)
	}
	if got := len(svc.View(ctx).SavedViews); got != 10 {
		t.Errorf("store must hold at most 10 views, got %d", got)
	}
}

// ── persistence behavior ──

func TestPlannerService_PersistFailureIsNonFatal(t *testing.T) {
	svc, blobs := setupTestPlannerService(t)
	blobs.failPuts = true

	view, err := svc.AddCourse(context.Background(), courseReq("Calc", "01", "Lunes", "08:00", "09:00"))
	if err != nil {
		t.Fatalf("a storage failure must not surface: %v", err)
	}
	if len(view.Courses) != 1 {
		t.Error("in-memory state must remain the source of truth")
	}
}

func TestPlannerService_StateSurvivesReload(t *testing.T) {
	blobs := newMockBlobRepo()
	repo := newTestRepository(blobs)
	ctx := context.Background()

	svc, err := NewPlannerService(ctx, repo, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("NewPlannerService failed: %v", err)
	}
	svc.AddCourse(ctx, courseReq("Calc", "01", "Lunes", "08:00", "09:00"))
	svc.ToggleGroup(ctx, "Calc|01")
	svc.SaveView(ctx, &dto.SaveViewRequest{Name: "midterm"})

	reloaded, err := NewPlannerService(ctx, repo, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	view := reloaded.View(ctx)
	if len(view.Courses) != 1 || len(view.SavedViews) != 1 {
		t.Fatal("courses and saved views must survive a reload")
	}
	if findGroup(view, "Calc|01").Visible {
		t.Error("visibility must survive a reload")
	}
	// The active pointer is session state, never persisted.
	if view.ActiveViewID != "" {
		t.Error("active view pointer must reset on reload")
	}
}
