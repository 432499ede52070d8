package query_test

import (
	"testing"
	"time"

	"github.com/campuswell/pulse/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "widgets", "w").
		Project("id", "id").
		Project("owner_id", "ownerId").
		Project("created_at", "createdAt")
}

func TestBuild(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).Build()

	want := "SELECT w.id, w.owner_id, w.created_at FROM public.widgets w"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildWithConditions(t *testing.T) {
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("ownerId", "abc").
		WhereGte("createdAt", since).
		Build()

	want := "SELECT w.id, w.owner_id, w.created_at FROM public.widgets w" +
		" WHERE w.owner_id = $1 AND w.created_at >= $2"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 || args[0] != "abc" || args[1] != since {
		t.Errorf("args = %v, want [abc %v]", args, since)
	}
}

func TestWhereSkipsNil(t *testing.T) {
	var owner *string

	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("ownerId", owner).
		WhereGte("createdAt", nil).
		Build()

	want := "SELECT w.id, w.owner_id, w.created_at FROM public.widgets w"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildCount(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("ownerId", "abc").
		BuildCount()

	want := "SELECT COUNT(*) FROM public.widgets w WHERE w.owner_id = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args = %v, want one", args)
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(
		testProjection(),
		query.SortField{Field: "createdAt", Descending: true},
	).BuildPage(3, 10)

	want := "SELECT w.id, w.owner_id, w.created_at FROM public.widgets w" +
		" ORDER BY w.created_at DESC LIMIT 10 OFFSET 20"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("id", "abc")

	want := "SELECT w.id, w.owner_id, w.created_at FROM public.widgets w WHERE w.id = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("args = %v, want [abc]", args)
	}
}

func TestOrderByOverride(t *testing.T) {
	sql, _ := query.NewBuilder(
		testProjection(),
		query.SortField{Field: "createdAt", Descending: true},
	).OrderBy(query.SortField{Field: "id"}).Build()

	want := "SELECT w.id, w.owner_id, w.created_at FROM public.widgets w ORDER BY w.id ASC"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestColumnFallback(t *testing.T) {
	p := testProjection()
	if got := p.Column("unmapped"); got != "unmapped" {
		t.Errorf("column = %q, want passthrough", got)
	}
}
