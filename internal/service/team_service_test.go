package service

import (
	"context"
	"errors"
	"testing"

	"github.com/reviewflow/review-service/internal/domain"
)

func TestTeamCreate_RepointsMembers(t *testing.T) {
	f := newFakeStore()
	f.addUser("u1", "old", true)
	f.addUser("u2", "old", true)

	svc := NewTeamService(f)
	team, members, err := svc.Create(context.Background(), "backend", []string{"u1", "u2"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if team.Name != "backend" {
		t.Fatalf("want backend, got %s", team.Name)
	}
	if len(members) != 2 {
		t.Fatalf("want 2 members, got %d", len(members))
	}
	for _, m := range members {
		if m.TeamName != "backend" {
			t.Fatalf("member %s not re-pointed, team is %q", m.ID, m.TeamName)
		}
	}
}

func TestTeamCreate_Duplicate(t *testing.T) {
	f := newFakeStore()
	svc := NewTeamService(f)
	if _, _, err := svc.Create(context.Background(), "qa", nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, _, err := svc.Create(context.Background(), "qa", nil)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
}

func TestTeamCreate_MissingMember(t *testing.T) {
	f := newFakeStore()
	f.addUser("u1", "old", true)

	svc := NewTeamService(f)
	_, _, err := svc.Create(context.Background(), "backend", []string{"u1", "ghost"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if f.teams["backend"] {
		t.Fatalf("team must not be created when a member is missing")
	}
}

func TestTeamCreate_Validation(t *testing.T) {
	svc := NewTeamService(newFakeStore())

	if _, _, err := svc.Create(context.Background(), "  ", nil); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("blank name: want ErrBadRequest, got %v", err)
	}
	if _, _, err := svc.Create(context.Background(), "qa", []string{"u1", "u1"}); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("duplicate member: want ErrBadRequest, got %v", err)
	}
}

func TestTeamGet_NotFound(t *testing.T) {
	svc := NewTeamService(newFakeStore())
	_, _, err := svc.Get(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
