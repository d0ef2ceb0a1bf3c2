package storefront

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"GemsByMike/internal/catalog"
	"GemsByMike/internal/i18n"
)

func TestMemStore_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	id, err := s.Create(ctx, NewState(i18n.German))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(id, "s_") {
		t.Fatalf("id=%q", id)
	}

	st, err := s.Get(ctx, id)
	if err != nil || st.Locale != i18n.German {
		t.Fatalf("Get=%+v,%v", st, err)
	}

	st, err = s.Update(ctx, id, func(st State) (State, error) { return SetQuery(st, "ring"), nil })
	if err != nil || st.Query != "ring" {
		t.Fatalf("Update=%+v,%v", st, err)
	}

	if _, err := s.Get(ctx, "s_missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err=%v", err)
	}
	if _, err := s.Update(ctx, "s_missing", nil); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err=%v", err)
	}
}

func TestMemStore_FailedUpdateKeepsState(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	id, _ := s.Create(ctx, NewState(i18n.Spanish))

	got, err := s.Update(ctx, id, func(st State) (State, error) { return SetLocale(st, "jp") })
	if !errors.Is(err, i18n.ErrInvalidLocale) {
		t.Fatalf("err=%v", err)
	}
	if got.Locale != i18n.Spanish {
		t.Fatalf("returned locale=%q", got.Locale)
	}
	if st, _ := s.Get(ctx, id); st.Locale != i18n.Spanish {
		t.Fatalf("stored locale=%q", st.Locale)
	}
}

func TestMemStore_ConcurrentAddsAreSerialized(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	id, _ := s.Create(ctx, NewState(i18n.English))
	p := catalog.Product{ID: 2, Name: "Sapphire Ring", Price: 980}

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Update(ctx, id, func(st State) (State, error) { return AddToCart(st, p), nil })
		}()
	}
	wg.Wait()

	st, _ := s.Get(ctx, id)
	if len(st.Cart) != n {
		t.Fatalf("cart entries=%d want %d", len(st.Cart), n)
	}
}

func TestMemStore_Sweep(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	stale, _ := s.Create(ctx, NewState(i18n.English))
	now = now.Add(30 * time.Minute)
	fresh, _ := s.Create(ctx, NewState(i18n.English))
	now = now.Add(45 * time.Minute)

	if removed := s.Sweep(time.Hour); removed != 1 {
		t.Fatalf("removed=%d want 1", removed)
	}
	if _, err := s.Get(ctx, stale); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("stale session survived: %v", err)
	}
	if _, err := s.Get(ctx, fresh); err != nil {
		t.Fatalf("fresh session swept: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("len=%d", s.Len())
	}
}

func TestMemStore_UpdateAfterSweepFails(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	id, _ := s.Create(ctx, NewState(i18n.English))
	sess, ok := s.lookup(id)
	if !ok {
		t.Fatalf("session not found after create")
	}

	now = now.Add(3 * time.Hour)
	if removed := s.Sweep(2 * time.Hour); removed != 1 {
		t.Fatalf("removed=%d want 1", removed)
	}

	p := catalog.Product{ID: 1, Name: "Ruby Necklace", Price: 1200}
	_, err := s.apply(sess, func(st State) (State, error) { return AddToCart(st, p), nil })
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("update on swept session err=%v want ErrSessionNotFound", err)
	}
	if _, err := s.Update(ctx, id, nil); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err=%v", err)
	}
}
