package storefront

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"GemsByMike/internal/catalog"
	"GemsByMike/internal/i18n"
)

var ErrUnknownProduct = errors.New("unknown product")

type Service struct {
	Catalog  *catalog.Snapshot
	Strings  *i18n.Bundle
	Sessions SessionStore
	Metrics  *Metrics
	Log      *zap.Logger
}

func NewService(products *catalog.Snapshot, strs *i18n.Bundle, sessions SessionStore, m *Metrics, log *zap.Logger) *Service {
	if m == nil {
		m = NewMetrics(nil, "")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		Catalog:  products,
		Strings:  strs,
		Sessions: sessions,
		Metrics:  m,
		Log:      log,
	}
}

func (s *Service) render(id string, st State) View {
	v := Render(st, s.Catalog, s.Strings)
	v.SessionID = id
	return v
}

func (s *Service) NewSession(ctx context.Context, initial i18n.Locale) (View, error) {
	st := NewState(initial)

	id, err := s.Sessions.Create(ctx, st)
	if err != nil {
		return View{}, fmt.Errorf("create session: %w", err)
	}
	s.Metrics.SessionsCreated.Inc()
	s.Log.Debug("session created", zap.String("session_id", id), zap.String("locale", string(st.Locale)))

	return s.render(id, st), nil
}

func (s *Service) View(ctx context.Context, id string) (View, error) {
	st, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return View{}, err
	}
	return s.render(id, st), nil
}

func (s *Service) Search(ctx context.Context, id, query string) (View, error) {
	st, err := s.Sessions.Update(ctx, id, func(st State) (State, error) {
		return SetQuery(st, query), nil
	})
	if err != nil {
		return View{}, err
	}
	s.Metrics.Searches.Inc()
	return s.render(id, st), nil
}

func (s *Service) Add(ctx context.Context, id string, productID int64) (View, error) {
	p, ok := s.Catalog.Get(productID)
	if !ok {
		return View{}, fmt.Errorf("%w: %d", ErrUnknownProduct, productID)
	}

	st, err := s.Sessions.Update(ctx, id, func(st State) (State, error) {
		return AddToCart(st, p), nil
	})
	if err != nil {
		return View{}, err
	}
	s.Metrics.CartAdds.WithLabelValues(strconv.FormatInt(p.ID, 10)).Inc()
	return s.render(id, st), nil
}

// ChangeLocale applies a locale switch. An invalid code is rejected and the
// session keeps its previous locale.
func (s *Service) ChangeLocale(ctx context.Context, id, code string) (View, error) {
	st, err := s.Sessions.Update(ctx, id, func(st State) (State, error) {
		return SetLocale(st, code)
	})
	if errors.Is(err, i18n.ErrInvalidLocale) {
		s.Metrics.InvalidLocales.Inc()
		s.Log.Info("locale rejected", zap.String("session_id", id), zap.String("locale", code))
		return View{}, err
	}
	if err != nil {
		return View{}, err
	}
	s.Metrics.LocaleChanges.WithLabelValues(string(st.Locale)).Inc()
	return s.render(id, st), nil
}
