package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed leaguedata
var leaguedata embed.FS

// FakeTVFServer serves canned league data the way the federation site does:
// a JSON feed for some leagues and only an HTML fixture page for others, so
// client tests can exercise both paths.
type FakeTVFServer struct {
	s *httptest.Server
}

func NewFakeTVFServer() *FakeTVFServer {
	r := chi.NewRouter()
	r.Get("/api/v1/leagues/{leagueID}", leagueFeedHandler)
	r.Get("/leagues/{leagueID}", leaguePageHandler)

	return &FakeTVFServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeTVFServer) Close() {
	f.s.Close()
}

func (f *FakeTVFServer) URL() string {
	return f.s.URL
}

func leagueFeedHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	serveFile(w, fmt.Sprintf("%s.json", leagueID))
}

func leaguePageHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	serveFile(w, fmt.Sprintf("%s.html", leagueID))
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := leaguedata.ReadFile(fmt.Sprintf("leaguedata/%s", name))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(b); err != nil {
		log.Printf("error writing %s: %v", name, err)
	}
}
