package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/unrolled/render"
	"github.com/utkugunce/volleysim/controller"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

func NewServer(port int, adminUser, adminPass string, ctrl controller.C) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render, adminUser, adminPass)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"ratio":    ratioFormatter,
				"rankdiff": rankDiffFormatter,
				"signed":   signedFormatter,
				"inc":      func(i int) int { return i + 1 },
			},
		},
	})
}

func ratioFormatter(r float64) string {
	return fmt.Sprintf("%.3f", r)
}

// rankDiffFormatter shows movement relative to the baseline table: up is
// positive, down negative, no movement a dash.
func rankDiffFormatter(d int) string {
	if d == 0 {
		return "–"
	}
	if d > 0 {
		return fmt.Sprintf("▲%d", d)
	}
	return fmt.Sprintf("▼%d", -d)
}

func signedFormatter(d int) string {
	if d > 0 {
		return fmt.Sprintf("+%d", d)
	}
	return fmt.Sprintf("%d", d)
}
