package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
	"github.com/utkugunce/volleysim/controller"
	"github.com/utkugunce/volleysim/model"
)

func leaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusOK, "leagues", ctrl.ListLeagues())
	}
}

func leagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		l, err := ctrl.GetLeague(r.Context(), leagueID)
		if err != nil {
			render.HTML(w, http.StatusNotFound, "404", err.Error())
			return
		}

		scenarios, err := ctrl.ListSavedScenarios(r.Context(), leagueID)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"league":    l,
			"scenarios": scenarios,
		}
		render.HTML(w, http.StatusOK, "league", data)
	}
}

// standingsHandler renders a group's live table. A `s` query parameter
// carries a shared scenario and wins over the saved one; a malformed share
// token silently falls back to the baseline.
func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		group := chi.URLParam(r, "group")

		shared := false
		var overrides model.Overrides
		if token := r.URL.Query().Get("s"); token != "" {
			overrides, shared = model.DecodeSharedOverrides(token)
		}
		if !shared {
			var err error
			overrides, err = ctrl.GetScenario(r.Context(), leagueID, group)
			if err != nil {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
				return
			}
		}

		standings, err := ctrl.GetStandings(r.Context(), leagueID, group, overrides)
		if err != nil {
			render.HTML(w, http.StatusNotFound, "404", err.Error())
			return
		}

		data := map[string]any{
			"leagueID":   leagueID,
			"group":      group,
			"standings":  standings,
			"overrides":  overrides,
			"shared":     shared,
			"shareToken": model.EncodeSharedOverrides(overrides),
		}
		render.HTML(w, http.StatusOK, "standings", data)
	}
}

func diffHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		group := chi.URLParam(r, "group")

		overrides, err := ctrl.GetScenario(r.Context(), leagueID, group)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		diffs, err := ctrl.GetScenarioDiff(r.Context(), leagueID, group, overrides)
		if err != nil {
			render.HTML(w, http.StatusNotFound, "404", err.Error())
			return
		}

		data := map[string]any{
			"leagueID": leagueID,
			"group":    group,
			"diffs":    diffs,
		}
		render.HTML(w, http.StatusOK, "diff", data)
	}
}

// saveScenarioHandler accepts the override map as a JSON form field, the
// shape the standings page edits in place.
func saveScenarioHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		leagueID := chi.URLParam(r, "leagueID")
		group := chi.URLParam(r, "group")

		var overrides model.Overrides
		if err := json.Unmarshal([]byte(r.PostForm.Get("overrides")), &overrides); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error parsing overrides: %v", err))
			return
		}

		if err := ctrl.SaveScenario(r.Context(), leagueID, group, overrides); err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		http.Redirect(w, r, groupURL(leagueID, group), http.StatusSeeOther)
	}
}

func resetScenarioHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		group := chi.URLParam(r, "group")

		if err := ctrl.DeleteScenario(r.Context(), leagueID, group); err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		http.Redirect(w, r, groupURL(leagueID, group), http.StatusSeeOther)
	}
}

func autoFillScenarioHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		group := chi.URLParam(r, "group")

		if _, err := ctrl.AutoFillScenario(r.Context(), leagueID, group, time.Now().UnixNano()); err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		http.Redirect(w, r, groupURL(leagueID, group), http.StatusSeeOther)
	}
}

func exportScenarioHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		group := chi.URLParam(r, "group")

		f, err := ctrl.ExportScenario(r.Context(), leagueID, group)
		if err != nil {
			render.HTML(w, http.StatusNotFound, "404", err.Error())
			return
		}

		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s-scenario.json", leagueID))
		render.JSON(w, http.StatusOK, f)
	}
}

func importScenarioHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Parse the multipart form. 1 << 20 specifies a maximum upload of 1 MB files.
		r.ParseMultipartForm(1 << 20)

		file, _, err := r.FormFile("scenario-file")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		defer file.Close()

		leagueID := chi.URLParam(r, "leagueID")
		group := chi.URLParam(r, "group")

		if _, err := ctrl.ImportScenario(r.Context(), leagueID, group, file); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("error importing scenario: %v", err))
			return
		}

		http.Redirect(w, r, groupURL(leagueID, group), http.StatusSeeOther)
	}
}

// ratingsHandler renders the strength estimate behind the auto-fill
// predictions, strongest team first.
func ratingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	type ratedTeam struct {
		Name   string
		Rating float64
	}

	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		group := chi.URLParam(r, "group")

		ratings, err := ctrl.GetRatings(r.Context(), leagueID, group)
		if err != nil {
			render.HTML(w, http.StatusNotFound, "404", err.Error())
			return
		}

		rated := make([]ratedTeam, 0, len(ratings))
		for name, rating := range ratings {
			rated = append(rated, ratedTeam{Name: name, Rating: rating})
		}
		slices.SortFunc(rated, func(a, b ratedTeam) int {
			if a.Rating > b.Rating {
				return -1
			}
			if a.Rating < b.Rating {
				return 1
			}
			return 0
		})

		data := map[string]any{
			"leagueID": leagueID,
			"group":    group,
			"ratings":  rated,
		}
		render.HTML(w, http.StatusOK, "ratings", data)
	}
}

func playoffsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")

		picture, err := ctrl.GetPlayoffPicture(r.Context(), leagueID)
		if err != nil {
			render.HTML(w, http.StatusNotFound, "404", err.Error())
			return
		}

		render.HTML(w, http.StatusOK, "playoffs", picture)
	}
}

func saveResultHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		result := &model.VerifiedResult{
			LeagueID: r.PostForm.Get("league"),
			Group:    r.PostForm.Get("group"),
			HomeTeam: r.PostForm.Get("home"),
			AwayTeam: r.PostForm.Get("away"),
			Score:    r.PostForm.Get("score"),
		}
		if err := ctrl.SaveVerifiedResult(r.Context(), result); err != nil {
			render.Text(w, http.StatusBadRequest, fmt.Sprintf("error saving result: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "result saved")
	}
}

func refreshLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.RefreshLeagues(r.Context()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error refreshing leagues: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "leagues refreshed")
	}
}

func groupURL(leagueID, group string) string {
	return fmt.Sprintf("/leagues/%s/groups/%s", leagueID, url.PathEscape(group))
}
