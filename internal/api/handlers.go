// ABOUTME: HTTP handlers translating requests into Session intents.
// ABOUTME: Validation failures answer 400 with a JSON error body.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/harperreed/fittrack/internal/calendar"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/tracker"
	"github.com/harperreed/fittrack/internal/views"
)

// maxBody caps request bodies, imports included.
const maxBody = 8 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, tracker.ErrInvalidInput) || errors.Is(err, session.ErrPromptClosed) {
		status = http.StatusBadRequest
	} else {
		s.log.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", tracker.ErrInvalidInput, err)
	}
	return nil
}

func scope(r *http.Request) (string, error) {
	sc := r.URL.Query().Get("scope")
	switch sc {
	case "", "today":
		return "today", nil
	case "history":
		return sc, nil
	default:
		return "", fmt.Errorf("%w: unknown scope %q (use today or history)", tracker.ErrInvalidInput, sc)
	}
}

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	var d views.Dashboard
	s.session.Read(func(snap session.Snapshot) {
		d = views.StatsSummary(snap.State, snap.Now)
	})
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) listExercises(w http.ResponseWriter, r *http.Request) {
	sc, err := scope(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var list views.List
	s.session.Read(func(snap session.Snapshot) {
		if sc == "history" {
			list = views.ExerciseHistory(snap.State)
		} else {
			list = views.TodayExercises(snap.State, snap.Today)
		}
	})
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createExercise(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name     string `json:"name"`
		Duration int    `json:"duration"`
		Calories int    `json:"calories"`
		Time     string `json:"time"`
	}
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	e, err := s.session.AddExercise(tracker.ExerciseInput{
		Name:     in.Name,
		Duration: in.Duration,
		Calories: in.Calories,
		Time:     in.Time,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) listMeals(w http.ResponseWriter, r *http.Request) {
	sc, err := scope(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var groups []views.MealGroup
	s.session.Read(func(snap session.Snapshot) {
		if sc == "history" {
			groups = views.NutritionHistory(snap.State)
		} else {
			groups = views.TodayMeals(snap.State, snap.Today)
		}
	})
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) createMeal(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		Calories int    `json:"calories"`
	}
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	m, err := s.session.AddMeal(tracker.MealInput{Name: in.Name, Type: in.Type, Calories: in.Calories})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) addWater(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Liters float64 `json:"liters"`
	}
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	total, err := s.session.AddWater(in.Liters)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"total": total})
}

func (s *Server) getCalendar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, _ := strconv.Atoi(vars["year"])
	month, _ := strconv.Atoi(vars["month"])
	if month < 1 || month > 12 {
		s.writeError(w, fmt.Errorf("%w: month %d out of range", tracker.ErrInvalidInput, month))
		return
	}
	// Reading a month leaves the navigation cursor alone.
	var grid calendar.Grid
	s.session.Read(func(snap session.Snapshot) {
		grid = calendar.Month(snap.State, year, time.Month(month), snap.Today)
	})
	writeJSON(w, http.StatusOK, grid)
}

func (s *Server) getDay(w http.ResponseWriter, r *http.Request) {
	var (
		d   calendar.Details
		err error
	)
	s.session.Read(func(snap session.Snapshot) {
		d, err = calendar.Day(snap.State, mux.Vars(r)["date"])
	})
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", tracker.ErrInvalidInput, err))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) getWeeklyChart(w http.ResponseWriter, r *http.Request) {
	var c views.Chart
	s.session.Read(func(snap session.Snapshot) {
		c = views.WeeklyChart(snap.State)
	})
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) getSettings(w http.ResponseWriter, r *http.Request) {
	var st models.Settings
	s.session.Read(func(snap session.Snapshot) {
		st = snap.State.Settings
	})
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) changeSetting(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Value interface{} `json:"value"`
	}
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	key := mux.Vars(r)["key"]
	if err := s.session.ChangeSetting(key, fmt.Sprint(in.Value)); err != nil {
		s.writeError(w, err)
		return
	}
	s.getSettings(w, r)
}

func (s *Server) saveSettings(w http.ResponseWriter, r *http.Request) {
	if err := s.session.SaveSettings(); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: session.MsgSettingsSaved})
}

func (s *Server) restoreSettings(w http.ResponseWriter, r *http.Request) {
	p := s.session.RequestRestoreDefaults()
	if err := s.session.Confirm(p); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: session.MsgDefaultsRestored})
}

func (s *Server) getNavigation(w http.ResponseWriter, r *http.Request) {
	var nav models.Navigation
	s.session.Read(func(snap session.Snapshot) {
		nav = snap.Nav
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"view":  nav.View,
		"year":  nav.Year,
		"month": int(nav.Month),
	})
}

func (s *Server) navigate(w http.ResponseWriter, r *http.Request) {
	v, err := models.ParseView(mux.Vars(r)["view"])
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", tracker.ErrInvalidInput, err))
		return
	}
	s.session.Navigate(v)
	s.getNavigation(w, r)
}

func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Confirm bool `json:"confirm"`
	}
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	if !in.Confirm {
		s.writeError(w, fmt.Errorf("%w: reset requires {\"confirm\": true}", tracker.ErrInvalidInput))
		return
	}
	p := s.session.RequestReset()
	if err := s.session.Confirm(p); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: session.MsgReset})
}

func (s *Server) backup(w http.ResponseWriter, r *http.Request) {
	b, err := s.session.Backup()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":        b.ID,
		"timestamp": b.Timestamp,
		"message":   session.MsgBackedUp,
	})
}

func (s *Server) export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	data, name, err := s.session.Export(format)
	if err != nil {
		s.writeError(w, err)
		return
	}

	contentType := "application/json"
	switch format {
	case "yaml":
		contentType = "application/yaml"
	case "markdown":
		contentType = "text/markdown"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) importData(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		s.writeError(w, fmt.Errorf("read body: %w", err))
		return
	}
	if err := s.session.Import(data); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: session.MsgImported})
}
