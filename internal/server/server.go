// Package server provides the password-gated web UI for Habitgrid.
//
// This is the composition root for the web variant: it wires the gate,
// the session registry, and the store into HTTP handlers. Every request
// runs one full load-mutate-save cycle against the store; there is no
// locking, so simultaneous sessions race and the last writer wins.
package server

import (
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/manav03panchal/habitgrid/internal/auth"
	"github.com/manav03panchal/habitgrid/internal/errors"
	"github.com/manav03panchal/habitgrid/internal/logging"
	"github.com/manav03panchal/habitgrid/internal/model"
	"github.com/manav03panchal/habitgrid/internal/storage"
	"github.com/manav03panchal/habitgrid/internal/validate"
)

// SessionCookie is the name of the session token cookie.
const SessionCookie = "habitgrid_session"

// Config configures the web server.
type Config struct {
	Store    *storage.Store
	Gate     *auth.Gate
	Sessions *auth.Sessions
	// Now supplies the current time; injected for testability.
	Now func() time.Time
}

// Server serves the habit tracker web UI.
type Server struct {
	store    *storage.Store
	gate     *auth.Gate
	sessions *auth.Sessions
	now      func() time.Time
	tmpl     *template.Template
	mux      *http.ServeMux
}

// New creates a server. The gate must already be configured; a nil gate is
// refused so the server can never start without a secret.
func New(cfg Config) (*Server, error) {
	if cfg.Gate == nil {
		return nil, errors.ErrSecretMissing
	}
	if cfg.Sessions == nil {
		cfg.Sessions = auth.NewSessions()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, errors.WithContext(err, "parsing page template")
	}

	s := &Server{
		store:    cfg.Store,
		gate:     cfg.Gate,
		sessions: cfg.Sessions,
		now:      cfg.Now,
		tmpl:     tmpl,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /habits", s.handleAddHabit)
	mux.HandleFunc("POST /toggle", s.handleToggle)
	s.mux = mux

	return s, nil
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe starts serving on the given address.
func (s *Server) ListenAndServe(addr string) error {
	logging.With("addr", addr).Info("habitgrid web UI listening")
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// checkbox is one habit checkbox on the today view.
type checkbox struct {
	Habit string
	Done  bool
}

// historyRow is one rendered row of the full-table view.
type historyRow struct {
	Date   string
	Values []string
}

// pageData feeds the page template.
type pageData struct {
	Authenticated bool
	LoginFailed   bool
	Today         string
	Habits        []string
	Checks        []checkbox
	Rows          []historyRow
	Warning       string
	Error         string
	Message       string
}

// session returns the request's session, beginning a new one (and setting
// the cookie) when none exists.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *auth.Session {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if sess, ok := s.sessions.Get(cookie.Value); ok {
			return sess
		}
	}
	sess := s.sessions.Begin()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// authed returns the session when it has passed the gate, or nil after
// redirecting the request back to the login page.
func (s *Server) authed(w http.ResponseWriter, r *http.Request) *auth.Session {
	sess := s.session(w, r)
	if !sess.Authenticated {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}
	return sess
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if !sess.Authenticated {
		s.render(w, pageData{LoginFailed: sess.LoginFailed})
		return
	}

	today := model.Day(s.now())
	data := pageData{
		Authenticated: true,
		Today:         today,
		Error:         r.URL.Query().Get("err"),
		Message:       r.URL.Query().Get("msg"),
	}

	table, err := s.store.Load()
	if err != nil {
		logging.With("error", err).Warn("loading habit store")
		data.Warning = "Error loading habit data; starting from an empty table."
	}
	// Viewing the page never writes over a file that failed to load; the
	// ensured row stays in memory until the file is fixed.
	if table.EnsureDay(today) && err == nil {
		if err := s.store.Save(table); err != nil {
			logging.With("error", err).Warn("saving habit store")
			data.Warning = "Error saving habit data; changes are kept for this session only."
		}
	}

	data.Habits = table.Habits
	for _, habit := range table.Habits {
		done, _ := table.Cell(today, habit)
		data.Checks = append(data.Checks, checkbox{Habit: habit, Done: done})
	}
	for _, row := range table.Rows {
		values := make([]string, 0, len(table.Habits))
		for _, habit := range table.Habits {
			if row.Value(habit) {
				values = append(values, "true")
			} else {
				values = append(values, "false")
			}
		}
		data.Rows = append(data.Rows, historyRow{Date: row.Date, Values: values})
	}

	s.render(w, data)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	s.sessions.Login(sess, s.gate, r.FormValue("password"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAddHabit(w http.ResponseWriter, r *http.Request) {
	if s.authed(w, r) == nil {
		return
	}

	name := validate.SanitizeHabitName(r.FormValue("name"))
	if err := validate.HabitName(name); err != nil {
		s.redirect(w, r, "err", err.Error())
		return
	}

	table, err := s.store.Load()
	if err != nil {
		logging.With("error", err).Warn("loading habit store")
		s.redirect(w, r, "err",
			"Error loading habit data; fix or remove "+s.store.Path()+" before making changes.")
		return
	}
	table.EnsureDay(model.Day(s.now()))
	if err := table.AddHabit(name); err != nil {
		s.redirect(w, r, "err", err.Error())
		return
	}
	// Persist immediately after a successful add.
	if err := s.store.Save(table); err != nil {
		s.redirect(w, r, "err", "Error saving habit data: "+err.Error())
		return
	}
	s.redirect(w, r, "msg", "Habit '"+name+"' added!")
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	if s.authed(w, r) == nil {
		return
	}

	day := r.FormValue("date")
	habit := r.FormValue("habit")
	done := r.FormValue("done") == "on"

	table, err := s.store.Load()
	if err != nil {
		logging.With("error", err).Warn("loading habit store")
		s.redirect(w, r, "err",
			"Error loading habit data; fix or remove "+s.store.Path()+" before making changes.")
		return
	}
	table.EnsureDay(model.Day(s.now()))
	if err := table.SetCell(day, habit, done); err != nil {
		if errors.Is(err, errors.ErrDayNotFound) {
			s.redirect(w, r, "err",
				"Could not find or create today's row. Please check "+s.store.Path())
			return
		}
		s.redirect(w, r, "err", err.Error())
		return
	}
	if err := s.store.Save(table); err != nil {
		s.redirect(w, r, "err", "Error saving habit data: "+err.Error())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) redirect(w http.ResponseWriter, r *http.Request, key, value string) {
	http.Redirect(w, r, "/?"+key+"="+url.QueryEscape(value), http.StatusSeeOther)
}

func (s *Server) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		logging.With("error", err).Error("rendering page")
	}
}
