package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fitlog/fitlog-be/internal/dates"
	"github.com/fitlog/fitlog-be/internal/models"
	"github.com/fitlog/fitlog-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// TrackerHandler handles HTTP requests for users and their exercise logs.
type TrackerHandler struct {
	service services.TrackerServiceProvider
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(service services.TrackerServiceProvider) *TrackerHandler {
	return &TrackerHandler{service: service}
}

// ListUsers handles the request to list all users.
func (h *TrackerHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if users == nil {
		users = []models.UserRef{}
	}
	respondJSON(w, http.StatusOK, users)
}

// CreateUser handles the request to register a new user.
func (h *TrackerHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	body, err := parseBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.CreateUser(body("username"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create user")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// AddExercise handles the request to append an exercise to a user's log.
func (h *TrackerHandler) AddExercise(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	body, err := parseBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	description := body("description")

	duration, err := strconv.Atoi(body("duration"))
	if err != nil || duration < 0 {
		respondError(w, http.StatusBadRequest, "duration must be a non-negative number of minutes")
		return
	}

	// An absent date defaults to the creation instant.
	date := time.Now()
	if raw := body("date"); raw != "" {
		parsed, ok := dates.Parse(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD or an epoch timestamp")
			return
		}
		date = parsed
	}

	user, err := h.service.AddExercise(id, description, duration, date)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Error().Err(err).Str("user_id", id).Msg("Failed to add exercise")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":          user.ID,
		"username":    user.Username,
		"description": description,
		"duration":    duration,
		"date":        dates.Format(date),
	})
}

// GetLogs handles the request to query a user's exercise log, optionally
// bounded by a date range and an entry limit.
func (h *TrackerHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := r.URL.Query()

	// Unparseable bounds are treated as absent; filtering only happens when
	// both parse.
	from, _ := dates.Parse(q.Get("from"))
	to, _ := dates.Parse(q.Get("to"))

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative number")
			return
		}
		limit = n
	}

	user, err := h.service.GetUserLog(id, from, to, limit)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Error().Err(err).Str("user_id", id).Msg("Failed to get user log")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	entries := make([]models.LogEntry, 0, len(user.Exercises))
	for _, e := range user.Exercises {
		entries = append(entries, models.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        dates.Format(dates.FromCanonical(e.Date)),
		})
	}

	respondJSON(w, http.StatusOK, models.UserLog{
		ID:       user.ID,
		Username: user.Username,
		Log:      entries,
		Count:    len(entries),
	})
}
