package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fitlog/fitlog-be/internal/dates"
	"github.com/fitlog/fitlog-be/internal/models"
	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user id does not resolve to a stored user.
var ErrUserNotFound = errors.New("user not found")

// TrackerServiceProvider defines the interface for the exercise tracker store.
type TrackerServiceProvider interface {
	ListUsers() ([]models.UserRef, error)
	CreateUser(username string) (models.UserRef, error)
	AddExercise(userID, description string, duration int, date time.Time) (models.UserRef, error)
	GetUserLog(userID string, from, to time.Time, limit int) (models.User, error)
	Stats() (models.Stats, error)
}

// TrackerService provides the store operations for users and their
// exercise logs.
type TrackerService struct {
	db *sql.DB
}

// NewTrackerService creates a new TrackerService.
func NewTrackerService(db *sql.DB) *TrackerService {
	return &TrackerService{db: db}
}

// ListUsers retrieves all users projected to id and username, in storage
// order (callers must not rely on any particular ordering).
func (s *TrackerService) ListUsers() ([]models.UserRef, error) {
	rows, err := s.db.Query("SELECT id, username FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.UserRef
	for rows.Next() {
		var u models.UserRef
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateUser inserts a new user with an empty exercise log. Duplicate
// usernames are allowed.
func (s *TrackerService) CreateUser(username string) (models.UserRef, error) {
	user := models.UserRef{
		ID:       uuid.New().String(),
		Username: username,
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, username) VALUES(?, ?)")
	if err != nil {
		return models.UserRef{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(user.ID, user.Username); err != nil {
		return models.UserRef{}, err
	}
	return user, nil
}

// AddExercise appends one exercise to the identified user's log and returns
// the owning user. The append is a single INSERT, so concurrent calls
// against the same user cannot lose entries.
func (s *TrackerService) AddExercise(userID, description string, duration int, date time.Time) (models.UserRef, error) {
	user, err := s.getUser(userID)
	if err != nil {
		return models.UserRef{}, err
	}

	stmt, err := s.db.Prepare("INSERT INTO exercises(user_id, description, duration, date) VALUES(?, ?, ?, ?)")
	if err != nil {
		return models.UserRef{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(user.ID, description, duration, dates.Canonical(date)); err != nil {
		return models.UserRef{}, err
	}
	return user, nil
}

// GetUserLog retrieves the identified user's exercises in insertion order.
// When both from and to are set, the log is filtered to entries whose date
// falls within [from, to] inclusive. A positive limit truncates the log
// after filtering.
func (s *TrackerService) GetUserLog(userID string, from, to time.Time, limit int) (models.User, error) {
	ref, err := s.getUser(userID)
	if err != nil {
		return models.User{}, err
	}

	query := "SELECT description, duration, date FROM exercises WHERE user_id = ?"
	args := []interface{}{ref.ID}
	if !from.IsZero() && !to.IsZero() {
		query += " AND date BETWEEN ? AND ?"
		args = append(args, dates.Canonical(from), dates.Canonical(to))
	}
	query += " ORDER BY seq"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return models.User{}, err
	}
	defer rows.Close()

	user := models.User{ID: ref.ID, Username: ref.Username}
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.Description, &e.Duration, &e.Date); err != nil {
			return models.User{}, err
		}
		user.Exercises = append(user.Exercises, e)
	}
	return user, rows.Err()
}

// Stats returns aggregate user and exercise counts for the background
// activity monitor.
func (s *TrackerService) Stats() (models.Stats, error) {
	var stats models.Stats
	row := s.db.QueryRow("SELECT (SELECT COUNT(*) FROM users), (SELECT COUNT(*) FROM exercises)")
	if err := row.Scan(&stats.Users, &stats.Exercises); err != nil {
		return models.Stats{}, err
	}
	return stats, nil
}

func (s *TrackerService) getUser(id string) (models.UserRef, error) {
	var user models.UserRef
	row := s.db.QueryRow("SELECT id, username FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.UserRef{}, fmt.Errorf("user with ID %s: %w", id, ErrUserNotFound)
		}
		return models.UserRef{}, err
	}
	return user, nil
}
