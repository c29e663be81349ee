package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/cv-chat/internal/types"
)

//go:embed schema.sql
var schemaSQL string

// pgForeignKeyViolation is the SQLSTATE for a foreign key violation.
const pgForeignKeyViolation = "23503"

const profileColumns = `id, name, title, location, bio, profile_image,
	experience, skills, certificates, languages, memberships, created_at, updated_at`

// PostgresStore keeps profiles and chat messages in PostgreSQL
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the tables if needed and seeds the default profile.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	def := DefaultProfile(time.Now())
	row, err := newProfileRow(def)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO cv_profiles (`+profileColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO NOTHING`,
		row.args()...,
	)
	if err != nil {
		return fmt.Errorf("failed to seed default profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a profile by ID; an empty ID selects the default profile
func (s *PostgresStore) GetProfile(ctx context.Context, id string) (*types.Profile, error) {
	return s.getProfile(ctx, s.pool, resolveProfileID(id), false)
}

// CreateProfile inserts a new profile
func (s *PostgresStore) CreateProfile(ctx context.Context, in types.ProfileInput) (*types.Profile, error) {
	profile := in.NewProfile()
	profile.ID = uuid.NewString()

	row, err := newProfileRow(profile)
	if err != nil {
		return nil, err
	}

	err = s.pool.QueryRow(ctx,
		`INSERT INTO cv_profiles (id, name, title, location, bio, profile_image,
		     experience, skills, certificates, languages, memberships)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at, updated_at`,
		row.args()[:11]...,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// UpdateProfile merges the patch into the stored profile inside a transaction
func (s *PostgresStore) UpdateProfile(ctx context.Context, id string, patch *types.ProfilePatch) (*types.Profile, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	profile, err := s.getProfile(ctx, tx, id, true)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	profile.Apply(patch)
	row, err := newProfileRow(profile)
	if err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx,
		`UPDATE cv_profiles SET
		     name = $2, title = $3, location = $4, bio = $5, profile_image = $6,
		     experience = $7, skills = $8, certificates = $9, languages = $10, memberships = $11,
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING updated_at`,
		row.args()[:11]...,
	).Scan(&profile.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit profile update: %w", err)
	}
	return profile, nil
}

// ListChatMessages returns a profile's chat history ordered by timestamp
func (s *PostgresStore) ListChatMessages(ctx context.Context, profileID string) ([]types.ChatMessage, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, profile_id, message, response, COALESCE(section, ''), created_at
		 FROM chat_messages WHERE profile_id = $1 ORDER BY created_at, id`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	messages := []types.ChatMessage{}
	for rows.Next() {
		var m types.ChatMessage
		if err := rows.Scan(&m.ID, &m.ProfileID, &m.Message, &m.Response, &m.Section, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// CreateChatMessage stores a chat exchange
func (s *PostgresStore) CreateChatMessage(ctx context.Context, in types.ChatMessageInput) (*types.ChatMessage, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chat message: %w", err)
	}

	msg := types.ChatMessage{
		ID:        uuid.NewString(),
		ProfileID: in.ProfileID,
		Message:   in.Message,
		Response:  in.Response,
		Section:   in.Section,
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO chat_messages (id, profile_id, message, response, section)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		msg.ID, msg.ProfileID, msg.Message, msg.Response, nullIfEmpty(msg.Section),
	).Scan(&msg.Timestamp)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, &ErrProfileNotFound{ProfileID: in.ProfileID}
		}
		return nil, fmt.Errorf("failed to create chat message: %w", err)
	}
	return &msg, nil
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (s *PostgresStore) getProfile(ctx context.Context, q querier, id string, forUpdate bool) (*types.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM cv_profiles WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var row profileRow
	err := q.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Name, &row.Title, &row.Location, &row.Bio, &row.ProfileImage,
		&row.Experience, &row.Skills, &row.Certificates, &row.Languages, &row.Memberships,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return row.toProfile()
}

// profileRow is the column layout of cv_profiles; list fields are JSONB.
type profileRow struct {
	ID           string
	Name         string
	Title        string
	Location     *string
	Bio          *string
	ProfileImage *string
	Experience   []byte
	Skills       []byte
	Certificates []byte
	Languages    []byte
	Memberships  []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func newProfileRow(p *types.Profile) (*profileRow, error) {
	row := &profileRow{
		ID:           p.ID,
		Name:         p.Name,
		Title:        p.Title,
		Location:     nullIfEmpty(p.Location),
		Bio:          nullIfEmpty(p.Bio),
		ProfileImage: nullIfEmpty(p.ProfileImage),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	var err error
	if row.Experience, err = marshalList(p.Experience); err != nil {
		return nil, err
	}
	if row.Skills, err = marshalList(p.Skills); err != nil {
		return nil, err
	}
	if row.Certificates, err = marshalList(p.Certificates); err != nil {
		return nil, err
	}
	if row.Languages, err = marshalList(p.Languages); err != nil {
		return nil, err
	}
	if row.Memberships, err = marshalList(p.Memberships); err != nil {
		return nil, err
	}
	return row, nil
}

// args returns the row values in profileColumns order.
func (r *profileRow) args() []any {
	return []any{
		r.ID, r.Name, r.Title, r.Location, r.Bio, r.ProfileImage,
		r.Experience, r.Skills, r.Certificates, r.Languages, r.Memberships,
		r.CreatedAt, r.UpdatedAt,
	}
}

func (r *profileRow) toProfile() (*types.Profile, error) {
	p := &types.Profile{
		ID:           r.ID,
		Name:         r.Name,
		Title:        r.Title,
		Location:     derefString(r.Location),
		Bio:          derefString(r.Bio),
		ProfileImage: derefString(r.ProfileImage),
		Experience:   []types.ExperienceEntry{},
		Skills:       []string{},
		Certificates: []string{},
		Languages:    []types.LanguageEntry{},
		Memberships:  []string{},
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}

	fields := []struct {
		name string
		data []byte
		dest any
	}{
		{"experience", r.Experience, &p.Experience},
		{"skills", r.Skills, &p.Skills},
		{"certificates", r.Certificates, &p.Certificates},
		{"languages", r.Languages, &p.Languages},
		{"memberships", r.Memberships, &p.Memberships},
	}
	for _, f := range fields {
		if len(f.data) == 0 {
			continue
		}
		if err := json.Unmarshal(f.data, f.dest); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", f.name, err)
		}
	}
	return p, nil
}

func marshalList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal list: %w", err)
	}
	return data, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
