package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aimun-naharr/food-donation-app-server/internal/domain"
	"github.com/aimun-naharr/food-donation-app-server/internal/platform/logger"
	"github.com/aimun-naharr/food-donation-app-server/internal/store"
	"github.com/google/uuid"
)

// SupplyStore implements the store.SupplyStore interface using a
// PostgreSQL database as the storage backend. Typed fields map to typed
// columns; pass-through extras live in a JSONB column.
type SupplyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSupplyStore creates a new PostgreSQL implementation of the
// SupplyStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewSupplyStore(db store.DBTX, logger *slog.Logger) *SupplyStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SupplyStore{
		db:     db,
		logger: logger.With(slog.String("component", "supply_store")),
	}
}

// Ensure SupplyStore implements store.SupplyStore interface
var _ store.SupplyStore = (*SupplyStore)(nil)

// Create implements store.SupplyStore.Create
// It saves a new supply item to the database, extras included.
func (s *SupplyStore) Create(ctx context.Context, supply *domain.Supply) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := supply.Validate(); err != nil {
		log.Warn("supply validation failed during create",
			slog.String("error", err.Error()),
			slog.String("supply_id", supply.ID.String()))
		return err
	}

	extra, err := marshalExtra(supply.Extra)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO supplies (id, name, description, quantity, category, image, extra, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		supply.ID,
		supply.Name,
		nullableString(supply.Description),
		supply.Quantity,
		nullableString(supply.Category),
		supply.Image,
		extra,
		supply.CreatedAt,
		supply.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create supply",
			slog.String("error", err.Error()),
			slog.String("supply_id", supply.ID.String()))
		return MapError(err)
	}

	log.Info("supply created successfully",
		slog.String("supply_id", supply.ID.String()))
	return nil
}

// List implements store.SupplyStore.List
// It retrieves all supply items ordered newest first. The id tiebreak
// keeps the ordering deterministic for items created in the same instant.
func (s *SupplyStore) List(ctx context.Context) ([]*domain.Supply, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, quantity, category, image, extra, created_at, updated_at
		FROM supplies
		ORDER BY created_at DESC, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list supplies", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	supplies := make([]*domain.Supply, 0)
	for rows.Next() {
		supply, err := scanSupply(rows.Scan)
		if err != nil {
			log.Error("failed to scan supply row", slog.String("error", err.Error()))
			return nil, err
		}
		supplies = append(supplies, supply)
	}

	if err := rows.Err(); err != nil {
		log.Error("row iteration failed", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return supplies, nil
}

// GetByID implements store.SupplyStore.GetByID
// It retrieves a supply item by its unique ID.
// Returns store.ErrSupplyNotFound if the item does not exist.
func (s *SupplyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supply, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, quantity, category, image, extra, created_at, updated_at
		FROM supplies
		WHERE id = $1
	`

	row := s.db.QueryRowContext(ctx, query, id)
	supply, err := scanSupply(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("supply not found", slog.String("supply_id", id.String()))
			return nil, store.ErrSupplyNotFound
		}
		log.Error("failed to get supply by ID",
			slog.String("error", err.Error()),
			slog.String("supply_id", id.String()))
		return nil, MapError(err)
	}

	return supply, nil
}

// Update implements store.SupplyStore.Update
// It applies a partial patch in a single statement: COALESCE keeps
// columns the patch leaves nil, and the JSONB concatenation merges new
// extras over stored ones without touching unrelated keys.
// Returns store.ErrSupplyNotFound if zero rows matched.
func (s *SupplyStore) Update(ctx context.Context, id uuid.UUID, patch *domain.SupplyPatch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	extra, err := marshalExtra(patch.Extra)
	if err != nil {
		return err
	}

	query := `
		UPDATE supplies
		SET name = COALESCE($2, name),
			description = COALESCE($3, description),
			quantity = COALESCE($4, quantity),
			category = COALESCE($5, category),
			image = COALESCE($6, image),
			extra = extra || $7::jsonb,
			updated_at = $8
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		id,
		patch.Name,
		patch.Description,
		patch.Quantity,
		patch.Category,
		patch.Image,
		extra,
		time.Now().UTC(),
	)

	if err != nil {
		log.Error("failed to update supply",
			slog.String("error", err.Error()),
			slog.String("supply_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrSupplyNotFound); err != nil {
		log.Debug("supply not found during update", slog.String("supply_id", id.String()))
		return err
	}

	log.Info("supply updated successfully", slog.String("supply_id", id.String()))
	return nil
}

// Delete implements store.SupplyStore.Delete
// It removes a supply item by its ID.
// Returns store.ErrSupplyNotFound if zero rows matched.
func (s *SupplyStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM supplies WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete supply",
			slog.String("error", err.Error()),
			slog.String("supply_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrSupplyNotFound); err != nil {
		log.Debug("supply not found during delete", slog.String("supply_id", id.String()))
		return err
	}

	log.Info("supply deleted successfully", slog.String("supply_id", id.String()))
	return nil
}

// scanSupply reads one supplies row through the given scan function,
// which lets it serve both QueryRow and Rows iteration.
func scanSupply(scan func(dest ...any) error) (*domain.Supply, error) {
	var (
		supply      domain.Supply
		description sql.NullString
		category    sql.NullString
		extra       []byte
	)

	err := scan(
		&supply.ID,
		&supply.Name,
		&description,
		&supply.Quantity,
		&category,
		&supply.Image,
		&extra,
		&supply.CreatedAt,
		&supply.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	supply.Description = description.String
	supply.Category = category.String

	if len(extra) > 0 {
		if err := json.Unmarshal(extra, &supply.Extra); err != nil {
			return nil, fmt.Errorf("failed to unmarshal supply extras: %w", err)
		}
	}
	if supply.Extra == nil {
		supply.Extra = make(map[string]any)
	}

	return &supply, nil
}

// marshalExtra serializes pass-through fields for the JSONB column.
// A nil or empty map becomes the empty object, which is a no-op for the
// merge operator on update.
func marshalExtra(extra map[string]any) ([]byte, error) {
	if len(extra) == 0 {
		return []byte(`{}`), nil
	}

	data, err := json.Marshal(extra)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal supply extras: %w", err)
	}
	return data, nil
}

// nullableString maps empty strings to NULL for optional text columns.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
