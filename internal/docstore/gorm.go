package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// documentRow is the single table backing every collection. Documents are
// kept as JSONB so the schema-less contract survives the SQL backend.
type documentRow struct {
	Collection string         `gorm:"primaryKey;size:64"`
	ID         string         `gorm:"primaryKey;size:64"`
	Data       datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (documentRow) TableName() string {
	return "documents"
}

// GormStore implements Store over a relational backend through GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("migrate documents table: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Field names originate in repository code, never from request input, but
// are still restricted to plain identifiers before interpolation.
var fieldNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func (s *GormStore) applyQuery(tx *gorm.DB, q Query) (*gorm.DB, error) {
	for _, f := range q.Filters {
		if !fieldNamePattern.MatchString(f.Field) {
			return nil, fmt.Errorf("invalid filter field %q", f.Field)
		}
		switch f.Op {
		case OpEqual:
			tx = tx.Where(datatypes.JSONQuery("data").Equals(f.Value, f.Field))
		case OpGte:
			tx = tx.Where(fmt.Sprintf("data ->> '%s' >= ?", f.Field), fmt.Sprint(f.Value))
		case OpLte:
			tx = tx.Where(fmt.Sprintf("data ->> '%s' <= ?", f.Field), fmt.Sprint(f.Value))
		default:
			return nil, fmt.Errorf("unsupported filter op %q", f.Op)
		}
	}
	if q.OrderBy != nil {
		if !fieldNamePattern.MatchString(q.OrderBy.Field) {
			return nil, fmt.Errorf("invalid order field %q", q.OrderBy.Field)
		}
		dir := "ASC"
		if q.OrderBy.Desc {
			dir = "DESC"
		}
		tx = tx.Order(fmt.Sprintf("data ->> '%s' %s", q.OrderBy.Field, dir))
	} else {
		tx = tx.Order("created_at ASC")
	}
	return tx, nil
}

func (s *GormStore) List(ctx context.Context, collection string, q Query) ([]Record, error) {
	tx := s.db.WithContext(ctx).Model(&documentRow{}).Where("collection = ?", collection)
	tx, err := s.applyQuery(tx, q)
	if err != nil {
		return nil, err
	}

	var rows []documentRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		var data Document
		if err := json.Unmarshal(row.Data, &data); err != nil {
			return nil, fmt.Errorf("decode document %s/%s: %w", collection, row.ID, err)
		}
		records = append(records, Record{ID: row.ID, Data: data})
	}
	return records, nil
}

func (s *GormStore) Get(ctx context.Context, collection, id string) (*Record, error) {
	var row documentRow
	err := s.db.WithContext(ctx).
		First(&row, "collection = ? AND id = ?", collection, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var data Document
	if err := json.Unmarshal(row.Data, &data); err != nil {
		return nil, fmt.Errorf("decode document %s/%s: %w", collection, id, err)
	}
	return &Record{ID: row.ID, Data: data}, nil
}

func (s *GormStore) Create(ctx context.Context, collection string, data Document) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	row := documentRow{
		Collection: collection,
		ID:         uuid.NewString(),
		Data:       raw,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return row.ID, nil
}

func (s *GormStore) Update(ctx context.Context, collection, id string, partial Document) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row documentRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&row, "collection = ? AND id = ?", collection, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		var data Document
		if err := json.Unmarshal(row.Data, &data); err != nil {
			return fmt.Errorf("decode document %s/%s: %w", collection, id, err)
		}
		for k, v := range partial {
			data[k] = v
		}

		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		row.Data = raw
		if err := tx.Save(&row).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil
	})
}

func (s *GormStore) Set(ctx context.Context, collection, id string, data Document) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	row := documentRow{
		Collection: collection,
		ID:         id,
		Data:       raw,
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, collection, id string) error {
	res := s.db.WithContext(ctx).
		Delete(&documentRow{}, "collection = ? AND id = ?", collection, id)
	if res.Error != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
