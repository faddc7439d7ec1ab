package repo

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/lib/pq"
)

// Cursors are the last key of a page, JSON encoded and base64url wrapped.
func encodeCursor(key any) (entities.Cursor, error) {
	data, err := json.Marshal(key)
	if err != nil {
		return "", fmt.Errorf("failed to encode cursor: %w", err)
	}
	return entities.Cursor(base64.RawURLEncoding.EncodeToString(data)), nil
}

func decodeCursor(c entities.Cursor, key any) error {
	data, err := base64.RawURLEncoding.DecodeString(string(c))
	if err != nil {
		return entities.ErrInvalidCursor
	}
	if err := json.Unmarshal(data, key); err != nil {
		return entities.ErrInvalidCursor
	}
	return nil
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
