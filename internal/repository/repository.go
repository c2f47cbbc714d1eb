package repository

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound indica que el documento buscado no existe.
var ErrNotFound = errors.New("document not found")

const (
	readTimeout  = 3 * time.Second
	writeTimeout = 5 * time.Second
	listTimeout  = 10 * time.Second
)

// IsDuplicateKey reporta si el error viene de un índice único violado.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
