package storage

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"

	"restaurant-manager/menu-svc/internal/domain"
)

const (
	objectMagic   = "restaurant-manager/catalog"
	objectVersion = 1
)

type objectEnvelope struct {
	Magic    string
	Version  int
	Snapshot domain.Snapshot
}

// ObjectStore writes an opaque gob snapshot. Only files written with the
// same envelope version can be read back.
type ObjectStore struct{}

func NewObjectStore() *ObjectStore {
	return &ObjectStore{}
}

func (s *ObjectStore) Save(path string, snap *domain.Snapshot) error {
	return writeFile(path, func(w io.Writer) error {
		return gob.NewEncoder(w).Encode(objectEnvelope{
			Magic:    objectMagic,
			Version:  objectVersion,
			Snapshot: *snap,
		})
	})
}

func (s *ObjectStore) Load(path string) (*domain.Snapshot, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var env objectEnvelope
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&env); err != nil {
		return nil, formatError(path, err)
	}
	if env.Magic != objectMagic {
		return nil, formatError(path, fmt.Errorf("not a restaurant object file"))
	}
	if env.Version != objectVersion {
		return nil, formatError(path, fmt.Errorf("unsupported object version %d", env.Version))
	}
	if err := env.Snapshot.Validate(); err != nil {
		return nil, formatError(path, err)
	}
	return &env.Snapshot, nil
}
