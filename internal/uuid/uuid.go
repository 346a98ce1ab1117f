// Package uuid generates identifiers that tests can replace.
package uuid

import (
	"github.com/google/uuid"
)

// Generator hands out unique identifiers
type Generator interface {
	New() string
}

type randomGenerator struct{}

// NewGenerator returns a Generator backed by random (version 4) UUIDs
func NewGenerator() Generator {
	return randomGenerator{}
}

func (randomGenerator) New() string {
	return uuid.NewString()
}

// StaticGenerator returns the same identifier on every call
type StaticGenerator string

func (g StaticGenerator) New() string {
	return string(g)
}
