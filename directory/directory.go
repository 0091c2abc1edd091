// Package directory is the participant registry the engine consults
// for roles, names and avatars. In the production platform this data
// comes from the enrollment service; here it is registered up front.
package directory

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"edu-chat/domain"
	"edu-chat/errors"
)

var validate = validator.New()

type Directory struct {
	mu   sync.RWMutex
	byID map[string]domain.Participant
	// order keeps registration order; the ranking projection relies on
	// it to break ties between conversations.
	order []string
}

func New() *Directory {
	return &Directory{byID: make(map[string]domain.Participant)}
}

// Register validates and stores a participant. Re-registering an id
// replaces the record but keeps its original position.
func (d *Directory) Register(p domain.Participant) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidParticipant, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.byID[p.ID]; !ok {
		d.order = append(d.order, p.ID)
	}
	d.byID[p.ID] = p
	return nil
}

func (d *Directory) Get(id string) (domain.Participant, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.byID[id]
	return p, ok
}

// RoleOf satisfies domain.RoleLookup for conversation key resolution.
func (d *Directory) RoleOf(id string) (domain.Role, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.byID[id]
	return p.Role, ok
}

// Students returns every student participant in registration order.
func (d *Directory) Students() []domain.Participant {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return lo.FilterMap(d.order, func(id string, _ int) (domain.Participant, bool) {
		p, ok := d.byID[id]
		return p, ok && p.Role == domain.RoleStudent
	})
}
