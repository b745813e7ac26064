package finanflow

import (
	"iter"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Roles suggested for a commission receiver. Any other label is accepted.
var Roles = []string{"Vendedor", "Gestor", "Líder", "Parceiro"}

// Receiver is a team member entitled to commissions on sales.
type Receiver struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Role        string          `json:"role"`
	DefaultRate decimal.Decimal `json:"defaultRate"` // percentage, 10 means 10%
}

// Registry is the collection of commission receivers.
type Registry struct {
	receivers []Receiver
	newID     func() string
}

// NewRegistry creates a registry holding rs.
func NewRegistry(rs ...Receiver) *Registry {
	return &Registry{
		receivers: slices.Clone(rs),
		newID:     uuid.NewString,
	}
}

// Len returns the number of receivers.
func (r *Registry) Len() int { return len(r.receivers) }

// All iterates over receivers in registration order.
func (r *Registry) All() iter.Seq[Receiver] {
	return func(yield func(Receiver) bool) {
		for _, rc := range r.receivers {
			if !yield(rc) {
				return
			}
		}
	}
}

// Snapshot returns a copy of all receivers.
func (r *Registry) Snapshot() []Receiver { return slices.Clone(r.receivers) }

// Get returns the receiver with this id.
func (r *Registry) Get(id string) (Receiver, bool) {
	i := slices.IndexFunc(r.receivers, func(rc Receiver) bool { return rc.ID == id })
	if i < 0 {
		return Receiver{}, false
	}
	return r.receivers[i], true
}

// Add registers rc, assigning it a fresh id when it has none.
func (r *Registry) Add(rc Receiver) Receiver {
	if rc.ID == "" {
		rc.ID = r.newID()
	}
	r.receivers = append(r.receivers, rc)
	return rc
}

// Remove deletes the receiver with this id. Commission expenses already
// generated in their name are left untouched.
func (r *Registry) Remove(id string) (applied bool) {
	i := slices.IndexFunc(r.receivers, func(rc Receiver) bool { return rc.ID == id })
	if i < 0 {
		return false
	}
	r.receivers = slices.Delete(r.receivers, i, i+1)
	return true
}
