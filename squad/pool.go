package squad

import "github.com/nstehr/vimy/vimy-tactics/model"

// Pool is the set of our units nobody has given work to this tick. Each unit
// can be claimed once.
type Pool struct {
	units []*model.Unit
}

func NewPool(units []*model.Unit) *Pool {
	p := &Pool{units: make([]*model.Unit, 0, len(units))}
	for _, u := range units {
		if u.IsMe() && u.Alive() {
			p.units = append(p.units, u)
		}
	}
	return p
}

// Claim removes u from the pool. It returns false when u was never in the
// pool or someone else claimed it first.
func (p *Pool) Claim(u *model.Unit) bool {
	for i, o := range p.units {
		if o.ID == u.ID {
			last := len(p.units) - 1
			p.units[i] = p.units[last]
			p.units = p.units[:last]
			return true
		}
	}
	return false
}

func (p *Pool) Len() int { return len(p.units) }

// Available returns the unclaimed units. The slice is owned by the pool.
func (p *Pool) Available() []*model.Unit { return p.units }
